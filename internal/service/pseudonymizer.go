package service

import (
	"encoding/hex"
	"errors"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Pseudonymizer deriva un identificador estable y no reversible para la clave externa
// de un respondente (email, codigo de encuesta). Sin clave no produce pseudonimos.
type Pseudonymizer struct {
	key []byte
}

var ErrPseudonymKeyTooLong = errors.New("pseudonym key longer than 64 bytes")

func NewPseudonymizer(key string) (*Pseudonymizer, error) {
	if len(key) > blake2b.Size {
		return nil, ErrPseudonymKeyTooLong
	}
	return &Pseudonymizer{key: []byte(key)}, nil
}

// Enabled indica si hay una clave configurada.
func (p *Pseudonymizer) Enabled() bool {
	return p != nil && len(p.key) > 0
}

// Pseudonym devuelve blake2b-256 con clave, en hex, de la clave externa normalizada.
func (p *Pseudonymizer) Pseudonym(externalKey string) string {
	normalized := strings.ToLower(strings.TrimSpace(externalKey))
	if !p.Enabled() || normalized == "" {
		return ""
	}
	h, err := blake2b.New256(p.key)
	if err != nil {
		return ""
	}
	h.Write([]byte(normalized))
	return hex.EncodeToString(h.Sum(nil))
}
