package service

import (
	"crypto/subtle"
	"errors"
	"strings"

	"go.uber.org/zap"
)

var ErrInvalidAPIKey = errors.New("invalid api key")

// AuthService canjea claves de API por pares de tokens de analista o administrador.
type AuthService struct {
	logger *zap.Logger
	jwt    *JWTService
	keys   map[string]string
}

// NewAuthService ignora las claves vacias; sin ninguna clave todo login falla.
func NewAuthService(logger *zap.Logger, jwtSvc *JWTService, analystKey, adminKey string) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	keys := map[string]string{}
	if k := strings.TrimSpace(analystKey); k != "" {
		keys[RoleAnalyst] = k
	}
	if k := strings.TrimSpace(adminKey); k != "" {
		keys[RoleAdmin] = k
	}
	return &AuthService{logger: logger, jwt: jwtSvc, keys: keys}
}

func (s *AuthService) Login(apiKey string) (TokenPair, error) {
	if s == nil || s.jwt == nil {
		return TokenPair{}, ErrServiceNotConfigured
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return TokenPair{}, ErrInvalidAPIKey
	}
	// admin primero: si ambas claves coinciden gana el rol mas amplio.
	for _, role := range []string{RoleAdmin, RoleAnalyst} {
		want, ok := s.keys[role]
		if !ok {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(want)) == 1 {
			pair, err := s.jwt.GeneratePair(Principal{Subject: role, Role: role})
			if err != nil {
				return TokenPair{}, err
			}
			s.logger.Info("analytics login", zap.String("role", role))
			return pair, nil
		}
	}
	s.logger.Warn("analytics login rejected")
	return TokenPair{}, ErrInvalidAPIKey
}

func (s *AuthService) Refresh(refreshToken string) (TokenPair, error) {
	if s == nil || s.jwt == nil {
		return TokenPair{}, ErrServiceNotConfigured
	}
	return s.jwt.RefreshPair(refreshToken)
}

func (s *AuthService) Logout(refreshToken string) error {
	if s == nil || s.jwt == nil {
		return ErrServiceNotConfigured
	}
	return s.jwt.RevokeRefresh(refreshToken)
}
