package domain

import "time"

// Respondent es una sumision persistida con su vector de dimensiones.
type Respondent struct {
	ID             string            `json:"id"`
	Pseudonym      string            `json:"pseudonym,omitempty"`
	Answers        Answers           `json:"answers"`
	Vector         [7]float64        `json:"vector"`
	PrimaryProfile ProfileID         `json:"primaryProfile"`
	Segments       map[string]string `json:"segments,omitempty"`
	Consent        bool              `json:"consent"`
	SubmittedAt    time.Time         `json:"submittedAt"`
}

// SimilarRespondent es un vecino cercano en el espacio de dimensiones.
type SimilarRespondent struct {
	ID             string    `json:"id"`
	PrimaryProfile ProfileID `json:"primaryProfile"`
	Distance       float64   `json:"distance"`
}
