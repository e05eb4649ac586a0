package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"faithai-profile/internal/domain"
)

type RespondentRepository interface {
	Create(ctx context.Context, respondent domain.Respondent) error
	GetByID(ctx context.Context, id string) (domain.Respondent, error)
	ListConsenting(ctx context.Context) ([]domain.Respondent, error)
	CountConsenting(ctx context.Context) (int, error)
	FindSimilar(ctx context.Context, id string, k int) ([]domain.SimilarRespondent, error)
}

type PgRespondentRepository struct {
	pool *pgxpool.Pool
}

func NewPgRespondentRepository(pool *pgxpool.Pool) *PgRespondentRepository {
	return &PgRespondentRepository{pool: pool}
}

// VectorOf convierte el vector canonico al tipo de columna vector(7).
func VectorOf(v [7]float64) pgvector.Vector {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return pgvector.NewVector(out)
}

func vectorFrom(v pgvector.Vector) ([7]float64, error) {
	var out [7]float64
	raw := v.Slice()
	if len(raw) != len(out) {
		return out, fmt.Errorf("dimension vector has %d components, want %d", len(raw), len(out))
	}
	for i, x := range raw {
		out[i] = float64(x)
	}
	return out, nil
}

func (r *PgRespondentRepository) Create(ctx context.Context, respondent domain.Respondent) error {
	const query = `
		INSERT INTO respondents (id, pseudonym, answers, dimensions, primary_profile, segments, consent, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	segments := respondent.Segments
	if segments == nil {
		segments = map[string]string{}
	}
	_, err := r.pool.Exec(ctx, query,
		respondent.ID,
		respondent.Pseudonym,
		respondent.Answers,
		VectorOf(respondent.Vector),
		string(respondent.PrimaryProfile),
		segments,
		respondent.Consent,
		respondent.SubmittedAt,
	)
	return err
}

func (r *PgRespondentRepository) GetByID(ctx context.Context, id string) (domain.Respondent, error) {
	const query = `
		SELECT id::text, pseudonym, answers, dimensions, primary_profile, segments, consent, submitted_at
		FROM respondents
		WHERE id = $1
	`
	return scanRespondent(r.pool.QueryRow(ctx, query, id))
}

// ListConsenting devuelve la coleccion completa usada para agregar; el orden es estable.
func (r *PgRespondentRepository) ListConsenting(ctx context.Context) ([]domain.Respondent, error) {
	const query = `
		SELECT id::text, pseudonym, answers, dimensions, primary_profile, segments, consent, submitted_at
		FROM respondents
		WHERE consent
		ORDER BY submitted_at ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Respondent
	for rows.Next() {
		resp, err := scanRespondent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PgRespondentRepository) CountConsenting(ctx context.Context) (int, error) {
	const query = `SELECT COUNT(*) FROM respondents WHERE consent`
	var n int
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// FindSimilar busca los k respondentes con consentimiento mas cercanos (distancia euclidiana).
func (r *PgRespondentRepository) FindSimilar(ctx context.Context, id string, k int) ([]domain.SimilarRespondent, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT r.id::text, r.primary_profile, r.dimensions <-> t.dimensions AS distance
		FROM respondents r, (SELECT dimensions FROM respondents WHERE id = $1) t
		WHERE r.id <> $1 AND r.consent
		ORDER BY r.dimensions <-> t.dimensions, r.id
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, id, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.SimilarRespondent
	for rows.Next() {
		var (
			s       domain.SimilarRespondent
			profile string
		)
		if err := rows.Scan(&s.ID, &profile, &s.Distance); err != nil {
			return nil, err
		}
		s.PrimaryProfile = domain.ProfileID(profile)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanRespondent(row pgx.Row) (domain.Respondent, error) {
	var (
		resp    domain.Respondent
		vec     pgvector.Vector
		profile string
	)
	if err := row.Scan(
		&resp.ID,
		&resp.Pseudonym,
		&resp.Answers,
		&vec,
		&profile,
		&resp.Segments,
		&resp.Consent,
		&resp.SubmittedAt,
	); err != nil {
		return domain.Respondent{}, err
	}
	v, err := vectorFrom(vec)
	if err != nil {
		return domain.Respondent{}, err
	}
	resp.Vector = v
	resp.PrimaryProfile = domain.ProfileID(profile)
	return resp, nil
}
