package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dreamtoapp/modonty/pkg/hiring"
)

// InterviewResultRepository хранит итоги собеседований.
// Инвариант "один итог на заявку" обеспечивает UNIQUE(application_id):
// запись всегда идёт через upsert, а не find-then-create.
type InterviewResultRepository struct {
	pool *pgxpool.Pool
}

func NewInterviewResultRepository(pool *pgxpool.Pool) (*InterviewResultRepository, error) {
	r := &InterviewResultRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *InterviewResultRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS interview_results (
	id UUID PRIMARY KEY,
	application_id UUID NOT NULL UNIQUE REFERENCES applications(id) ON DELETE CASCADE,
	interview_date TIMESTAMPTZ NOT NULL,
	result TEXT NOT NULL,
	rating INT CHECK (rating BETWEEN 1 AND 10),
	interviewer TEXT NOT NULL DEFAULT '',
	strengths TEXT[] NOT NULL DEFAULT '{}',
	weaknesses TEXT[] NOT NULL DEFAULT '{}',
	notes TEXT NOT NULL DEFAULT '',
	recommendation TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *InterviewResultRepository) Upsert(ctx context.Context, res hiring.InterviewResult) (hiring.InterviewResult, error) {
	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	now := time.Now().UTC()
	row := r.pool.QueryRow(ctx, `
INSERT INTO interview_results (
	id, application_id, interview_date, result, rating, interviewer,
	strengths, weaknesses, notes, recommendation, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
ON CONFLICT (application_id) DO UPDATE SET
	interview_date = EXCLUDED.interview_date,
	result = EXCLUDED.result,
	rating = EXCLUDED.rating,
	interviewer = EXCLUDED.interviewer,
	strengths = EXCLUDED.strengths,
	weaknesses = EXCLUDED.weaknesses,
	notes = EXCLUDED.notes,
	recommendation = EXCLUDED.recommendation,
	updated_at = EXCLUDED.updated_at
RETURNING id, application_id, interview_date, result, rating, interviewer,
	strengths, weaknesses, notes, recommendation, created_at, updated_at
`, res.ID, res.ApplicationID, res.InterviewDate, string(res.Result), res.Rating,
		res.Interviewer, res.Strengths, res.Weaknesses, res.Notes,
		res.Recommendation, now)
	return scanResult(row)
}

func (r *InterviewResultRepository) GetByApplication(ctx context.Context, applicationID uuid.UUID) (hiring.InterviewResult, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, application_id, interview_date, result, rating, interviewer,
	strengths, weaknesses, notes, recommendation, created_at, updated_at
FROM interview_results WHERE application_id = $1
`, applicationID)
	res, err := scanResult(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return hiring.InterviewResult{}, hiring.ErrNotFound
	}
	return res, err
}

func scanResult(row pgx.Row) (hiring.InterviewResult, error) {
	var (
		res    hiring.InterviewResult
		result string
	)
	err := row.Scan(
		&res.ID, &res.ApplicationID, &res.InterviewDate, &result, &res.Rating,
		&res.Interviewer, &res.Strengths, &res.Weaknesses, &res.Notes,
		&res.Recommendation, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return hiring.InterviewResult{}, err
	}
	res.Result = hiring.ResultStatus(result)
	res.InterviewDate = res.InterviewDate.UTC()
	res.CreatedAt = res.CreatedAt.UTC()
	res.UpdatedAt = res.UpdatedAt.UTC()
	return res, nil
}
