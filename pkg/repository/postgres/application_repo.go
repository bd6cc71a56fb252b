package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dreamtoapp/modonty/pkg/hiring"
)

// ApplicationRepository хранит заявки кандидатов и nullable-поля
// этапа собеседования.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) (*ApplicationRepository, error) {
	r := &ApplicationRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ApplicationRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS applications (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL,
	position TEXT NOT NULL,
	years_experience INT NOT NULL DEFAULT 0,
	skills TEXT[] NOT NULL DEFAULT '{}',
	cover_letter TEXT NOT NULL DEFAULT '',
	cv_url TEXT NOT NULL DEFAULT '',
	photo_url TEXT NOT NULL DEFAULT '',
	locale TEXT NOT NULL DEFAULT 'ar',
	status TEXT NOT NULL DEFAULT 'PENDING',
	admin_notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL,
	scheduled_interview_at TIMESTAMPTZ,
	appointment_confirmed BOOLEAN NOT NULL DEFAULT FALSE,
	reminder_sent_at TIMESTAMPTZ,
	response_submitted_at TIMESTAMPTZ,
	last_job_exit_reason TEXT,
	last_salary TEXT,
	expected_salary TEXT,
	notice_period TEXT,
	preferred_location TEXT,
	willing_to_relocate BOOLEAN,
	best_interview_time TEXT,
	questions TEXT
);
CREATE INDEX IF NOT EXISTS idx_applications_phone ON applications(phone);
CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status);
CREATE INDEX IF NOT EXISTS idx_applications_scheduled ON applications(scheduled_interview_at)
	WHERE scheduled_interview_at IS NOT NULL;
`)
	return err
}

const applicationColumns = `
	id, name, email, phone, position, years_experience, skills, cover_letter,
	cv_url, photo_url, locale, status, admin_notes, created_at,
	scheduled_interview_at, appointment_confirmed, response_submitted_at,
	last_job_exit_reason, last_salary, expected_salary, notice_period,
	preferred_location, willing_to_relocate, best_interview_time, questions`

func scanApplication(row pgx.Row) (hiring.Application, error) {
	var (
		a          hiring.Application
		status     string
		exitReason *string
		lastSalary *string
		expSalary  *string
		notice     *string
		location   *string
		relocate   *bool
		bestTime   *string
		questions  *string
	)
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.Position, &a.YearsExperience,
		&a.Skills, &a.CoverLetter, &a.CVURL, &a.PhotoURL, &a.Locale, &status,
		&a.AdminNotes, &a.CreatedAt, &a.ScheduledInterviewAt,
		&a.AppointmentConfirmed, &a.ResponseSubmittedAt,
		&exitReason, &lastSalary, &expSalary, &notice, &location, &relocate,
		&bestTime, &questions,
	)
	if err != nil {
		return hiring.Application{}, err
	}
	a.Status = hiring.Status(status)
	a.CreatedAt = a.CreatedAt.UTC()
	// Поля анкеты либо все null, либо все заполнены; якорь — отметка времени.
	if a.ResponseSubmittedAt != nil {
		a.Response = &hiring.InterviewResponse{
			LastJobExitReason: deref(exitReason),
			LastSalary:        deref(lastSalary),
			ExpectedSalary:    deref(expSalary),
			NoticePeriod:      deref(notice),
			PreferredLocation: hiring.WorkLocation(deref(location)),
			WillingToRelocate: relocate != nil && *relocate,
			BestInterviewTime: deref(bestTime),
			Questions:         deref(questions),
		}
	}
	return a, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *ApplicationRepository) Create(ctx context.Context, app hiring.Application) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO applications (
	id, name, email, phone, position, years_experience, skills, cover_letter,
	cv_url, photo_url, locale, status, admin_notes, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`, app.ID, app.Name, app.Email, app.Phone, app.Position, app.YearsExperience,
		app.Skills, app.CoverLetter, app.CVURL, app.PhotoURL, app.Locale,
		string(app.Status), app.AdminNotes, app.CreatedAt)
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (hiring.Application, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+applicationColumns+` FROM applications WHERE id = $1`, id)
	app, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return hiring.Application{}, hiring.ErrNotFound
	}
	return app, err
}

func (r *ApplicationRepository) GetByPhone(ctx context.Context, phone string) (hiring.Application, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE phone = $1 ORDER BY created_at DESC LIMIT 1`,
		strings.TrimSpace(phone))
	app, err := scanApplication(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return hiring.Application{}, hiring.ErrNotFound
	}
	return app, err
}

func (r *ApplicationRepository) List(ctx context.Context, status hiring.Status, limit, offset int) ([]hiring.Application, error) {
	if limit <= 0 {
		limit = 50
	}
	var (
		rows pgx.Rows
		err  error
	)
	if status != "" {
		rows, err = r.pool.Query(ctx,
			`SELECT `+applicationColumns+` FROM applications WHERE status = $3 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
			limit, offset, string(status))
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT `+applicationColumns+` FROM applications ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
			limit, offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func collectApplications(rows pgx.Rows) ([]hiring.Application, error) {
	var res []hiring.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, app)
	}
	return res, rows.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status hiring.Status, adminNotes string) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE applications SET status = $2, admin_notes = $3 WHERE id = $1`,
		id, string(status), adminNotes)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return hiring.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) SetSchedule(ctx context.Context, id uuid.UUID, at *time.Time) error {
	// Снятие расписания сбрасывает и подтверждение встречи. Любое
	// изменение даты сбрасывает отметку о напоминании.
	cmd, err := r.pool.Exec(ctx, `
UPDATE applications
SET scheduled_interview_at = $2,
	appointment_confirmed = CASE WHEN $2::timestamptz IS NULL THEN FALSE ELSE appointment_confirmed END,
	reminder_sent_at = NULL
WHERE id = $1
`, id, at)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return hiring.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) SetAppointmentConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE applications SET appointment_confirmed = $2 WHERE id = $1`,
		id, confirmed)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return hiring.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) SaveResponse(ctx context.Context, id uuid.UUID, resp hiring.InterviewResponse, submittedAt time.Time) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE applications SET
	last_job_exit_reason = $2,
	last_salary = $3,
	expected_salary = $4,
	notice_period = $5,
	preferred_location = $6,
	willing_to_relocate = $7,
	best_interview_time = $8,
	questions = $9,
	response_submitted_at = $10
WHERE id = $1
`, id, resp.LastJobExitReason, resp.LastSalary, resp.ExpectedSalary,
		resp.NoticePeriod, string(resp.PreferredLocation), resp.WillingToRelocate,
		resp.BestInterviewTime, resp.Questions, submittedAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return hiring.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) ClearResponse(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE applications SET
	last_job_exit_reason = NULL,
	last_salary = NULL,
	expected_salary = NULL,
	notice_period = NULL,
	preferred_location = NULL,
	willing_to_relocate = NULL,
	best_interview_time = NULL,
	questions = NULL,
	response_submitted_at = NULL
WHERE id = $1
`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return hiring.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) ListScheduled(ctx context.Context) ([]hiring.Application, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE scheduled_interview_at IS NOT NULL ORDER BY scheduled_interview_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListDueReminders(ctx context.Context, from, to time.Time) ([]hiring.Application, error) {
	rows, err := r.pool.Query(ctx, `
SELECT `+applicationColumns+` FROM applications
WHERE scheduled_interview_at IS NOT NULL
	AND scheduled_interview_at >= $1 AND scheduled_interview_at < $2
	AND reminder_sent_at IS NULL
ORDER BY scheduled_interview_at
`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE applications SET reminder_sent_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return hiring.ErrNotFound
	}
	return nil
}
