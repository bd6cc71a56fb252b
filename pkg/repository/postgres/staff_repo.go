package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dreamtoapp/modonty/pkg/auth"
	"github.com/dreamtoapp/modonty/pkg/staff"
)

// StaffRepository хранит кадровые записи. Уникальные ограничения на
// email/phone/employee_id — последний арбитр гонки двух конвертаций:
// их нарушение возвращается той же бизнес-ошибкой, что и предпроверка.
type StaffRepository struct {
	pool *pgxpool.Pool
}

func NewStaffRepository(pool *pgxpool.Pool) (*StaffRepository, error) {
	r := &StaffRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *StaffRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS staff (
	id UUID PRIMARY KEY,
	application_id UUID NOT NULL UNIQUE REFERENCES applications(id),
	user_id UUID NOT NULL UNIQUE REFERENCES users(id),
	employee_id TEXT UNIQUE,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	phone TEXT NOT NULL UNIQUE,
	position TEXT NOT NULL,
	skills TEXT[] NOT NULL DEFAULT '{}',
	photo_url TEXT NOT NULL DEFAULT '',
	cv_url TEXT NOT NULL DEFAULT '',
	department TEXT NOT NULL DEFAULT '',
	hire_date TIMESTAMPTZ NOT NULL,
	salary NUMERIC,
	status TEXT NOT NULL DEFAULT 'ACTIVE',
	notes TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

const staffColumns = `
	id, application_id, user_id, employee_id, name, email, phone, position,
	skills, photo_url, cv_url, department, hire_date, salary, status, notes,
	created_at`

func scanStaff(row pgx.Row) (staff.Staff, error) {
	var (
		s          staff.Staff
		employeeID *string
	)
	err := row.Scan(
		&s.ID, &s.ApplicationID, &s.UserID, &employeeID, &s.Name, &s.Email,
		&s.Phone, &s.Position, &s.Skills, &s.PhotoURL, &s.CVURL, &s.Department,
		&s.HireDate, &s.Salary, &s.Status, &s.Notes, &s.CreatedAt,
	)
	if err != nil {
		return staff.Staff{}, err
	}
	if employeeID != nil {
		s.EmployeeID = *employeeID
	}
	s.HireDate = s.HireDate.UTC()
	s.CreatedAt = s.CreatedAt.UTC()
	return s, nil
}

func (r *StaffRepository) GetByID(ctx context.Context, id uuid.UUID) (staff.Staff, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id)
	s, err := scanStaff(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return staff.Staff{}, staff.ErrNotFound
	}
	return s, err
}

func (r *StaffRepository) GetByEmailOrPhone(ctx context.Context, email, phone string) (staff.Staff, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff WHERE email = $1 OR phone = $2 LIMIT 1`,
		strings.ToLower(strings.TrimSpace(email)), strings.TrimSpace(phone))
	s, err := scanStaff(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return staff.Staff{}, staff.ErrNotFound
	}
	return s, err
}

func (r *StaffRepository) GetByEmployeeID(ctx context.Context, employeeID string) (staff.Staff, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+staffColumns+` FROM staff WHERE employee_id = $1`, employeeID)
	s, err := scanStaff(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return staff.Staff{}, staff.ErrNotFound
	}
	return s, err
}

func (r *StaffRepository) List(ctx context.Context, limit, offset int) ([]staff.Staff, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+staffColumns+` FROM staff ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []staff.Staff
	for rows.Next() {
		s, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}

// CreateWithUser создаёт пользователя и кадровую запись в одной транзакции:
// либо обе строки, либо ни одной.
func (r *StaffRepository) CreateWithUser(ctx context.Context, s staff.Staff, u auth.User) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
INSERT INTO users (id, email, password_hash, name, role, active, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, u.ID, strings.ToLower(u.Email), u.PasswordHash, u.Name, string(u.Role),
		u.Active, u.CreatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}

	var employeeID *string
	if s.EmployeeID != "" {
		employeeID = &s.EmployeeID
	}
	_, err = tx.Exec(ctx, `
INSERT INTO staff (
	id, application_id, user_id, employee_id, name, email, phone, position,
	skills, photo_url, cv_url, department, hire_date, salary, status, notes,
	created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
`, s.ID, s.ApplicationID, s.UserID, employeeID, s.Name,
		strings.ToLower(s.Email), s.Phone, s.Position, s.Skills, s.PhotoURL,
		s.CVURL, s.Department, s.HireDate, s.Salary, s.Status, s.Notes,
		s.CreatedAt)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return tx.Commit(ctx)
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" { // unique_violation
		return err
	}
	switch {
	case strings.HasPrefix(pgErr.ConstraintName, "users_"):
		return staff.ErrUserExists
	case pgErr.ConstraintName == "staff_employee_id_key":
		return staff.ErrEmployeeIDTaken
	default:
		return staff.ErrStaffExists
	}
}
