package hiring

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Ожидаемые бизнес-отказы пайплайна. Возвращаются как значения,
// инфраструктурные ошибки идут отдельно обёрнутыми.
var (
	ErrNotFound       = errors.New("application not found")
	ErrNotAccepted    = errors.New("application is not accepted")
	ErrNotScheduled   = errors.New("no interview scheduled")
	ErrNoResponse     = errors.New("no response found to delete")
	ErrResponseExists = errors.New("interview response already submitted")
)

// Repository — порт хранения заявок.
type Repository interface {
	Create(ctx context.Context, app Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	// Точное совпадение по обрезанному телефону, без fuzzy-поиска.
	GetByPhone(ctx context.Context, phone string) (Application, error)
	List(ctx context.Context, status Status, limit, offset int) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, adminNotes string) error
	SetSchedule(ctx context.Context, id uuid.UUID, at *time.Time) error
	SetAppointmentConfirmed(ctx context.Context, id uuid.UUID, confirmed bool) error
	// SaveResponse пишет все поля анкеты и submittedAt одним UPDATE.
	SaveResponse(ctx context.Context, id uuid.UUID, resp InterviewResponse, submittedAt time.Time) error
	// ClearResponse обнуляет все поля анкеты и submittedAt одним UPDATE.
	ClearResponse(ctx context.Context, id uuid.UUID) error
	ListScheduled(ctx context.Context) ([]Application, error)
	// ListDueReminders возвращает заявки с интервью в окне [from, to),
	// по которым напоминание ещё не отправлялось. Перенос даты интервью
	// сбрасывает отметку, напоминание уходит заново.
	ListDueReminders(ctx context.Context, from, to time.Time) ([]Application, error)
	MarkReminded(ctx context.Context, id uuid.UUID, at time.Time) error
}

// ResultRepository — порт хранения итогов собеседований.
// Upsert ключуется уникальным application_id, find-then-create не используется.
type ResultRepository interface {
	Upsert(ctx context.Context, r InterviewResult) (InterviewResult, error)
	GetByApplication(ctx context.Context, applicationID uuid.UUID) (InterviewResult, error)
}
