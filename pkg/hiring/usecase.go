package hiring

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dreamtoapp/modonty/pkg/notify"
	"github.com/dreamtoapp/modonty/pkg/textutil"
)

// UseCase инкапсулирует пайплайн найма: приём заявок, статусы,
// этап собеседования и календарь интервью.
type UseCase interface {
	Submit(ctx context.Context, app Application) (Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	GetByPhone(ctx context.Context, phone string) (Application, error)
	List(ctx context.Context, status Status, limit, offset int) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, adminNotes string) error

	Schedule(ctx context.Context, id uuid.UUID, at time.Time) error
	ClearSchedule(ctx context.Context, id uuid.UUID) error
	ConfirmAppointment(ctx context.Context, id uuid.UUID, confirmed bool) error
	SubmitResponse(ctx context.Context, id uuid.UUID, resp InterviewResponse) error
	DeleteResponse(ctx context.Context, id uuid.UUID) error
	RecordResult(ctx context.Context, r InterviewResult) (InterviewResult, error)
	ResultFor(ctx context.Context, applicationID uuid.UUID) (InterviewResult, error)
	Calendar(ctx context.Context, locale string) ([]DayBucket, error)
}

type service struct {
	apps    Repository
	results ResultRepository
	pub     notify.Publisher
	now     func() time.Time
}

// NewService returns default implementation of UseCase.
func NewService(apps Repository, results ResultRepository, pub notify.Publisher) UseCase {
	return &service{
		apps:    apps,
		results: results,
		pub:     pub,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Submit(ctx context.Context, app Application) (Application, error) {
	app.Name = strings.TrimSpace(app.Name)
	app.Email = strings.ToLower(strings.TrimSpace(app.Email))
	app.Position = strings.TrimSpace(app.Position)
	app.Phone = textutil.NormalizePhone(app.Phone)
	if app.Name == "" || app.Email == "" || app.Phone == "" || app.Position == "" {
		return Application{}, ErrValidation("name, email, phone and position are required")
	}
	if app.Locale == "" {
		app.Locale = "ar"
	}
	app.ID = uuid.New()
	app.Status = StatusPending
	app.CreatedAt = s.now()
	// Заявка создаётся чистой: полей этапа собеседования ещё нет.
	app.ScheduledInterviewAt = nil
	app.AppointmentConfirmed = false
	app.ResponseSubmittedAt = nil
	app.Response = nil

	if err := s.apps.Create(ctx, app); err != nil {
		return Application{}, err
	}

	// Уведомление не блокирует приём заявки.
	if err := s.pub.Publish(ctx, notify.EventApplicationReceived, map[string]string{
		"applicationId": app.ID.String(),
		"name":          app.Name,
		"phone":         app.Phone,
		"position":      app.Position,
		"locale":        app.Locale,
	}); err != nil {
		log.Printf("publish %s failed: %v", notify.EventApplicationReceived, err)
	}
	return app, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Application, error) {
	return s.apps.GetByID(ctx, id)
}

func (s *service) GetByPhone(ctx context.Context, phone string) (Application, error) {
	return s.apps.GetByPhone(ctx, strings.TrimSpace(phone))
}

func (s *service) List(ctx context.Context, status Status, limit, offset int) ([]Application, error) {
	return s.apps.List(ctx, status, limit, offset)
}

func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status, adminNotes string) error {
	if _, ok := ParseStatus(string(status)); !ok {
		return ErrValidation("unknown application status")
	}
	return s.apps.UpdateStatus(ctx, id, status, adminNotes)
}

// Schedule назначает (или переносит) дату интервью.
// Пока анкета после интервью не отправлена, расписание свободно меняется.
func (s *service) Schedule(ctx context.Context, id uuid.UUID, at time.Time) error {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !EligibleForScheduling(&app) {
		return ErrNotAccepted
	}
	// Переход RESPONSE_SUBMITTED → SCHEDULED выполняет только удаление
	// анкеты; назначение и перенос даты из этого состояния запрещены.
	if InterviewState(&app) == StateResponseSubmitted {
		return ErrResponseExists
	}
	at = at.UTC()
	if err := s.apps.SetSchedule(ctx, id, &at); err != nil {
		return err
	}
	if err := s.pub.Publish(ctx, notify.EventInterviewScheduled, map[string]string{
		"applicationId": id.String(),
		"phone":         app.Phone,
		"scheduledAt":   at.Format(time.RFC3339),
		"locale":        app.Locale,
	}); err != nil {
		log.Printf("publish %s failed: %v", notify.EventInterviewScheduled, err)
	}
	return nil
}

func (s *service) ClearSchedule(ctx context.Context, id uuid.UUID) error {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return err
	}
	st := InterviewState(&app)
	if !CanTransition(st, StateNoInterview) {
		if st == StateNoInterview {
			return ErrNotScheduled
		}
		return ErrResponseExists
	}
	return s.apps.SetSchedule(ctx, id, nil)
}

func (s *service) ConfirmAppointment(ctx context.Context, id uuid.UUID, confirmed bool) error {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if InterviewState(&app) == StateNoInterview {
		return ErrNotScheduled
	}
	return s.apps.SetAppointmentConfirmed(ctx, id, confirmed)
}

// SubmitResponse принимает анкету кандидата. Обязательность каждого поля
// проверяет транспортный слой; здесь — только предусловия состояния.
func (s *service) SubmitResponse(ctx context.Context, id uuid.UUID, resp InterviewResponse) error {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return err
	}
	st := InterviewState(&app)
	if !CanTransition(st, StateResponseSubmitted) {
		if st == StateResponseSubmitted {
			return ErrResponseExists
		}
		return ErrNotScheduled
	}
	return s.apps.SaveResponse(ctx, id, resp, s.now())
}

func (s *service) DeleteResponse(ctx context.Context, id uuid.UUID) error {
	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if InterviewState(&app) != StateResponseSubmitted {
		return ErrNoResponse
	}
	return s.apps.ClearResponse(ctx, id)
}

// RecordResult создаёт или целиком заменяет итог собеседования
// (upsert по application_id). Допустим до и после анкеты кандидата.
func (s *service) RecordResult(ctx context.Context, r InterviewResult) (InterviewResult, error) {
	app, err := s.apps.GetByID(ctx, r.ApplicationID)
	if err != nil {
		return InterviewResult{}, err
	}
	if !CanTransition(InterviewState(&app), StateResultRecorded) {
		return InterviewResult{}, ErrNotScheduled
	}
	if _, ok := ParseResultStatus(string(r.Result)); !ok {
		return InterviewResult{}, ErrValidation("unknown interview result")
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 10) {
		return InterviewResult{}, ErrValidation("rating must be between 1 and 10")
	}
	return s.results.Upsert(ctx, r)
}

func (s *service) ResultFor(ctx context.Context, applicationID uuid.UUID) (InterviewResult, error) {
	return s.results.GetByApplication(ctx, applicationID)
}

func (s *service) Calendar(ctx context.Context, locale string) ([]DayBucket, error) {
	apps, err := s.apps.ListScheduled(ctx)
	if err != nil {
		return nil, err
	}
	return GroupByDay(apps, s.now(), locale), nil
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
