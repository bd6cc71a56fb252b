package hiring

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamtoapp/modonty/pkg/notify"
)

// fakeAppRepo — потокобезопасное in-memory хранилище заявок для тестов.
type fakeAppRepo struct {
	mu       sync.Mutex
	apps     map[uuid.UUID]Application
	reminded map[uuid.UUID]bool
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{
		apps:     make(map[uuid.UUID]Application),
		reminded: make(map[uuid.UUID]bool),
	}
}

func (r *fakeAppRepo) Create(_ context.Context, app Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = app
	return nil
}

func (r *fakeAppRepo) GetByID(_ context.Context, id uuid.UUID) (Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return Application{}, ErrNotFound
	}
	return app, nil
}

func (r *fakeAppRepo) GetByPhone(_ context.Context, phone string) (Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var found *Application
	for _, app := range r.apps {
		if app.Phone == phone {
			a := app
			if found == nil || a.CreatedAt.After(found.CreatedAt) {
				found = &a
			}
		}
	}
	if found == nil {
		return Application{}, ErrNotFound
	}
	return *found, nil
}

func (r *fakeAppRepo) List(_ context.Context, status Status, limit, offset int) ([]Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Application
	for _, app := range r.apps {
		if status == "" || app.Status == status {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) UpdateStatus(_ context.Context, id uuid.UUID, status Status, adminNotes string) error {
	return r.update(id, func(app *Application) {
		app.Status = status
		app.AdminNotes = adminNotes
	})
}

func (r *fakeAppRepo) SetSchedule(_ context.Context, id uuid.UUID, at *time.Time) error {
	return r.update(id, func(app *Application) {
		app.ScheduledInterviewAt = at
		if at == nil {
			app.AppointmentConfirmed = false
		}
	})
}

func (r *fakeAppRepo) SetAppointmentConfirmed(_ context.Context, id uuid.UUID, confirmed bool) error {
	return r.update(id, func(app *Application) { app.AppointmentConfirmed = confirmed })
}

func (r *fakeAppRepo) SaveResponse(_ context.Context, id uuid.UUID, resp InterviewResponse, submittedAt time.Time) error {
	return r.update(id, func(app *Application) {
		app.Response = &resp
		app.ResponseSubmittedAt = &submittedAt
	})
}

func (r *fakeAppRepo) ClearResponse(_ context.Context, id uuid.UUID) error {
	return r.update(id, func(app *Application) {
		app.Response = nil
		app.ResponseSubmittedAt = nil
	})
}

func (r *fakeAppRepo) ListScheduled(_ context.Context) ([]Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Application
	for _, app := range r.apps {
		if app.ScheduledInterviewAt != nil {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) ListDueReminders(_ context.Context, from, to time.Time) ([]Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Application
	for _, app := range r.apps {
		at := app.ScheduledInterviewAt
		if at != nil && !at.Before(from) && at.Before(to) && !r.reminded[app.ID] {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) MarkReminded(_ context.Context, id uuid.UUID, _ time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[id]; !ok {
		return ErrNotFound
	}
	r.reminded[id] = true
	return nil
}

func (r *fakeAppRepo) update(id uuid.UUID, fn func(*Application)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	app, ok := r.apps[id]
	if !ok {
		return ErrNotFound
	}
	fn(&app)
	r.apps[id] = app
	return nil
}

// fakeResultRepo эмулирует upsert по уникальному application_id.
type fakeResultRepo struct {
	mu      sync.Mutex
	results map[uuid.UUID]InterviewResult
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{results: make(map[uuid.UUID]InterviewResult)}
}

func (r *fakeResultRepo) Upsert(_ context.Context, res InterviewResult) (InterviewResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.results[res.ApplicationID]; ok {
		res.ID = existing.ID
		res.CreatedAt = existing.CreatedAt
	} else {
		res.ID = uuid.New()
		res.CreatedAt = time.Now().UTC()
	}
	res.UpdatedAt = time.Now().UTC()
	r.results[res.ApplicationID] = res
	return res, nil
}

func (r *fakeResultRepo) GetByApplication(_ context.Context, applicationID uuid.UUID) (InterviewResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.results[applicationID]
	if !ok {
		return InterviewResult{}, ErrNotFound
	}
	return res, nil
}

func newTestService(apps *fakeAppRepo, results *fakeResultRepo) *service {
	return &service{
		apps:    apps,
		results: results,
		pub:     notify.NopPublisher{},
		now:     func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func seedAccepted(t *testing.T, repo *fakeAppRepo) uuid.UUID {
	t.Helper()
	id := uuid.New()
	err := repo.Create(context.Background(), Application{
		ID:       id,
		Name:     "Ahmed",
		Email:    "ahmed@example.com",
		Phone:    "+966501234567",
		Position: "Accountant",
		Locale:   "ar",
		Status:   StatusAccepted,
	})
	require.NoError(t, err)
	return id
}

func sampleResponse() InterviewResponse {
	return InterviewResponse{
		LastJobExitReason: "relocation",
		LastSalary:        "8000",
		ExpectedSalary:    "10000",
		NoticePeriod:      "1 month",
		PreferredLocation: LocationHybrid,
		WillingToRelocate: true,
		BestInterviewTime: "morning",
	}
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("нормализация и дефолты", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())

		got, err := svc.Submit(ctx, Application{
			Name:     "  Ahmed  ",
			Email:    " AHMED@Example.COM ",
			Phone:    "00966 50-123-4567",
			Position: " Accountant ",
			// Кандидат не может прислать заявку сразу с интервью
			Status:               StatusAccepted,
			ScheduledInterviewAt: &time.Time{},
		})
		require.NoError(t, err)
		assert.Equal(t, "Ahmed", got.Name)
		assert.Equal(t, "ahmed@example.com", got.Email)
		assert.Equal(t, "+966501234567", got.Phone)
		assert.Equal(t, "Accountant", got.Position)
		assert.Equal(t, "ar", got.Locale)
		assert.Equal(t, StatusPending, got.Status)
		assert.Nil(t, got.ScheduledInterviewAt)
		assert.Nil(t, got.ResponseSubmittedAt)
		assert.NotEqual(t, uuid.Nil, got.ID)
	})

	t.Run("обязательные поля", func(t *testing.T) {
		svc := newTestService(newFakeAppRepo(), newFakeResultRepo())
		_, err := svc.Submit(ctx, Application{Name: "Ahmed", Email: "a@b.c", Phone: "+1"})
		var ve ErrValidation
		require.ErrorAs(t, err, &ve)
	})
}

func TestSchedule(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	t.Run("только принятые заявки", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := uuid.New()
		require.NoError(t, repo.Create(ctx, Application{ID: id, Status: StatusPending}))

		err := svc.Schedule(ctx, id, at)
		assert.ErrorIs(t, err, ErrNotAccepted)
	})

	t.Run("назначение и перенос", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := seedAccepted(t, repo)

		require.NoError(t, svc.Schedule(ctx, id, at))
		app, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, app.ScheduledInterviewAt)
		assert.True(t, app.ScheduledInterviewAt.Equal(at))

		// Перенос пока анкета не отправлена разрешён
		later := at.Add(48 * time.Hour)
		require.NoError(t, svc.Schedule(ctx, id, later))
		app, err = repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.True(t, app.ScheduledInterviewAt.Equal(later))
	})

	t.Run("после анкеты расписание заморожено", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := seedAccepted(t, repo)
		require.NoError(t, svc.Schedule(ctx, id, at))
		require.NoError(t, svc.SubmitResponse(ctx, id, sampleResponse()))

		assert.ErrorIs(t, svc.Schedule(ctx, id, at.Add(time.Hour)), ErrResponseExists)
		assert.ErrorIs(t, svc.ClearSchedule(ctx, id), ErrResponseExists)
	})

	t.Run("снятие несуществующего расписания", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := seedAccepted(t, repo)

		assert.ErrorIs(t, svc.ClearSchedule(ctx, id), ErrNotScheduled)
	})

	t.Run("снятие сбрасывает подтверждение", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := seedAccepted(t, repo)
		require.NoError(t, svc.Schedule(ctx, id, at))
		require.NoError(t, svc.ConfirmAppointment(ctx, id, true))

		require.NoError(t, svc.ClearSchedule(ctx, id))
		app, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, app.ScheduledInterviewAt)
		assert.False(t, app.AppointmentConfirmed)
	})
}

func TestConfirmAppointment(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAppRepo()
	svc := newTestService(repo, newFakeResultRepo())
	id := seedAccepted(t, repo)

	// Без расписания подтверждать нечего
	assert.ErrorIs(t, svc.ConfirmAppointment(ctx, id, true), ErrNotScheduled)

	require.NoError(t, svc.Schedule(ctx, id, time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)))
	require.NoError(t, svc.ConfirmAppointment(ctx, id, true))
	app, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, app.AppointmentConfirmed)
}

func TestSubmitResponse(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	t.Run("без назначенного интервью отклоняется", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := seedAccepted(t, repo)

		err := svc.SubmitResponse(ctx, id, sampleResponse())
		assert.ErrorIs(t, err, ErrNotScheduled)
	})

	t.Run("повторная отправка отклоняется", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := seedAccepted(t, repo)
		require.NoError(t, svc.Schedule(ctx, id, at))

		require.NoError(t, svc.SubmitResponse(ctx, id, sampleResponse()))
		err := svc.SubmitResponse(ctx, id, sampleResponse())
		assert.ErrorIs(t, err, ErrResponseExists)

		app, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, app.ResponseSubmittedAt)
		require.NotNil(t, app.Response)
		assert.Equal(t, LocationHybrid, app.Response.PreferredLocation)
	})
}

func TestDeleteResponse(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	t.Run("нечего удалять", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := seedAccepted(t, repo)
		require.NoError(t, svc.Schedule(ctx, id, at))

		err := svc.DeleteResponse(ctx, id)
		assert.ErrorIs(t, err, ErrNoResponse)
		// Заявка не изменилась
		app, gerr := repo.GetByID(ctx, id)
		require.NoError(t, gerr)
		assert.NotNil(t, app.ScheduledInterviewAt)
	})

	t.Run("удаление обнуляет анкету целиком", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := seedAccepted(t, repo)
		require.NoError(t, svc.Schedule(ctx, id, at))
		require.NoError(t, svc.SubmitResponse(ctx, id, sampleResponse()))

		require.NoError(t, svc.DeleteResponse(ctx, id))
		app, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, app.Response)
		assert.Nil(t, app.ResponseSubmittedAt)

		// После удаления можно отправить заново
		assert.NoError(t, svc.SubmitResponse(ctx, id, sampleResponse()))
	})
}

func TestRecordResult(t *testing.T) {
	ctx := context.Background()
	at := time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*service, *fakeResultRepo, uuid.UUID) {
		repo := newFakeAppRepo()
		results := newFakeResultRepo()
		svc := newTestService(repo, results)
		id := seedAccepted(t, repo)
		require.NoError(t, svc.Schedule(ctx, id, at))
		return svc, results, id
	}

	t.Run("без интервью итог не записывается", func(t *testing.T) {
		repo := newFakeAppRepo()
		svc := newTestService(repo, newFakeResultRepo())
		id := seedAccepted(t, repo)

		_, err := svc.RecordResult(ctx, InterviewResult{ApplicationID: id, Result: ResultPassed})
		assert.ErrorIs(t, err, ErrNotScheduled)
	})

	t.Run("валидация итога и рейтинга", func(t *testing.T) {
		svc, _, id := setup(t)
		var ve ErrValidation

		_, err := svc.RecordResult(ctx, InterviewResult{ApplicationID: id, Result: "MAYBE"})
		require.ErrorAs(t, err, &ve)

		bad := 11
		_, err = svc.RecordResult(ctx, InterviewResult{ApplicationID: id, Result: ResultPassed, Rating: &bad})
		require.ErrorAs(t, err, &ve)
	})

	t.Run("повторная запись заменяет итог, строка одна", func(t *testing.T) {
		svc, results, id := setup(t)

		first, err := svc.RecordResult(ctx, InterviewResult{ApplicationID: id, Result: ResultPending, InterviewDate: at})
		require.NoError(t, err)

		second, err := svc.RecordResult(ctx, InterviewResult{ApplicationID: id, Result: ResultPassed, InterviewDate: at})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Len(t, results.results, 1)

		got, err := svc.ResultFor(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, ResultPassed, got.Result)
	})
}

func TestCalendarUseCase(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAppRepo()
	svc := newTestService(repo, newFakeResultRepo())

	id := seedAccepted(t, repo)
	require.NoError(t, svc.Schedule(ctx, id, time.Date(2024, 6, 10, 10, 0, 0, 0, time.UTC)))

	buckets, err := svc.Calendar(ctx, "ar")
	require.NoError(t, err)
	require.Len(t, buckets, 1)
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), buckets[0].Date)
}
