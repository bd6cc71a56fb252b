package staff

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dreamtoapp/modonty/pkg/auth"
	"github.com/dreamtoapp/modonty/pkg/hiring"
	"github.com/dreamtoapp/modonty/pkg/notify"
)

// Причины отказа в найме, в порядке проверки предусловий.
var (
	ErrNotEligible  = errors.New("not found/not eligible")
	ErrNotPassed    = errors.New("has not passed interview")
	ErrAlreadyHired = errors.New("already hired")
)

// ConvertInput — параметры конвертации заявки в сотрудника.
// Заявка адресуется по ID или по телефону (точное совпадение).
type ConvertInput struct {
	ApplicationID uuid.UUID
	Phone         string
	EmployeeID    string
	Department    string
	Salary        *float64
	HireDate      *time.Time
	Notes         string
	TempPassword  string
}

// ConvertOutput возвращает пароль открытым текстом ровно один раз:
// дальше хранится только bcrypt-хэш.
type ConvertOutput struct {
	StaffID  uuid.UUID `json:"staffId"`
	UserID   uuid.UUID `json:"userId"`
	Email    string    `json:"email"`
	Password string    `json:"password"`
}

// UseCase инкапсулирует кадровые операции.
type UseCase interface {
	Convert(ctx context.Context, in ConvertInput) (ConvertOutput, error)
	GetByID(ctx context.Context, id uuid.UUID) (Staff, error)
	List(ctx context.Context, limit, offset int) ([]Staff, error)
}

type service struct {
	staff   Repository
	apps    hiring.Repository
	results hiring.ResultRepository
	users   auth.UserRepository
	pub     notify.Publisher
	now     func() time.Time
}

// NewService returns default implementation of UseCase.
func NewService(staffRepo Repository, apps hiring.Repository, results hiring.ResultRepository, users auth.UserRepository, pub notify.Publisher) UseCase {
	return &service{
		staff:   staffRepo,
		apps:    apps,
		results: results,
		users:   users,
		pub:     pub,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Convert атомарно материализует пару User+Staff из подходящей заявки.
// Предварительные проверки дают точное сообщение об отказе; гонку двух
// одновременных конвертаций разрешают уникальные ограничения хранилища,
// чьё нарушение репозиторий возвращает теми же бизнес-ошибками.
func (s *service) Convert(ctx context.Context, in ConvertInput) (ConvertOutput, error) {
	app, err := s.resolveApplication(ctx, in)
	if err != nil {
		return ConvertOutput{}, err
	}

	var result *hiring.InterviewResult
	if r, err := s.results.GetByApplication(ctx, app.ID); err == nil {
		result = &r
	} else if !errors.Is(err, hiring.ErrNotFound) {
		return ConvertOutput{}, err
	}

	alreadyHired := false
	if _, err := s.staff.GetByEmailOrPhone(ctx, app.Email, app.Phone); err == nil {
		alreadyHired = true
	} else if !errors.Is(err, ErrNotFound) {
		return ConvertOutput{}, err
	}

	switch hiring.EvaluateHire(&app, result, alreadyHired) {
	case hiring.HireBlockNotEligible:
		return ConvertOutput{}, ErrNotEligible
	case hiring.HireBlockNotPassed:
		return ConvertOutput{}, ErrNotPassed
	case hiring.HireBlockAlreadyHired:
		return ConvertOutput{}, ErrAlreadyHired
	}

	if _, err := s.users.GetByEmail(ctx, app.Email); err == nil {
		return ConvertOutput{}, ErrUserExists
	} else if !errors.Is(err, auth.ErrNotFound) {
		return ConvertOutput{}, err
	}

	employeeID := strings.TrimSpace(in.EmployeeID)
	if employeeID != "" {
		if _, err := s.staff.GetByEmployeeID(ctx, employeeID); err == nil {
			return ConvertOutput{}, ErrEmployeeIDTaken
		} else if !errors.Is(err, ErrNotFound) {
			return ConvertOutput{}, err
		}
	}

	password := strings.TrimSpace(in.TempPassword)
	if password == "" {
		password = generatePassword()
	}
	if len(password) < 8 {
		return ConvertOutput{}, ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return ConvertOutput{}, err
	}

	now := s.now()
	user := auth.User{
		ID:           uuid.New(),
		Email:        app.Email,
		PasswordHash: string(hash),
		Name:         app.Name,
		Role:         auth.RoleStaff,
		Active:       true,
		CreatedAt:    now,
	}
	hireDate := now
	if in.HireDate != nil {
		hireDate = in.HireDate.UTC()
	}
	rec := Staff{
		ID:            uuid.New(),
		ApplicationID: app.ID,
		UserID:        user.ID,
		EmployeeID:    employeeID,
		Name:          app.Name,
		Email:         app.Email,
		Phone:         app.Phone,
		Position:      app.Position,
		Skills:        app.Skills,
		PhotoURL:      app.PhotoURL,
		CVURL:         app.CVURL,
		Department:    strings.TrimSpace(in.Department),
		HireDate:      hireDate,
		Salary:        in.Salary,
		Status:        "ACTIVE",
		Notes:         in.Notes,
		CreatedAt:     now,
	}

	if err := s.staff.CreateWithUser(ctx, rec, user); err != nil {
		return ConvertOutput{}, err
	}

	if err := s.pub.Publish(ctx, notify.EventStaffHired, map[string]string{
		"staffId":  rec.ID.String(),
		"phone":    rec.Phone,
		"position": rec.Position,
		"locale":   app.Locale,
	}); err != nil {
		log.Printf("publish %s failed: %v", notify.EventStaffHired, err)
	}

	return ConvertOutput{
		StaffID:  rec.ID,
		UserID:   user.ID,
		Email:    user.Email,
		Password: password,
	}, nil
}

func (s *service) resolveApplication(ctx context.Context, in ConvertInput) (hiring.Application, error) {
	var (
		app hiring.Application
		err error
	)
	switch {
	case in.ApplicationID != uuid.Nil:
		app, err = s.apps.GetByID(ctx, in.ApplicationID)
	case strings.TrimSpace(in.Phone) != "":
		app, err = s.apps.GetByPhone(ctx, strings.TrimSpace(in.Phone))
	default:
		return hiring.Application{}, ErrNotEligible
	}
	if errors.Is(err, hiring.ErrNotFound) {
		return hiring.Application{}, ErrNotEligible
	}
	return app, err
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (Staff, error) {
	return s.staff.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Staff, error) {
	return s.staff.List(ctx, limit, offset)
}
