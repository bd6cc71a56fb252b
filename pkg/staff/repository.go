package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dreamtoapp/modonty/pkg/auth"
)

// Бизнес-отказы конвертации. Репозиторий обязан транслировать
// нарушения уникальных ограничений хранилища в эти же ошибки:
// предварительные проверки в use case лишь дают дружелюбное сообщение,
// гонку двух одновременных конвертаций решает констрейнт.
var (
	ErrNotFound        = errors.New("staff not found")
	ErrStaffExists     = errors.New("staff with this email or phone already exists")
	ErrUserExists      = errors.New("user with this email already exists")
	ErrEmployeeIDTaken = errors.New("employee id is already taken")
	ErrWeakPassword    = errors.New("password must be at least 8 characters")
)

// Repository — порт хранения кадровых записей.
type Repository interface {
	GetByID(ctx context.Context, id uuid.UUID) (Staff, error)
	// Точное совпадение по email ИЛИ телефону.
	GetByEmailOrPhone(ctx context.Context, email, phone string) (Staff, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (Staff, error)
	List(ctx context.Context, limit, offset int) ([]Staff, error)
	// CreateWithUser создаёт пользователя и кадровую запись в одной
	// транзакции: либо обе записи, либо ни одной.
	CreateWithUser(ctx context.Context, s Staff, u auth.User) error
}
