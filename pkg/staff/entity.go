package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff — кадровая запись сотрудника. Идентификационные поля —
// денормализованный снимок заявки на момент конвертации.
type Staff struct {
	ID            uuid.UUID `json:"id"`
	ApplicationID uuid.UUID `json:"applicationId"`
	UserID        uuid.UUID `json:"userId"`
	EmployeeID    string    `json:"employeeId,omitempty"` // уникален, если задан
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Position      string    `json:"position"`
	Skills        []string  `json:"skills,omitempty"`
	PhotoURL      string    `json:"photoUrl,omitempty"`
	CVURL         string    `json:"cvUrl,omitempty"`
	Department    string    `json:"department,omitempty"`
	HireDate      time.Time `json:"hireDate"`
	Salary        *float64  `json:"salary,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
