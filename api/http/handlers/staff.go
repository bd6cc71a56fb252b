package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dreamtoapp/modonty/api/http/presenter"
	"github.com/dreamtoapp/modonty/pkg/staff"
)

type StaffHandler struct {
	uc staff.UseCase
}

func NewStaffHandler(uc staff.UseCase) *StaffHandler { return &StaffHandler{uc: uc} }

type convertRequest struct {
	ApplicationID string     `json:"applicationId"`
	Phone         string     `json:"phone"`
	EmployeeID    string     `json:"employeeId"`
	Department    string     `json:"department"`
	Salary        *float64   `json:"salary"`
	HireDate      *time.Time `json:"hireDate"`
	Notes         string     `json:"notes"`
	TempPassword  string     `json:"tempPassword"`
}

// Convert конвертирует прошедшего собеседование кандидата в сотрудника.
// Пароль в ответе показывается ровно один раз.
// @Summary Конвертировать кандидата в сотрудника
// @Tags    Сотрудники
// @Accept  json
// @Produce json
// @Param   input body convertRequest true "Заявка (по ID или телефону) и кадровые поля"
// @Security BearerAuth
// @Success 201 {object} staff.ConvertOutput
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /staff/convert [post]
func (h *StaffHandler) Convert(c *fiber.Ctx) error {
	var req convertRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	in := staff.ConvertInput{
		Phone:        req.Phone,
		EmployeeID:   req.EmployeeID,
		Department:   req.Department,
		Salary:       req.Salary,
		HireDate:     req.HireDate,
		Notes:        req.Notes,
		TempPassword: req.TempPassword,
	}
	if req.ApplicationID != "" {
		id, err := uuid.Parse(req.ApplicationID)
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "invalid application UUID")
		}
		in.ApplicationID = id
	}
	out, err := h.uc.Convert(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrNotEligible):
			return presenter.Error(c, http.StatusNotFound, "not found/not eligible")
		case errors.Is(err, staff.ErrNotPassed):
			return presenter.Error(c, http.StatusConflict, "has not passed interview")
		case errors.Is(err, staff.ErrAlreadyHired):
			return presenter.Error(c, http.StatusConflict, "already hired")
		case errors.Is(err, staff.ErrStaffExists):
			return presenter.Error(c, http.StatusConflict, "staff with this email or phone already exists")
		case errors.Is(err, staff.ErrUserExists):
			return presenter.Error(c, http.StatusConflict, "user with this email already exists")
		case errors.Is(err, staff.ErrEmployeeIDTaken):
			return presenter.Error(c, http.StatusConflict, "employee id is already taken")
		case errors.Is(err, staff.ErrWeakPassword):
			return presenter.Error(c, http.StatusBadRequest, "password must be at least 8 characters")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to convert application")
		}
	}
	return presenter.JSON(c, http.StatusCreated, out)
}

// List возвращает кадровые записи.
// @Summary Список сотрудников
// @Tags    Сотрудники
// @Produce json
// @Security BearerAuth
// @Success 200 {array} staff.Staff
// @Router  /staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	res, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list staff")
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// GetByID возвращает кадровую запись.
// @Summary Получить сотрудника по ID
// @Tags    Сотрудники
// @Produce json
// @Param   id path string true "ID сотрудника (UUID)"
// @Security BearerAuth
// @Success 200 {object} staff.Staff
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /staff/{id} [get]
func (h *StaffHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	res, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, staff.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "staff not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get staff")
	}
	return presenter.JSON(c, http.StatusOK, res)
}
