package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dreamtoapp/modonty/api/http/presenter"
	"github.com/dreamtoapp/modonty/pkg/hiring"
)

type ApplicationHandler struct {
	uc hiring.UseCase
}

func NewApplicationHandler(uc hiring.UseCase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type submitApplicationRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Position        string   `json:"position"`
	YearsExperience int      `json:"yearsExperience"`
	Skills          []string `json:"skills"`
	CoverLetter     string   `json:"coverLetter"`
	CVURL           string   `json:"cvUrl"`
	PhotoURL        string   `json:"photoUrl"`
	Locale          string   `json:"locale"`
}

// Submit принимает заявку с публичной карьерной страницы.
// @Summary Отправить заявку кандидата
// @Tags    Заявки
// @Accept  json
// @Produce json
// @Param   input body submitApplicationRequest true "Анкета кандидата"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /applications [post]
func (h *ApplicationHandler) Submit(c *fiber.Ctx) error {
	var req submitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.ErrorLocalized(c, http.StatusBadRequest,
			"invalid JSON payload", "صيغة الطلب غير صحيحة")
	}
	app, err := h.uc.Submit(c.Context(), hiring.Application{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		Position:        req.Position,
		YearsExperience: req.YearsExperience,
		Skills:          req.Skills,
		CoverLetter:     req.CoverLetter,
		CVURL:           req.CVURL,
		PhotoURL:        req.PhotoURL,
		Locale:          req.Locale,
	})
	if err != nil {
		var ve hiring.ErrValidation
		if errors.As(err, &ve) {
			return presenter.ErrorLocalized(c, http.StatusBadRequest,
				ve.Error(), "يرجى تعبئة جميع الحقول المطلوبة")
		}
		return presenter.ErrorLocalized(c, http.StatusInternalServerError,
			"failed to submit application", "تعذر إرسال الطلب، حاول مرة أخرى")
	}
	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"id":     app.ID.String(),
		"status": string(app.Status),
	})
}

// List возвращает заявки для админки с фильтром по статусу.
// @Summary Список заявок
// @Tags    Заявки
// @Produce json
// @Param   status query string false "Фильтр по статусу (PENDING/REVIEWED/ACCEPTED/REJECTED)"
// @Security BearerAuth
// @Success 200 {array} hiring.Application
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /applications [get]
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	var status hiring.Status
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		st, ok := hiring.ParseStatus(v)
		if !ok {
			return presenter.Error(c, http.StatusBadRequest, "unknown application status")
		}
		status = st
	}
	apps, err := h.uc.List(c.Context(), status, limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list applications")
	}
	return presenter.JSON(c, http.StatusOK, apps)
}

// GetByID возвращает заявку целиком, включая поля этапа собеседования.
// @Summary Получить заявку по ID
// @Tags    Заявки
// @Produce json
// @Param   id path string true "ID заявки (UUID)"
// @Security BearerAuth
// @Success 200 {object} hiring.Application
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	app, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, hiring.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "application not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get application")
	}
	return presenter.JSON(c, http.StatusOK, app)
}

type updateStatusRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// UpdateStatus меняет статус заявки и заметки администратора.
// @Summary Обновить статус заявки
// @Tags    Заявки
// @Accept  json
// @Produce json
// @Param   id path string true "ID заявки (UUID)"
// @Param   input body updateStatusRequest true "Новый статус"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/status [patch]
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	st, ok := hiring.ParseStatus(req.Status)
	if !ok {
		return presenter.Error(c, http.StatusBadRequest, "unknown application status")
	}
	if err := h.uc.UpdateStatus(c.Context(), id, st, req.AdminNotes); err != nil {
		if errors.Is(err, hiring.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "application not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update status")
	}
	return c.SendStatus(http.StatusNoContent)
}
