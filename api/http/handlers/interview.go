package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/dreamtoapp/modonty/api/http/presenter"
	"github.com/dreamtoapp/modonty/pkg/hiring"
)

type InterviewHandler struct {
	uc            hiring.UseCase
	defaultLocale string
}

func NewInterviewHandler(uc hiring.UseCase, defaultLocale string) *InterviewHandler {
	return &InterviewHandler{uc: uc, defaultLocale: defaultLocale}
}

type scheduleRequest struct {
	// RFC3339; null снимает расписание
	ScheduledAt *time.Time `json:"scheduledAt"`
}

// Schedule назначает, переносит или снимает дату интервью.
// @Summary Назначить интервью
// @Tags    Собеседования
// @Accept  json
// @Produce json
// @Param   id path string true "ID заявки (UUID)"
// @Param   input body scheduleRequest true "Дата интервью (null — снять)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /applications/{id}/interview [put]
func (h *InterviewHandler) Schedule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if req.ScheduledAt == nil {
		err = h.uc.ClearSchedule(c.Context(), id)
	} else {
		err = h.uc.Schedule(c.Context(), id, *req.ScheduledAt)
	}
	if err != nil {
		return interviewError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type confirmRequest struct {
	Confirmed bool `json:"confirmed"`
}

// Confirm выставляет флаг подтверждения встречи.
// @Summary Подтвердить встречу
// @Tags    Собеседования
// @Accept  json
// @Produce json
// @Param   id path string true "ID заявки (UUID)"
// @Param   input body confirmRequest true "Флаг подтверждения"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /applications/{id}/interview/confirm [patch]
func (h *InterviewHandler) Confirm(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req confirmRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	if err := h.uc.ConfirmAppointment(c.Context(), id, req.Confirmed); err != nil {
		return interviewError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type responseRequest struct {
	LastJobExitReason string `json:"lastJobExitReason"`
	LastSalary        string `json:"lastSalary"`
	ExpectedSalary    string `json:"expectedSalary"`
	NoticePeriod      string `json:"noticePeriod"`
	PreferredLocation string `json:"preferredLocation"`
	WillingToRelocate *bool  `json:"willingToRelocate"`
	BestInterviewTime string `json:"bestInterviewTime"`
	Questions         string `json:"questions"`
}

// SubmitResponse принимает анкету кандидата перед собеседованием.
// Валидация "все поля обязательны" живёт здесь, на транспортном слое.
// @Summary Отправить анкету перед интервью
// @Tags    Собеседования
// @Accept  json
// @Produce json
// @Param   id path string true "ID заявки (UUID)"
// @Param   input body responseRequest true "Анкета (все поля обязательны)"
// @Success 204 {object} nil
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /applications/{id}/interview/response [post]
func (h *InterviewHandler) SubmitResponse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req responseRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.ErrorLocalized(c, http.StatusBadRequest,
			"invalid JSON payload", "صيغة الطلب غير صحيحة")
	}
	if field, ok := missingResponseField(req); !ok {
		return presenter.ErrorLocalized(c, http.StatusBadRequest,
			field+" is required", "هذا الحقل مطلوب: "+field)
	}
	loc, ok := hiring.ParseWorkLocation(req.PreferredLocation)
	if !ok {
		return presenter.ErrorLocalized(c, http.StatusBadRequest,
			"preferredLocation must be OFFICE, REMOTE or HYBRID",
			"مكان العمل المفضل يجب أن يكون OFFICE أو REMOTE أو HYBRID")
	}
	resp := hiring.InterviewResponse{
		LastJobExitReason: strings.TrimSpace(req.LastJobExitReason),
		LastSalary:        strings.TrimSpace(req.LastSalary),
		ExpectedSalary:    strings.TrimSpace(req.ExpectedSalary),
		NoticePeriod:      strings.TrimSpace(req.NoticePeriod),
		PreferredLocation: loc,
		WillingToRelocate: *req.WillingToRelocate,
		BestInterviewTime: strings.TrimSpace(req.BestInterviewTime),
		Questions:         strings.TrimSpace(req.Questions),
	}
	if err := h.uc.SubmitResponse(c.Context(), id, resp); err != nil {
		return interviewError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// missingResponseField возвращает имя первого незаполненного обязательного
// поля анкеты. Questions — единственное необязательное поле.
func missingResponseField(req responseRequest) (string, bool) {
	switch {
	case strings.TrimSpace(req.LastJobExitReason) == "":
		return "lastJobExitReason", false
	case strings.TrimSpace(req.LastSalary) == "":
		return "lastSalary", false
	case strings.TrimSpace(req.ExpectedSalary) == "":
		return "expectedSalary", false
	case strings.TrimSpace(req.NoticePeriod) == "":
		return "noticePeriod", false
	case strings.TrimSpace(req.PreferredLocation) == "":
		return "preferredLocation", false
	case req.WillingToRelocate == nil:
		return "willingToRelocate", false
	case strings.TrimSpace(req.BestInterviewTime) == "":
		return "bestInterviewTime", false
	}
	return "", true
}

// DeleteResponse удаляет анкету кандидата (все поля разом).
// @Summary Удалить анкету перед интервью
// @Tags    Собеседования
// @Produce json
// @Param   id path string true "ID заявки (UUID)"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /applications/{id}/interview/response [delete]
func (h *InterviewHandler) DeleteResponse(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	if err := h.uc.DeleteResponse(c.Context(), id); err != nil {
		return interviewError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

type resultRequest struct {
	InterviewDate  time.Time `json:"interviewDate"`
	Result         string    `json:"result"`
	Rating         *int      `json:"rating"`
	Interviewer    string    `json:"interviewer"`
	Strengths      []string  `json:"strengths"`
	Weaknesses     []string  `json:"weaknesses"`
	Notes          string    `json:"notes"`
	Recommendation string    `json:"recommendation"`
}

// RecordResult создаёт или заменяет итог собеседования (upsert).
// @Summary Записать итог собеседования
// @Tags    Собеседования
// @Accept  json
// @Produce json
// @Param   id path string true "ID заявки (UUID)"
// @Param   input body resultRequest true "Итог собеседования"
// @Security BearerAuth
// @Success 200 {object} hiring.InterviewResult
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /applications/{id}/interview/result [put]
func (h *InterviewHandler) RecordResult(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid UUID")
	}
	var req resultRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	res, err := h.uc.RecordResult(c.Context(), hiring.InterviewResult{
		ApplicationID:  id,
		InterviewDate:  req.InterviewDate,
		Result:         hiring.ResultStatus(req.Result),
		Rating:         req.Rating,
		Interviewer:    req.Interviewer,
		Strengths:      req.Strengths,
		Weaknesses:     req.Weaknesses,
		Notes:          req.Notes,
		Recommendation: req.Recommendation,
	})
	if err != nil {
		return interviewError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, res)
}

// Calendar возвращает интервью, сгруппированные по дням:
// предстоящие по возрастанию, затем прошедшие по убыванию.
// @Summary Календарь интервью
// @Tags    Собеседования
// @Produce json
// @Param   locale query string false "Локаль заголовков (ar/en)"
// @Security BearerAuth
// @Success 200 {array} hiring.DayBucket
// @Router  /interviews/calendar [get]
func (h *InterviewHandler) Calendar(c *fiber.Ctx) error {
	locale := strings.TrimSpace(c.Query("locale"))
	if locale == "" {
		locale = h.defaultLocale
	}
	buckets, err := h.uc.Calendar(c.Context(), locale)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to build calendar")
	}
	return presenter.JSON(c, http.StatusOK, buckets)
}

// interviewError транслирует бизнес-отказы пайплайна в HTTP-статусы.
func interviewError(c *fiber.Ctx, err error) error {
	var ve hiring.ErrValidation
	switch {
	case errors.Is(err, hiring.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "application not found")
	case errors.Is(err, hiring.ErrNotAccepted):
		return presenter.Error(c, http.StatusConflict, "application is not accepted")
	case errors.Is(err, hiring.ErrNotScheduled):
		return presenter.Error(c, http.StatusConflict, "no interview scheduled")
	case errors.Is(err, hiring.ErrNoResponse):
		return presenter.Error(c, http.StatusConflict, "no response found to delete")
	case errors.Is(err, hiring.ErrResponseExists):
		return presenter.Error(c, http.StatusConflict, "interview response already submitted")
	case errors.As(err, &ve):
		return presenter.Error(c, http.StatusBadRequest, ve.Error())
	default:
		return presenter.Error(c, http.StatusInternalServerError, "operation failed")
	}
}
