package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dreamtoapp/modonty/api/http/presenter"
	"github.com/dreamtoapp/modonty/pkg/textutil"
)

// CareersHandler отдаёт разделы карьерной страницы, нарезанные из markdown.
type CareersHandler struct {
	sections []textutil.Section
}

func NewCareersHandler(md string) *CareersHandler {
	return &CareersHandler{sections: textutil.Sections(md)}
}

// Sections возвращает контент карьерной страницы.
// @Summary Разделы карьерной страницы
// @Tags    Карьера
// @Produce json
// @Success 200 {array} textutil.Section
// @Router  /careers [get]
func (h *CareersHandler) Sections(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.sections)
}
