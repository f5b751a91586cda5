package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/bookit/reservation-api/internal/dto"
	"github.com/bookit/reservation-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ExperienceHandler struct {
	svc service.QueryService
}

func NewExperienceHandler(svc service.QueryService) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

func (h *ExperienceHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/experiences", h.ListExperiences)
	g.GET("/experiences/:id", h.GetExperience)
	g.GET("/slots/:id", h.GetSlot)
}

func (h *ExperienceHandler) ListExperiences(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))

	experiences, err := h.svc.ListExperiences(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	resp := dto.ExperienceListResponse{
		Experiences: make([]dto.ExperienceResponse, len(experiences)),
	}
	for i, e := range experiences {
		resp.Experiences[i] = dto.ToExperienceResponse(&e)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ExperienceHandler) GetExperience(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewError(dto.CodeInvalidInput, "invalid experience id"))
	}

	experience, slots, err := h.svc.GetExperienceWithSlots(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}

	resp := dto.ExperienceDetailResponse{
		Experience: dto.ToExperienceResponse(experience),
		Slots:      make([]dto.SlotAvailabilityResponse, len(slots)),
	}
	for i, a := range slots {
		resp.Slots[i] = dto.ToSlotAvailabilityResponse(a)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ExperienceHandler) GetSlot(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewError(dto.CodeInvalidInput, "invalid slot id"))
	}

	experience, availability, err := h.svc.GetSlotWithExperience(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.SlotDetailResponse{
		Experience: dto.ToExperienceResponse(experience),
		Slot:       dto.ToSlotAvailabilityResponse(*availability),
	})
}
