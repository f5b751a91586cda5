package handler

import (
	"net/http"
	"strconv"

	"github.com/bookit/reservation-api/internal/dto"
	"github.com/bookit/reservation-api/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/bookings", h.CreateBooking)
	g.GET("/bookings/:id", h.GetReservation)
	g.GET("/slots/:id/bookings", h.ListReservations)
	g.POST("/promo/validate", h.ValidatePromo)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewError(dto.CodeInvalidInput, "invalid request body"))
	}

	reservation, err := h.svc.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		SlotID:             req.SlotID,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		Quantity:           req.Quantity,
		PromoCode:          req.PromoCode,
		ExpectedTotalCents: req.ExpectedTotalCents,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *BookingHandler) GetReservation(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewError(dto.CodeInvalidInput, "invalid reservation id"))
	}

	reservation, err := h.svc.GetReservation(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToReservationResponse(reservation))
}

func (h *BookingHandler) ListReservations(c echo.Context) error {
	slotID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewError(dto.CodeInvalidInput, "invalid slot id"))
	}

	reservations, err := h.svc.ListReservations(c.Request().Context(), uint(slotID))
	if err != nil {
		return respondError(c, err)
	}

	resp := make([]dto.ReservationResponse, len(reservations))
	for i, r := range reservations {
		resp[i] = dto.ToReservationResponse(&r)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ValidatePromo(c echo.Context) error {
	var req dto.ValidatePromoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewError(dto.CodeInvalidInput, "invalid request body"))
	}
	if req.Code == "" {
		return c.JSON(http.StatusBadRequest, dto.NewError(dto.CodeInvalidInput, "code is required"))
	}

	quote, err := h.svc.ValidatePromo(c.Request().Context(), req.Code, req.SubtotalCents)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToPromoValidationResponse(quote))
}
