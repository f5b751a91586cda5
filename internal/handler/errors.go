package handler

import (
	"errors"
	"net/http"

	"github.com/bookit/reservation-api/internal/dto"
	"github.com/bookit/reservation-api/internal/service"
	"github.com/labstack/echo/v4"
)

// respondError maps a service error to an HTTP status plus a stable reason
// code. Unmapped errors surface as storage/internal failures — never as a
// silent success.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, dto.NewError(dto.CodeInvalidInput, err.Error()))
	case errors.Is(err, service.ErrExperienceNotFound),
		errors.Is(err, service.ErrSlotNotFound),
		errors.Is(err, service.ErrReservationNotFound):
		return c.JSON(http.StatusNotFound, dto.NewError(dto.CodeNotFound, err.Error()))
	case errors.Is(err, service.ErrDuplicateBooking):
		return c.JSON(http.StatusConflict, dto.NewError(dto.CodeDuplicateBooking, err.Error()))
	case errors.Is(err, service.ErrInsufficientCapacity):
		return c.JSON(http.StatusConflict, dto.NewError(dto.CodeInsufficientCapacity, err.Error()))
	case errors.Is(err, service.ErrPriceMismatch):
		return c.JSON(http.StatusConflict, dto.NewError(dto.CodePriceMismatch, err.Error()))
	default:
		return c.JSON(http.StatusServiceUnavailable, dto.NewError(dto.CodeStorageUnavailable, "storage unavailable, retry the request"))
	}
}
