package middleware

import (
	"net/http"

	"github.com/bookit/reservation-api/internal/dto"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escaped the handlers (panics, echo routing
// errors) in the same {error, message} shape as typed rejections.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	reason := dto.CodeInternalError
	switch code {
	case http.StatusBadRequest:
		reason = dto.CodeInvalidInput
	case http.StatusNotFound:
		reason = dto.CodeNotFound
	}

	_ = c.JSON(code, dto.NewError(reason, msg))
}
