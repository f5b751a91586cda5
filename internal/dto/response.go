package dto

import (
	"time"

	"github.com/bookit/reservation-api/internal/models"
	"github.com/bookit/reservation-api/internal/service"
)

// Machine-readable rejection codes. Clients branch on these, never on the
// free-text message.
const (
	CodeInvalidInput         = "invalid_input"
	CodeNotFound             = "not_found"
	CodeDuplicateBooking     = "duplicate_booking"
	CodeInsufficientCapacity = "insufficient_capacity"
	CodePriceMismatch        = "price_mismatch"
	CodeStorageUnavailable   = "storage_unavailable"
	CodeInternalError        = "internal_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: code, Message: message}
}

type ExperienceResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug,omitempty"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	PriceCents  int64     `json:"price_cents"`
	CreatedAt   time.Time `json:"created_at"`
}

type SlotAvailabilityResponse struct {
	ID        uint      `json:"id"`
	SlotAt    time.Time `json:"slot_at"`
	Capacity  int       `json:"capacity"`
	Remaining int       `json:"remaining"`
}

type ExperienceListResponse struct {
	Experiences []ExperienceResponse `json:"experiences"`
}

type ExperienceDetailResponse struct {
	Experience ExperienceResponse         `json:"experience"`
	Slots      []SlotAvailabilityResponse `json:"slots"`
}

type SlotDetailResponse struct {
	Experience ExperienceResponse       `json:"experience"`
	Slot       SlotAvailabilityResponse `json:"slot"`
}

type PromoRuleResponse struct {
	Code  string           `json:"code"`
	Kind  models.PromoKind `json:"kind"`
	Value int64            `json:"value"`
}

type PromoValidationResponse struct {
	Applied         bool               `json:"applied"`
	DiscountedCents int64              `json:"discounted_cents"`
	Promo           *PromoRuleResponse `json:"promo,omitempty"`
}

type ReservationResponse struct {
	ID         uint      `json:"id"`
	SlotID     uint      `json:"slot_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Quantity   int       `json:"quantity"`
	PromoCode  *string   `json:"promo_code,omitempty"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToExperienceResponse(e *models.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:          e.ID,
		Title:       e.Title,
		Slug:        e.Slug,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		PriceCents:  e.PriceCents,
		CreatedAt:   e.CreatedAt,
	}
}

func ToSlotAvailabilityResponse(a service.SlotAvailability) SlotAvailabilityResponse {
	return SlotAvailabilityResponse{
		ID:        a.Slot.ID,
		SlotAt:    a.Slot.SlotAt,
		Capacity:  a.Slot.Capacity,
		Remaining: a.Remaining,
	}
}

func ToPromoValidationResponse(q *service.PromoQuote) PromoValidationResponse {
	resp := PromoValidationResponse{
		Applied:         q.Applied,
		DiscountedCents: q.DiscountedCents,
	}
	if q.Rule != nil {
		resp.Promo = &PromoRuleResponse{
			Code:  q.Rule.Code,
			Kind:  q.Rule.Kind,
			Value: q.Rule.Value,
		}
	}
	return resp
}

func ToReservationResponse(r *models.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		SlotID:     r.SlotID,
		Name:       r.Name,
		Email:      r.Email,
		Quantity:   r.Quantity,
		PromoCode:  r.PromoCode,
		TotalCents: r.TotalCents,
		Status:     string(r.Status),
		CreatedAt:  r.CreatedAt,
	}
}
