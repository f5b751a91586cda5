package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bookit/reservation-api/internal/models"
	"github.com/bookit/reservation-api/internal/promo"
	"github.com/bookit/reservation-api/internal/repository"
	"gorm.io/gorm"
)

// CreateBookingInput is one booking attempt as received from the client.
// ExpectedTotalCents is the client's price assertion; the server recomputes
// the charge and rejects on any mismatch rather than persisting it.
type CreateBookingInput struct {
	SlotID             uint
	Name               string
	Email              string
	Phone              string
	Quantity           int
	PromoCode          string
	ExpectedTotalCents int64
}

// PromoQuote is the result of a speculative promo evaluation.
type PromoQuote struct {
	Applied         bool
	DiscountedCents int64
	Rule            *models.PromoRule
}

type BookingService interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Reservation, error)
	ValidatePromo(ctx context.Context, code string, subtotalCents int64) (*PromoQuote, error)
	GetReservation(ctx context.Context, id uint) (*models.Reservation, error)
	ListReservations(ctx context.Context, slotID uint) ([]models.Reservation, error)
}

type bookingService struct {
	ledger          SlotLedger
	slotRepo        repository.SlotRepository
	experienceRepo  repository.ExperienceRepository
	promoRepo       repository.PromoRepository
	reservationRepo repository.ReservationRepository
}

func NewBookingService(
	ledger SlotLedger,
	slotRepo repository.SlotRepository,
	experienceRepo repository.ExperienceRepository,
	promoRepo repository.PromoRepository,
	reservationRepo repository.ReservationRepository,
) BookingService {
	return &bookingService{
		ledger:          ledger,
		slotRepo:        slotRepo,
		experienceRepo:  experienceRepo,
		promoRepo:       promoRepo,
		reservationRepo: reservationRepo,
	}
}

// CreateBooking turns a booking attempt into a committed reservation or a
// typed rejection. Either a full reservation exists afterwards or nothing
// does; the ledger's transaction guarantees no in-between state.
func (s *bookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*models.Reservation, error) {
	// 1. Normalize and validate
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if input.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	// 2. Resolve slot and owning experience
	slot, err := s.slotRepo.FindByID(ctx, input.SlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	experience, err := s.experienceRepo.FindByID(ctx, slot.ExperienceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}

	// 3. Server-side price
	subtotal := experience.PriceCents * int64(input.Quantity)
	rule, err := s.resolvePromo(ctx, input.PromoCode)
	if err != nil {
		return nil, err
	}
	total, applied := promo.Evaluate(rule, subtotal, time.Now())

	// 4. The client total is an assertion, never the price. Amounts are
	// integral cents, so the tolerance is zero.
	if total != input.ExpectedTotalCents {
		return nil, ErrPriceMismatch
	}

	// 5. Atomic seat reservation
	var promoCode *string
	if applied {
		promoCode = &rule.Code
	}
	reservation, _, err := s.ledger.Reserve(ctx, slot.ID, ReservationDraft{
		Name:       name,
		Email:      email,
		Phone:      strings.TrimSpace(input.Phone),
		Quantity:   input.Quantity,
		PromoCode:  promoCode,
		TotalCents: total,
	})
	if err != nil {
		return nil, err
	}

	return reservation, nil
}

// ValidatePromo prices a promo code against a subtotal without committing
// anything. An unknown, inactive or expired code is a not-applied quote, not
// an error.
func (s *bookingService) ValidatePromo(ctx context.Context, code string, subtotalCents int64) (*PromoQuote, error) {
	if subtotalCents < 0 {
		return nil, fmt.Errorf("%w: subtotal must not be negative", ErrInvalidInput)
	}

	rule, err := s.resolvePromo(ctx, code)
	if err != nil {
		return nil, err
	}

	discounted, applied := promo.Evaluate(rule, subtotalCents, time.Now())
	quote := &PromoQuote{
		Applied:         applied,
		DiscountedCents: discounted,
	}
	if applied {
		quote.Rule = rule
	}
	return quote, nil
}

func (s *bookingService) GetReservation(ctx context.Context, id uint) (*models.Reservation, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return reservation, nil
}

func (s *bookingService) ListReservations(ctx context.Context, slotID uint) ([]models.Reservation, error) {
	if _, err := s.slotRepo.FindByID(ctx, slotID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return s.reservationRepo.FindBySlotID(ctx, slotID)
}

func (s *bookingService) resolvePromo(ctx context.Context, code string) (*models.PromoRule, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil
	}
	rule, err := s.promoRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rule, nil
}
