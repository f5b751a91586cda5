package service

import (
	"context"
	"errors"

	"github.com/bookit/reservation-api/internal/models"
	"github.com/bookit/reservation-api/internal/repository"
	"gorm.io/gorm"
)

// ReservationDraft carries the fields of a reservation the coordinator has
// already resolved. The ledger decides whether it may be committed.
type ReservationDraft struct {
	Name       string
	Email      string
	Phone      string
	Quantity   int
	PromoCode  *string
	TotalCents int64
}

// SlotLedger is the single source of truth for seat accounting. Reserve is
// the only writer; everything else derives remaining seats from committed
// reservations.
type SlotLedger interface {
	Reserve(ctx context.Context, slotID uint, draft ReservationDraft) (*models.Reservation, int, error)
	RemainingSeats(ctx context.Context, slotID uint) (int, error)
}

type slotLedger struct {
	slotRepo        repository.SlotRepository
	reservationRepo repository.ReservationRepository
}

func NewSlotLedger(slotRepo repository.SlotRepository, reservationRepo repository.ReservationRepository) SlotLedger {
	return &slotLedger{
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
	}
}

// Reserve commits a reservation for draft.Quantity seats, or rejects with
// ErrDuplicateBooking / ErrInsufficientCapacity. The duplicate check, the
// booked-sum read, the capacity compare and the insert run inside one
// transaction under a row lock on the slot, so two racers can never both
// observe enough capacity. A rejection leaves no partial writes.
func (l *slotLedger) Reserve(ctx context.Context, slotID uint, draft ReservationDraft) (*models.Reservation, int, error) {
	if draft.Quantity < 1 {
		return nil, 0, ErrInvalidInput
	}

	var (
		result    *models.Reservation
		remaining int
	)

	err := l.reservationRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the slot row — serializes reserve calls on this slot only
		slot, err := l.slotRepo.FindByIDForUpdate(ctx, tx, slotID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSlotNotFound
			}
			return err
		}

		// 2. One committed reservation per customer per slot
		_, err = l.reservationRepo.FindCommittedBySlotAndEmail(ctx, tx, slotID, draft.Email)
		if err == nil {
			return ErrDuplicateBooking
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 3. Capacity check against committed quantities
		booked, err := l.reservationRepo.SumCommittedQuantity(ctx, tx, slotID)
		if err != nil {
			return err
		}
		if slot.Capacity-int(booked) < draft.Quantity {
			return ErrInsufficientCapacity
		}

		// 4. Commit
		reservation := &models.Reservation{
			SlotID:     slotID,
			Name:       draft.Name,
			Email:      draft.Email,
			Phone:      draft.Phone,
			Quantity:   draft.Quantity,
			PromoCode:  draft.PromoCode,
			TotalCents: draft.TotalCents,
			Status:     models.StatusCommitted,
		}
		if err := l.reservationRepo.Create(ctx, tx, reservation); err != nil {
			return err
		}

		result = reservation
		remaining = slot.Capacity - int(booked) - draft.Quantity
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return result, remaining, nil
}

// RemainingSeats derives capacity − sum(committed quantities). Capacity is
// immutable after slot creation and the sum is a single aggregate statement,
// so the result is a consistent snapshot without taking the slot lock.
func (l *slotLedger) RemainingSeats(ctx context.Context, slotID uint) (int, error) {
	slot, err := l.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrSlotNotFound
		}
		return 0, err
	}

	booked, err := l.reservationRepo.SumCommittedQuantity(ctx, l.reservationRepo.GetDB(), slotID)
	if err != nil {
		return 0, err
	}

	remaining := slot.Capacity - int(booked)
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
