package repository

import (
	"context"

	"github.com/bookit/reservation-api/internal/models"
	"gorm.io/gorm"
)

type ReservationRepository interface {
	Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	FindBySlotID(ctx context.Context, slotID uint) ([]models.Reservation, error)
	FindCommittedBySlotAndEmail(ctx context.Context, tx *gorm.DB, slotID uint, email string) (*models.Reservation, error)
	SumCommittedQuantity(ctx context.Context, tx *gorm.DB, slotID uint) (int64, error)
	GetDB() *gorm.DB
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *reservationRepository) Create(ctx context.Context, tx *gorm.DB, reservation *models.Reservation) error {
	return tx.WithContext(ctx).Create(reservation).Error
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.WithContext(ctx).First(&reservation, id).Error; err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) FindBySlotID(ctx context.Context, slotID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Where("slot_id = ? AND status = ?", slotID, models.StatusCommitted).
		Order("id ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *reservationRepository) FindCommittedBySlotAndEmail(ctx context.Context, tx *gorm.DB, slotID uint, email string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := tx.WithContext(ctx).
		Where("slot_id = ? AND email = ? AND status = ?", slotID, email, models.StatusCommitted).
		First(&reservation).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// SumCommittedQuantity returns the booked seat total for a slot. Callers that
// need the value to stay true through a write must hold the slot row lock.
func (r *reservationRepository) SumCommittedQuantity(ctx context.Context, tx *gorm.DB, slotID uint) (int64, error) {
	var total int64
	err := tx.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("slot_id = ? AND status = ?", slotID, models.StatusCommitted).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	return total, err
}
