package repository

import (
	"context"

	"github.com/bookit/reservation-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SlotRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Slot, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Slot, error)
	FindByExperienceID(ctx context.Context, experienceID uint) ([]models.Slot, error)
}

type slotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) FindByID(ctx context.Context, id uint) (*models.Slot, error) {
	var slot models.Slot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// FindByIDForUpdate acquires a row-level lock on the slot within the given
// transaction. Concurrent reservations against the same slot serialize here;
// different slots never contend.
func (r *slotRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Slot, error) {
	var slot models.Slot
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *slotRepository) FindByExperienceID(ctx context.Context, experienceID uint) ([]models.Slot, error) {
	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where("experience_id = ?", experienceID).
		Order("slot_at ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}
