package repository

import (
	"context"
	"strings"

	"github.com/bookit/reservation-api/internal/models"
	"gorm.io/gorm"
)

type PromoRepository interface {
	FindByCode(ctx context.Context, code string) (*models.PromoRule, error)
}

type promoRepository struct {
	db *gorm.DB
}

func NewPromoRepository(db *gorm.DB) PromoRepository {
	return &promoRepository{db: db}
}

// FindByCode looks up a rule case-insensitively. Active/expiry checks belong
// to the evaluator, not the lookup.
func (r *promoRepository) FindByCode(ctx context.Context, code string) (*models.PromoRule, error) {
	var rule models.PromoRule
	err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}
