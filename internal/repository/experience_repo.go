package repository

import (
	"context"

	"github.com/bookit/reservation-api/internal/models"
	"gorm.io/gorm"
)

type ExperienceRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Experience, error)
	Search(ctx context.Context, query string) ([]models.Experience, error)
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) FindByID(ctx context.Context, id uint) (*models.Experience, error) {
	var exp models.Experience
	if err := r.db.WithContext(ctx).First(&exp, id).Error; err != nil {
		return nil, err
	}
	return &exp, nil
}

// Search returns the catalog newest-first, filtered by a case-insensitive
// title substring match when query is non-empty.
func (r *experienceRepository) Search(ctx context.Context, query string) ([]models.Experience, error) {
	var exps []models.Experience
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if query != "" {
		q = q.Where("title ILIKE ?", "%"+query+"%")
	}
	if err := q.Find(&exps).Error; err != nil {
		return nil, err
	}
	return exps, nil
}
