package service

import (
	"context"
	"errors"

	"github.com/bookit/reservation-api/internal/cache"
	"github.com/bookit/reservation-api/internal/models"
	"github.com/bookit/reservation-api/internal/repository"
	"gorm.io/gorm"
)

// SlotAvailability pairs a slot with its derived remaining-seat count.
type SlotAvailability struct {
	Slot      models.Slot
	Remaining int
}

// QueryService is the read path for browsing. It never writes to the ledger.
type QueryService interface {
	ListExperiences(ctx context.Context, query string) ([]models.Experience, error)
	GetExperienceWithSlots(ctx context.Context, experienceID uint) (*models.Experience, []SlotAvailability, error)
	GetSlotWithExperience(ctx context.Context, slotID uint) (*models.Experience, *SlotAvailability, error)
}

type queryService struct {
	experienceRepo repository.ExperienceRepository
	slotRepo       repository.SlotRepository
	ledger         SlotLedger
	catalogCache   *cache.CatalogCache
}

func NewQueryService(
	experienceRepo repository.ExperienceRepository,
	slotRepo repository.SlotRepository,
	ledger SlotLedger,
	catalogCache *cache.CatalogCache,
) QueryService {
	return &queryService{
		experienceRepo: experienceRepo,
		slotRepo:       slotRepo,
		ledger:         ledger,
		catalogCache:   catalogCache,
	}
}

// ListExperiences returns the catalog newest-first, filtered by title when a
// search string is given. Only the unfiltered list goes through the cache;
// searches always hit the database.
func (s *queryService) ListExperiences(ctx context.Context, query string) ([]models.Experience, error) {
	if query == "" {
		if exps, ok := s.catalogCache.GetExperiences(ctx); ok {
			return exps, nil
		}
	}

	exps, err := s.experienceRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if query == "" {
		s.catalogCache.SetExperiences(ctx, exps)
	}
	return exps, nil
}

func (s *queryService) GetExperienceWithSlots(ctx context.Context, experienceID uint) (*models.Experience, []SlotAvailability, error) {
	experience, err := s.experienceRepo.FindByID(ctx, experienceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrExperienceNotFound
		}
		return nil, nil, err
	}

	slots, err := s.slotRepo.FindByExperienceID(ctx, experienceID)
	if err != nil {
		return nil, nil, err
	}

	availability := make([]SlotAvailability, len(slots))
	for i, slot := range slots {
		remaining, err := s.ledger.RemainingSeats(ctx, slot.ID)
		if err != nil {
			return nil, nil, err
		}
		availability[i] = SlotAvailability{Slot: slot, Remaining: remaining}
	}

	return experience, availability, nil
}

func (s *queryService) GetSlotWithExperience(ctx context.Context, slotID uint) (*models.Experience, *SlotAvailability, error) {
	slot, err := s.slotRepo.FindByID(ctx, slotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrSlotNotFound
		}
		return nil, nil, err
	}

	experience, err := s.experienceRepo.FindByID(ctx, slot.ExperienceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrExperienceNotFound
		}
		return nil, nil, err
	}

	remaining, err := s.ledger.RemainingSeats(ctx, slotID)
	if err != nil {
		return nil, nil, err
	}

	return experience, &SlotAvailability{Slot: *slot, Remaining: remaining}, nil
}
