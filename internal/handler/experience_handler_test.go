package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookit/reservation-api/internal/dto"
	"github.com/bookit/reservation-api/internal/models"
	"github.com/bookit/reservation-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock QueryService ---

type mockQueryService struct {
	listFn    func(ctx context.Context, query string) ([]models.Experience, error)
	getExpFn  func(ctx context.Context, id uint) (*models.Experience, []service.SlotAvailability, error)
	getSlotFn func(ctx context.Context, slotID uint) (*models.Experience, *service.SlotAvailability, error)
}

func (m *mockQueryService) ListExperiences(ctx context.Context, query string) ([]models.Experience, error) {
	return m.listFn(ctx, query)
}
func (m *mockQueryService) GetExperienceWithSlots(ctx context.Context, id uint) (*models.Experience, []service.SlotAvailability, error) {
	return m.getExpFn(ctx, id)
}
func (m *mockQueryService) GetSlotWithExperience(ctx context.Context, slotID uint) (*models.Experience, *service.SlotAvailability, error) {
	return m.getSlotFn(ctx, slotID)
}

// --- Tests ---

func TestListExperiences_Handler_Success(t *testing.T) {
	var captured string
	svc := &mockQueryService{
		listFn: func(ctx context.Context, query string) ([]models.Experience, error) {
			captured = query
			return []models.Experience{
				{ID: 2, Title: "Sunset Kayak", PriceCents: 8000},
				{ID: 1, Title: "Old Town Walking Tour", PriceCents: 5000},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/experiences?q=tour", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewExperienceHandler(svc)
	require.NoError(t, h.ListExperiences(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tour", captured)

	var resp dto.ExperienceListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Experiences, 2)
	assert.Equal(t, "Sunset Kayak", resp.Experiences[0].Title)
}

func TestGetExperience_Handler_Success(t *testing.T) {
	svc := &mockQueryService{
		getExpFn: func(ctx context.Context, id uint) (*models.Experience, []service.SlotAvailability, error) {
			return &models.Experience{ID: id, Title: "Old Town Walking Tour", PriceCents: 5000},
				[]service.SlotAvailability{
					{Slot: models.Slot{ID: 7, ExperienceID: id, SlotAt: time.Now(), Capacity: 10}, Remaining: 4},
				}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/experiences/3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewExperienceHandler(svc)
	require.NoError(t, h.GetExperience(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ExperienceDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(3), resp.Experience.ID)
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, 4, resp.Slots[0].Remaining)
	assert.Equal(t, 10, resp.Slots[0].Capacity)
}

func TestGetExperience_Handler_NotFound(t *testing.T) {
	svc := &mockQueryService{
		getExpFn: func(ctx context.Context, id uint) (*models.Experience, []service.SlotAvailability, error) {
			return nil, nil, service.ErrExperienceNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/experiences/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewExperienceHandler(svc)
	require.NoError(t, h.GetExperience(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, dto.CodeNotFound, resp.Error)
}

func TestGetExperience_Handler_InvalidID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/experiences/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := NewExperienceHandler(&mockQueryService{})
	require.NoError(t, h.GetExperience(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetSlot_Handler_Success(t *testing.T) {
	svc := &mockQueryService{
		getSlotFn: func(ctx context.Context, slotID uint) (*models.Experience, *service.SlotAvailability, error) {
			return &models.Experience{ID: 3, Title: "Old Town Walking Tour"},
				&service.SlotAvailability{
					Slot:      models.Slot{ID: slotID, ExperienceID: 3, Capacity: 10},
					Remaining: 10,
				}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewExperienceHandler(svc)
	require.NoError(t, h.GetSlot(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.SlotDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(7), resp.Slot.ID)
	assert.Equal(t, uint(3), resp.Experience.ID)
}

func TestGetSlot_Handler_NotFound(t *testing.T) {
	svc := &mockQueryService{
		getSlotFn: func(ctx context.Context, slotID uint) (*models.Experience, *service.SlotAvailability, error) {
			return nil, nil, service.ErrSlotNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/slots/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewExperienceHandler(svc)
	require.NoError(t, h.GetSlot(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
