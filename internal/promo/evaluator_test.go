package promo

import (
	"testing"
	"time"

	"github.com/bookit/reservation-api/internal/models"
	"github.com/stretchr/testify/assert"
)

var evalTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func percentageRule(value int64) *models.PromoRule {
	return &models.PromoRule{Code: "SAVE", Kind: models.PromoPercentage, Value: value, Active: true}
}

func flatRule(value int64) *models.PromoRule {
	return &models.PromoRule{Code: "OFF", Kind: models.PromoFlat, Value: value, Active: true}
}

func TestEvaluate_PercentageDiscount(t *testing.T) {
	got, applied := Evaluate(percentageRule(10), 10000, evalTime)
	assert.True(t, applied)
	assert.Equal(t, int64(9000), got)
}

func TestEvaluate_PercentageFloors(t *testing.T) {
	// 10% off 9999 = 8999.1, floored
	got, applied := Evaluate(percentageRule(10), 9999, evalTime)
	assert.True(t, applied)
	assert.Equal(t, int64(8999), got)
}

func TestEvaluate_PercentageBounds(t *testing.T) {
	got, applied := Evaluate(percentageRule(0), 10000, evalTime)
	assert.True(t, applied)
	assert.Equal(t, int64(10000), got)

	got, applied = Evaluate(percentageRule(100), 10000, evalTime)
	assert.True(t, applied)
	assert.Equal(t, int64(0), got)
}

func TestEvaluate_FlatDiscount(t *testing.T) {
	got, applied := Evaluate(flatRule(1500), 10000, evalTime)
	assert.True(t, applied)
	assert.Equal(t, int64(8500), got)
}

func TestEvaluate_FlatNeverNegative(t *testing.T) {
	got, applied := Evaluate(flatRule(20000), 10000, evalTime)
	assert.True(t, applied)
	assert.Equal(t, int64(0), got)
}

func TestEvaluate_NoRule(t *testing.T) {
	got, applied := Evaluate(nil, 10000, evalTime)
	assert.False(t, applied)
	assert.Equal(t, int64(10000), got)
}

func TestEvaluate_InactiveRule(t *testing.T) {
	rule := percentageRule(10)
	rule.Active = false

	got, applied := Evaluate(rule, 10000, evalTime)
	assert.False(t, applied)
	assert.Equal(t, int64(10000), got)
}

func TestEvaluate_ExpiredRule(t *testing.T) {
	yesterday := evalTime.Add(-24 * time.Hour)
	rule := percentageRule(10)
	rule.ExpiresAt = &yesterday

	got, applied := Evaluate(rule, 10000, evalTime)
	assert.False(t, applied)
	assert.Equal(t, int64(10000), got)
}

func TestEvaluate_ExpiryExactlyNow(t *testing.T) {
	// Expiry at the evaluation instant counts as expired
	expiry := evalTime
	rule := percentageRule(10)
	rule.ExpiresAt = &expiry

	_, applied := Evaluate(rule, 10000, evalTime)
	assert.False(t, applied)
}

func TestEvaluate_NotYetExpired(t *testing.T) {
	tomorrow := evalTime.Add(24 * time.Hour)
	rule := percentageRule(10)
	rule.ExpiresAt = &tomorrow

	got, applied := Evaluate(rule, 10000, evalTime)
	assert.True(t, applied)
	assert.Equal(t, int64(9000), got)
}

func TestEvaluate_UnknownKind(t *testing.T) {
	rule := &models.PromoRule{Code: "ODD", Kind: "bogus", Value: 10, Active: true}

	got, applied := Evaluate(rule, 10000, evalTime)
	assert.False(t, applied)
	assert.Equal(t, int64(10000), got)
}

func TestEvaluate_Deterministic(t *testing.T) {
	rule := percentageRule(25)
	first, firstApplied := Evaluate(rule, 7777, evalTime)
	for i := 0; i < 5; i++ {
		got, applied := Evaluate(rule, 7777, evalTime)
		assert.Equal(t, first, got)
		assert.Equal(t, firstApplied, applied)
	}
}

func TestEvaluate_DiscountWithinBounds(t *testing.T) {
	subtotals := []int64{0, 1, 99, 10000, 1<<40 - 1}
	rules := []*models.PromoRule{percentageRule(1), percentageRule(50), percentageRule(99), flatRule(1), flatRule(1 << 41)}

	for _, sub := range subtotals {
		for _, rule := range rules {
			got, _ := Evaluate(rule, sub, evalTime)
			assert.GreaterOrEqual(t, got, int64(0))
			assert.LessOrEqual(t, got, sub)
		}
	}
}
