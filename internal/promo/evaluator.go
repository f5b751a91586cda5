// Package promo computes discounted totals from promo rules. Evaluation is a
// pure function so the same rule can be priced speculatively (promo preview)
// and again at booking time with identical results.
package promo

import (
	"time"

	"github.com/bookit/reservation-api/internal/models"
)

// Evaluate applies rule to a subtotal in cents. It returns the discounted
// total and whether the rule was applied. A nil, inactive or expired rule
// leaves the subtotal unchanged with applied=false; that is a normal outcome,
// not an error. The result is always in [0, subtotalCents].
func Evaluate(rule *models.PromoRule, subtotalCents int64, now time.Time) (int64, bool) {
	if rule == nil || !rule.Active {
		return subtotalCents, false
	}
	if rule.ExpiresAt != nil && !rule.ExpiresAt.After(now) {
		return subtotalCents, false
	}

	var discounted int64
	switch rule.Kind {
	case models.PromoPercentage:
		discounted = subtotalCents * (100 - rule.Value) / 100
	case models.PromoFlat:
		discounted = subtotalCents - rule.Value
	default:
		// Unknown kind is a catalog configuration error; charge full price.
		return subtotalCents, false
	}

	if discounted < 0 {
		discounted = 0
	}
	if discounted > subtotalCents {
		discounted = subtotalCents
	}
	return discounted, true
}
