package dto

type CreateBookingRequest struct {
	SlotID             uint   `json:"slot_id"`
	Name               string `json:"name"`
	Email              string `json:"email"`
	Phone              string `json:"phone,omitempty"`
	Quantity           int    `json:"quantity"`
	PromoCode          string `json:"promo_code,omitempty"`
	ExpectedTotalCents int64  `json:"expected_total_cents"`
}

type ValidatePromoRequest struct {
	Code          string `json:"code"`
	SubtotalCents int64  `json:"subtotal_cents"`
}
