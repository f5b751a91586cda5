package models

import "time"

type ReservationStatus string

const (
	StatusCommitted ReservationStatus = "committed"
)

type Reservation struct {
	ID         uint              `gorm:"primaryKey" json:"id"`
	SlotID     uint              `gorm:"not null;index" json:"slot_id"`
	Name       string            `gorm:"not null" json:"name"`
	Email      string            `gorm:"not null" json:"email"`
	Phone      string            `json:"phone,omitempty"`
	Quantity   int               `gorm:"not null" json:"quantity"`
	PromoCode  *string           `json:"promo_code,omitempty"`
	TotalCents int64             `gorm:"not null" json:"total_cents"`
	Status     ReservationStatus `gorm:"type:varchar(20);not null;default:'committed'" json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Slot *Slot `gorm:"foreignKey:SlotID" json:"slot,omitempty"`
}
