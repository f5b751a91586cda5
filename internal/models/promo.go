package models

import "time"

type PromoKind string

const (
	PromoPercentage PromoKind = "percentage"
	PromoFlat       PromoKind = "flat"
)

// PromoRule is a named discount definition. Codes are stored upper-case so
// lookups are case-insensitive. Value is a percentage in [0,100] for
// percentage rules and an amount in cents for flat rules.
type PromoRule struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Code      string     `gorm:"uniqueIndex;not null" json:"code"`
	Kind      PromoKind  `gorm:"type:varchar(20);not null" json:"kind"`
	Value     int64      `gorm:"not null" json:"value"`
	Active    bool       `gorm:"not null;default:true" json:"active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
