package models

import "time"

// Slot is one bookable time instance of an Experience. Capacity is fixed at
// creation; remaining seats are always derived from committed reservations.
type Slot struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ExperienceID uint      `gorm:"not null;index" json:"experience_id"`
	SlotAt       time.Time `gorm:"not null" json:"slot_at"`
	Capacity     int       `gorm:"not null" json:"capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Experience *Experience `gorm:"foreignKey:ExperienceID" json:"experience,omitempty"`
}
