package database

import (
	"log"

	"github.com/bookit/reservation-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Experience{},
		&models.Slot{},
		&models.Reservation{},
		&models.PromoRule{},
	); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// Partial unique index: one committed reservation per customer per slot.
	// The ledger checks this inside its transaction too; the index is the
	// database-level backstop.
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_reservation_committed
		ON reservations (slot_id, email)
		WHERE status = 'committed'
	`)

	return db
}
