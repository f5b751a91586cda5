package consumer

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/bookit/reservation-api/internal/cache"
	"github.com/bookit/reservation-api/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogConsumer syncs catalog data owned by the admin path into the local
// database. Experiences, slots and promo rules arrive as catalog.* messages
// and are upserted; this service itself never creates them.
type CatalogConsumer struct {
	db           *gorm.DB
	catalogCache *cache.CatalogCache
}

func NewCatalogConsumer(db *gorm.DB, catalogCache *cache.CatalogCache) *CatalogConsumer {
	return &CatalogConsumer{db: db, catalogCache: catalogCache}
}

func (cc *CatalogConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			cc.handleMessage(msg)
		}
		log.Println("[CatalogConsumer] channel closed, stopping consumer")
	}()
}

func (cc *CatalogConsumer) handleMessage(msg amqp.Delivery) {
	var err error

	switch msg.RoutingKey {
	case "catalog.experience":
		err = cc.upsertExperience(msg.Body)
	case "catalog.slot":
		err = cc.upsertSlot(msg.Body)
	case "catalog.promo":
		err = cc.upsertPromo(msg.Body)
	default:
		log.Printf("[CatalogConsumer] ignoring routing key %s", msg.RoutingKey)
		msg.Ack(false)
		return
	}

	if err != nil {
		if isDecodeError(err) {
			log.Printf("[CatalogConsumer] failed to unmarshal %s: %v", msg.RoutingKey, err)
			msg.Nack(false, false)
			return
		}
		log.Printf("[CatalogConsumer] failed to upsert %s: %v", msg.RoutingKey, err)
		msg.Nack(false, true) // requeue
		return
	}

	msg.Ack(false)
}

func (cc *CatalogConsumer) upsertExperience(body []byte) error {
	var experience models.Experience
	if err := json.Unmarshal(body, &experience); err != nil {
		return err
	}

	err := cc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "slug", "description", "image_url", "price_cents", "updated_at"}),
	}).Create(&experience).Error
	if err != nil {
		return err
	}

	// The list cache holds experience rows; drop it so browsers see the change.
	cc.catalogCache.InvalidateExperiences(context.Background())
	log.Printf("[CatalogConsumer] synced experience %d: %s", experience.ID, experience.Title)
	return nil
}

func (cc *CatalogConsumer) upsertSlot(body []byte) error {
	var slot models.Slot
	if err := json.Unmarshal(body, &slot); err != nil {
		return err
	}

	err := cc.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		// Capacity is fixed at creation; only the schedule may move.
		DoUpdates: clause.AssignmentColumns([]string{"experience_id", "slot_at", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return err
	}

	log.Printf("[CatalogConsumer] synced slot %d (experience %d)", slot.ID, slot.ExperienceID)
	return nil
}

func (cc *CatalogConsumer) upsertPromo(body []byte) error {
	var rule models.PromoRule
	if err := json.Unmarshal(body, &rule); err != nil {
		return err
	}
	rule.Code = strings.ToUpper(strings.TrimSpace(rule.Code))

	err := cc.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"kind", "value", "active", "expires_at", "updated_at"}),
	}).Create(&rule).Error
	if err != nil {
		return err
	}

	log.Printf("[CatalogConsumer] synced promo %s", rule.Code)
	return nil
}

func isDecodeError(err error) bool {
	switch err.(type) {
	case *json.SyntaxError, *json.UnmarshalTypeError:
		return true
	}
	return false
}
