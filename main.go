package main

import (
	"log"
	"time"

	"github.com/bookit/reservation-api/config"
	"github.com/bookit/reservation-api/internal/cache"
	"github.com/bookit/reservation-api/internal/consumer"
	"github.com/bookit/reservation-api/internal/handler"
	"github.com/bookit/reservation-api/internal/middleware"
	"github.com/bookit/reservation-api/internal/repository"
	"github.com/bookit/reservation-api/internal/service"
	"github.com/bookit/reservation-api/pkg/database"
	"github.com/bookit/reservation-api/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Catalog list cache; nil redis client disables it
	catalogCache := cache.NewCatalogCache(cache.NewRedisClient(cfg.RedisAddr), 30*time.Second)

	// RabbitMQ consumer: sync catalog data from the admin path
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	catalogConsumer := consumer.NewCatalogConsumer(db, catalogCache)
	catalogConsumer.Start(msgs)

	// Repositories
	experienceRepo := repository.NewExperienceRepository(db)
	slotRepo := repository.NewSlotRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	promoRepo := repository.NewPromoRepository(db)

	// Services
	ledger := service.NewSlotLedger(slotRepo, reservationRepo)
	bookingSvc := service.NewBookingService(ledger, slotRepo, experienceRepo, promoRepo, reservationRepo)
	querySvc := service.NewQueryService(experienceRepo, slotRepo, ledger, catalogCache)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "reservation-api"})
	})

	api := e.Group("/api/v1")
	handler.NewExperienceHandler(querySvc).RegisterRoutes(api)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api)

	log.Printf("Reservation API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
