package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/kletskov/flightbooking/config"
	"github.com/kletskov/flightbooking/internal/bootstrap"
	"github.com/kletskov/flightbooking/internal/cache"
	"github.com/kletskov/flightbooking/internal/events"
	"github.com/kletskov/flightbooking/internal/inventory"
	"github.com/kletskov/flightbooking/internal/kafka"
	"github.com/kletskov/flightbooking/internal/notify"
	"github.com/kletskov/flightbooking/internal/repository"
	"github.com/kletskov/flightbooking/internal/service/booking"
	"github.com/kletskov/flightbooking/internal/service/ticket"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		logrus.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	ticketCache := cache.NewTicketCache(cfg.Redis, time.Duration(cfg.Cache.TicketTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	breaker := inventory.NewBreaker(
		cfg.Inventory.BreakerMaxFailures,
		time.Duration(cfg.Inventory.BreakerOpenSeconds)*time.Second,
		cfg.Inventory.BreakerHalfOpenMax,
	)
	inventoryClient := inventory.NewClient(cfg.Inventory.BaseURL, time.Duration(cfg.Inventory.TimeoutSeconds)*time.Second, breaker)

	bookingRepo := repository.NewBookingRepository(pool)
	passengerRepo := repository.NewPassengerRepository(pool)

	effects := booking.NewSideEffects(
		events.NewPublisher(producer, cfg.Kafka.BookingEventsTopic),
		notify.NewNotifier(producer, cfg.Kafka.NotificationsTopic, cfg.Notifications.Enabled),
	)

	bookingService := booking.NewBookingService(
		bookingRepo,
		passengerRepo,
		inventoryClient,
		effects,
		booking.WithCache(ticketCache),
	)
	ticketService := ticket.NewTicketService(bookingRepo, ticketCache)

	if err := bootstrap.Run(ctx, cfg, bookingService, ticketService); err != nil {
		logrus.Fatalf("server error: %v", err)
	}
}
