package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/kletskov/flightbooking/config"
	"github.com/kletskov/flightbooking/internal/domain"
	"github.com/kletskov/flightbooking/internal/email"
	"github.com/kletskov/flightbooking/internal/kafka"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// The worker drains the notifications topic and turns booking events into
// email. Malformed messages are logged and skipped, not redelivered.
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

	consumer := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.NotificationsTopic)
	defer consumer.Close()

	sender := email.NewSender(cfg.Notifications)

	if err := consumer.Consume(ctx, func(ctx context.Context, msg kafkaGo.Message) error {
		var event domain.BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logrus.WithError(err).Warn("decode booking event")
			return nil
		}
		if err := sender.Send(ctx, event); err != nil {
			logrus.WithError(err).WithField("booking_id", event.BookingID).Error("send notification email")
		}
		return nil
	}); err != nil && ctx.Err() == nil {
		logrus.Fatalf("consumer stopped: %v", err)
	}
}
