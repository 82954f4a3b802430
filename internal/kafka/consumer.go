package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Consumer wraps a reader bound to one topic and consumer group. Offsets are
// committed only after the handler returns, so a crashed worker re-reads the
// last uncommitted batch on restart.
type Consumer struct {
	reader *kafka.Reader
	topic  string
}

func NewConsumer(brokers []string, groupID, topic string) *Consumer {
	return &Consumer{
		topic: topic,
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			MinBytes:          1,
			MaxBytes:          10e6,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume reads messages until ctx is cancelled or the handler returns an
// error. Handlers that want to skip a bad message log it and return nil.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, kafka.Message) error) error {
	logrus.WithField("topic", c.topic).Info("consumer started")

	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"topic":     msg.Topic,
			"partition": msg.Partition,
			"offset":    msg.Offset,
		}).Debug("message received")

		if err := handler(ctx, msg); err != nil {
			return err
		}
	}
}
