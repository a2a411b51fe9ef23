package event

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-studio/internal/config"
	"github.com/khoahotran/resume-studio/internal/domain/renderlog"
	"github.com/khoahotran/resume-studio/pkg/logger"
)

const TopicResumeEvents = "resume.events"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaProducerClient struct {
	ResumeEventsWriter messageWriter
	logger             logger.Logger
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	topic := cfg.Kafka.Topic
	if topic == "" {
		topic = TopicResumeEvents
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}

	log.Info("Initialize Kafka Producer successfully.", zap.String("topic", topic), zap.Strings("brokers", brokers))

	return &KafkaProducerClient{ResumeEventsWriter: writer, logger: log}, nil
}

// PublishRenderEvent writes one render outcome keyed by its event id.
func (c *KafkaProducerClient) PublishRenderEvent(ctx context.Context, entry renderlog.Entry) error {
	msg, err := EncodeRenderEvent(entry)
	if err != nil {
		return err
	}
	if err := c.ResumeEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write render event %s: %w", entry.ID, err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ResumeEventsWriter != nil {
		if err := c.ResumeEventsWriter.Close(); err != nil {
			c.logger.Error("Failed to close Kafka producer", err)
			return
		}
	}
	c.logger.Info("Closed Kafka Producer")
}
