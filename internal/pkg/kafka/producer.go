package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"service/internal/pkg/config"
	"service/pkg/logger"
)

// NewSyncProducer builds a sync producer with acknowledgements from all
// in-sync replicas. The broker connection is verified before returning.
func NewSyncProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka, brokers []string) (sarama.SyncProducer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version

	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
	)

	err = pingKafka(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	kafkaLog.Info("Kafka producer ready")
	return producer, nil
}
