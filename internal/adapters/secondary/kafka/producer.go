package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/IBM/sarama"
	"github.com/admin/tg-bots/gpt-bot/internal/ports/sink"
)

const sourceHeader = "gpt_bot"

var _ sink.IUsageLogSink = (*Producer)(nil)

// Producer реализация Kafka producer
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	log      *slog.Logger
}

type usageLogMessage struct {
	Day  string `json:"day"`
	Line string `json:"line"`
}

// NewProducer создаёт новый Kafka producer
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	// повторы отправки не нужны: строка всё равно уже в файле
	config.Producer.Retry.Max = 0

	// Настройка безопасности (если указано)
	if cfg.SecurityProtocol == "SASL_SSL" || cfg.SecurityProtocol == "SASL_PLAINTEXT" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		if cfg.SASLMechanism == "SCRAM-SHA-256" {
			config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		}
		config.Net.SASL.User = cfg.SASLUsername
		config.Net.SASL.Password = cfg.SASLPassword
		// TLS только для SASL_SSL
		if cfg.SecurityProtocol == "SASL_SSL" {
			config.Net.TLS.Enable = true
		}
	}

	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return NewProducerWithSyncProducer(producer, cfg.Topic, log), nil
}

// NewProducerWithSyncProducer оборачивает готовый sarama.SyncProducer
func NewProducerWithSyncProducer(producer sarama.SyncProducer, topic string, log *slog.Logger) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
		log:      log,
	}
}

// Append публикует дневную строку статистики, ключ сообщения - дата
func (p *Producer) Append(ctx context.Context, day string, line string) error {
	value, err := json.Marshal(usageLogMessage{Day: day, Line: line})
	if err != nil {
		return fmt.Errorf("failed to marshal usage log message: %w", err)
	}
	return p.Send(ctx, day, value)
}

// Send отправляет произвольное сообщение
func (p *Producer) Send(ctx context.Context, key string, value []byte) error {
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("source"), Value: []byte(sourceHeader)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Debug("kafka send failed",
			"error", err,
			"topic", p.topic,
			"key", key,
		)
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w",
			p.topic, key, err)
	}

	p.log.Debug("message sent to kafka",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"key", key,
	)

	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	p.log.Info("kafka producer closed")
	return nil
}
