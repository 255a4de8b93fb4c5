package kafka

import (
	"strings"
)

// Config конфигурация Kafka producer для журнала статистики
type Config struct {
	Brokers          string `envconfig:"BROKERS"`                          // "broker1:9092,broker2:9092"
	Topic            string `envconfig:"TOPIC" default:"gpt_bot.usage_log"` // название топика
	SecurityProtocol string `envconfig:"SECURITY_PROTOCOL"`                // "SASL_SSL", "PLAINTEXT"
	SASLMechanism    string `envconfig:"SASL_MECHANISM"`                   // "PLAIN", "SCRAM-SHA-256"
	SASLUsername     string `envconfig:"SASL_USERNAME"`
	SASLPassword     string `envconfig:"SASL_PASSWORD"`
}

// Enabled kafka-зеркало включается заданными BROKERS
func (c *Config) Enabled() bool {
	return c != nil && c.Brokers != ""
}

// GetBrokers возвращает список брокеров из строки
func (c *Config) GetBrokers() []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(c.Brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
