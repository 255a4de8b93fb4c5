package openai

import "time"

type Config struct {
	APIURL      string        `envconfig:"API_URL" default:"https://api.openai.com/v1"` // запрос уходит на <API_URL>/chat/completions
	APIKey      string        `envconfig:"API_KEY" required:"true"`
	Model       string        `envconfig:"MODEL" default:"gpt-4o-mini"`
	Temperature float32       `envconfig:"TEMPERATURE" default:"1.0"`
	Timeout     time.Duration `envconfig:"TIMEOUT" default:"90s"`
	SkipSSL     string        `envconfig:"SKIP_SSL"` // Railway требует строки вместо bool
}

func (c *Config) ShouldSkipSSL() bool {
	return c.SkipSSL == "true" || c.SkipSSL == "1" || c.SkipSSL == "True"
}
