package internal

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"yatta-chat/domain"
)

var validate = validator.New()

type Config struct {
	APIBaseURL string `env:"API_BASE_URL,required=true" validate:"required,url"`
	WSBaseURL  string `env:"WS_BASE_URL,required=true" validate:"required,url"`
	UserID     int64  `env:"USER_ID,required=true" validate:"required,gt=0"`

	BufferSize   int           `env:"BUFFER_SIZE,default=64"`
	HTTPTimeout  time.Duration `env:"HTTP_TIMEOUT,default=10s"`
	PollInterval time.Duration `env:"POLL_INTERVAL,default=5s"`
	RetireGrace  time.Duration `env:"RETIRE_GRACE,default=1s"`

	InboxRetryBase     time.Duration `env:"INBOX_RETRY_BASE,default=1s"`
	InboxRetryMax      time.Duration `env:"INBOX_RETRY_MAX,default=30s"`
	InboxRetryAttempts int           `env:"INBOX_RETRY_ATTEMPTS,default=10"`

	LimitMessages  *int   `env:"LIMIT_MESSAGES"`
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	DebugPort      int    `env:"DEBUG_PORT"`
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ChatWSURL is the per-conversation realtime endpoint.
func (c Config) ChatWSURL(conversation domain.FlexID) string {
	return fmt.Sprintf("%s/ws/chat/%d/", c.WSBaseURL, conversation.Int64())
}

// InboxWSURL is the per-user realtime endpoint.
func (c Config) InboxWSURL() string {
	return fmt.Sprintf("%s/ws/chat/inbox/", c.WSBaseURL)
}
