package events

import (
	"fmt"
	"strings"

	"github.com/fsonmez/windpowerlib/internal/config"
)

// NewPublisher creates a Publisher based on configuration.
// Default is the in-memory publisher if backend is not specified.
func NewPublisher(cfg config.EventsConfig) (Publisher, error) {
	backend := strings.ToLower(cfg.Backend)

	switch backend {
	case "", "memory":
		return NewMemoryPublisher(), nil

	case "nats":
		return NewNATSPublisher(cfg.URL)

	case "redis":
		return NewRedisPublisher(cfg.URL)

	case "kafka":
		return NewKafkaPublisher(cfg.KafkaBrokers)

	default:
		return nil, fmt.Errorf("unsupported events backend: %s (supported: memory, nats, redis, kafka)", backend)
	}
}
