// Package events publishes curve-processed notifications so downstream
// consumers (energy yield models, dashboards) can react to transformed
// power curves without polling the API.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// ProcessedEvent describes a completed curve transformation
type ProcessedEvent struct {
	RequestID   string    `json:"request_id"`
	Operation   string    `json:"operation"`    // smooth, wake_losses, pipeline
	TurbineName string    `json:"turbine_name,omitempty"`
	PointCount  int       `json:"point_count"`
	ProcessedAt time.Time `json:"processed_at"`
}

// Encode serializes the event for the wire
func (e ProcessedEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// DecodeProcessedEvent deserializes an event from the wire
func DecodeProcessedEvent(data []byte) (ProcessedEvent, error) {
	var e ProcessedEvent
	err := json.Unmarshal(data, &e)
	return e, err
}

// Publisher publishes processed-curve events to a broker
type Publisher interface {
	// Publish publishes an event to a subject/stream/topic
	Publish(ctx context.Context, subject string, event ProcessedEvent) error

	// Close closes the broker connection
	Close() error
}
