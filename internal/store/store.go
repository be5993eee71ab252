// Package store persists named turbine power curves so they can be
// transformed repeatedly without resubmitting the raw points.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/fsonmez/windpowerlib/internal/powercurve"
)

// ErrNotFound is returned when a turbine curve does not exist
var ErrNotFound = errors.New("turbine curve not found")

// TurbineCurve is a stored power curve identified by turbine name
type TurbineCurve struct {
	Name      string           `json:"name"`
	Curve     powercurve.Curve `json:"curve"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// Store persists turbine power curves
type Store interface {
	// Save stores or replaces a turbine curve
	Save(ctx context.Context, tc TurbineCurve) error

	// Get returns a turbine curve by name
	Get(ctx context.Context, name string) (TurbineCurve, error)

	// List returns the names of all stored turbine curves
	List(ctx context.Context) ([]string, error)

	// Delete removes a turbine curve by name
	Delete(ctx context.Context, name string) error

	// Close releases any resources held by the store
	Close() error
}
