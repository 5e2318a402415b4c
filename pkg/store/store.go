// Package store persists battrack's three collections (batteries, settings,
// feedback) in a single local SQLite file.
package store

import "errors"

var (
	// ErrBatteryNotFound is returned when no battery matches the given id.
	// Callers surface it as a user-facing notice, not a failure.
	ErrBatteryNotFound = errors.New("battery not found")
)

// Store is the persistence surface the web UI and CLI run against. Every
// write commits before the call returns.
type Store interface {
	// ListBatteries returns batteries ordered by label ascending, ties
	// broken by id descending. A non-empty statusFilter restricts the
	// result to that status; validity of the filter is the caller's
	// concern.
	ListBatteries(statusFilter string) ([]Battery, error)
	GetBattery(id uint) (*Battery, error)
	CreateBattery(b *Battery) error
	// UpdateBattery replaces every stored field of the battery row
	// (except id and created_at) with the given values.
	UpdateBattery(b *Battery) error
	DeleteBattery(id uint) error

	// GetSetting returns the stored value for key, or def if the key has
	// never been written.
	GetSetting(key, def string) (string, error)
	// SetSetting upserts the value for key.
	SetSetting(key, value string) error

	CreateFeedback(f *Feedback) error

	Close() error
}
