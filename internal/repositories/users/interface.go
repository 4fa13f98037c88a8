// Package users persists the skilltrack store as a single JSON document.
package users

import (
	"context"

	"github.com/dmarques/skilltrack/internal/models"
)

// Repository describes load/save operations for the whole store document.
// Implementations are backed by one flat file read fully into memory.
type Repository interface {
	// Load returns the persisted store. A missing, unreadable or corrupt
	// file yields a fresh empty store; corruption is never surfaced as an
	// error to the caller.
	Load(ctx context.Context) *models.Store

	// Save writes the store as the complete replacement content of the
	// file. On failure the in-memory store remains the source of truth;
	// the returned error matches common.ErrSaveFailed.
	Save(ctx context.Context, store *models.Store) error
}
