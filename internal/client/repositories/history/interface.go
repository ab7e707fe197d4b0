// Package history holds the rolling, bounded local cache of translation
// events, persisted as a single JSON blob (most recent first, capped).
package history

import (
	"context"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
)

// StorageKey is the fixed persistence-adapter key backing the history blob.
const StorageKey = "translation_history"

// DefaultLimit caps the number of records kept in the history cache.
const DefaultLimit = 50

// Store describes the local history cache. Reads fail soft: any storage or
// decode error yields an empty result and a log line. Writes replace the
// whole blob; a failed write leaves the prior persisted state untouched.
type Store interface {
	// GetAll returns every record sorted by timestamp descending.
	GetAll(ctx context.Context) []models.TranslationRecord

	// GetByID returns the record with the given id, if present.
	GetByID(ctx context.Context, id string) (models.TranslationRecord, bool)

	// Count returns the number of cached records.
	Count(ctx context.Context) int

	// Add inserts rec at the head after removing any record with the same id,
	// then truncates to the configured limit (oldest dropped first). The
	// returned slice is the updated collection; on a failed write it is the
	// collection as it was before the attempt.
	Add(ctx context.Context, rec models.TranslationRecord) ([]models.TranslationRecord, error)

	// Update replaces the record with a matching id in place. No-op if absent.
	Update(ctx context.Context, rec models.TranslationRecord) error

	// Delete removes the record with the given id. No-op if absent.
	Delete(ctx context.Context, id string) error

	// BatchSave upserts every record by id (last writer wins within the
	// batch), re-sorts by timestamp descending and persists once.
	BatchSave(ctx context.Context, recs []models.TranslationRecord) error

	// BatchDelete removes every record whose id is in ids.
	BatchDelete(ctx context.Context, ids []string) error

	// Prune drops everything beyond the max most recent records.
	Prune(ctx context.Context, max int) error

	// Clear deletes the entire persisted blob.
	Clear(ctx context.Context) error
}
