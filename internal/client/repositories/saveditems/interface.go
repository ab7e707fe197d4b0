// Package saveditems holds translations explicitly filed into a folder
// and/or marked favorite. One physical list backs both the "saved" and the
// "favorites" views; callers filter by folder id or favorite flag.
package saveditems

import (
	"context"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
)

// StorageKey is the fixed persistence-adapter key backing the saved-items blob.
const StorageKey = "saved_translations"

// Store describes the local saved-items cache. Reads fail soft (empty result
// plus a log line); mutations surface persistence errors so the
// reconciliation layer can decide whether to propagate.
type Store interface {
	// GetAll returns every saved record sorted by timestamp descending.
	GetAll(ctx context.Context) []models.TranslationRecord

	// GetByID returns the saved record with the given id, if present.
	GetByID(ctx context.Context, id string) (models.TranslationRecord, bool)

	// ByFolder returns the saved records filed into the given folder.
	ByFolder(ctx context.Context, folderID string) []models.TranslationRecord

	// Favorites returns the saved records with the favorite flag set.
	Favorites(ctx context.Context) []models.TranslationRecord

	// Upsert inserts rec or replaces the entry with the same id, keeping the
	// list sorted by timestamp descending. Returns the updated collection.
	Upsert(ctx context.Context, rec models.TranslationRecord) ([]models.TranslationRecord, error)

	// Delete removes the record with the given id. No-op if absent.
	Delete(ctx context.Context, id string) error

	// DeleteByFolder removes every record whose FolderID equals folderID.
	// Used for folder cascade deletes.
	DeleteByFolder(ctx context.Context, folderID string) error
}
