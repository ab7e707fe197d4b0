// Package folders holds the user-defined folder list, including the implicit
// default "Saved" folder, persisted as a single JSON blob in insertion order.
package folders

import (
	"context"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
)

// StorageKey is the fixed persistence-adapter key backing the folder blob.
const StorageKey = "folders"

// Store describes the local folder cache. Unlike the history store, folder
// mutations surface persistence errors to the caller: folder flows are
// foreground UI flows and want to alert the user.
type Store interface {
	// GetAll returns the folders in insertion order.
	GetAll(ctx context.Context) ([]models.FolderRecord, error)

	// GetByID returns the folder with the given id, if present.
	GetByID(ctx context.Context, id string) (models.FolderRecord, bool, error)

	// FindByName locates a folder by case-insensitive name match.
	FindByName(ctx context.Context, name string) (models.FolderRecord, bool, error)

	// Add appends a folder to the persisted list.
	Add(ctx context.Context, f models.FolderRecord) error

	// Replace removes the folder with oldID and inserts f in its position.
	// Used to swap a local placeholder for the server-acknowledged record.
	Replace(ctx context.Context, oldID string, f models.FolderRecord) error

	// Update replaces the folder with a matching id in place. No-op if absent.
	Update(ctx context.Context, f models.FolderRecord) error

	// Delete removes the folder with the given id. No-op if absent.
	Delete(ctx context.Context, id string) error
}
