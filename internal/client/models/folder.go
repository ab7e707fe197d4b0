package models

// DefaultFolderName is the conventional per-account default folder, located
// by case-insensitive name match and lazily created when absent.
const DefaultFolderName = "Saved"

// FolderRecord is a user-defined folder for saved translations.
type FolderRecord struct {
	// ID is server-assigned once synced; a local_ placeholder before.
	ID   string `json:"id"`
	Name string `json:"name"`
	// IsSynced is true once the backend acknowledged creation.
	IsSynced bool `json:"isSynced"`
	// CreatedAt is epoch millis; persisted list keeps insertion order, this
	// field is informational.
	CreatedAt int64 `json:"createdAt,omitempty"`
}
