// Package gateway is the client of the remote translation backend: the
// translation, folder and saved-item REST operations the reconciliation
// layer syncs against. The backend is the store of record; this package only
// speaks its wire protocol and maps failures to sentinel errors.
package gateway

import (
	"context"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
)

// CreateTranslationPayload is the request body for CreateTranslation.
type CreateTranslationPayload struct {
	SourceText string           `json:"sourceText"`
	TargetText string           `json:"targetText"`
	SourceLang string           `json:"sourceLang"`
	TargetLang string           `json:"targetLang"`
	InputType  models.InputType `json:"inputType"`
}

// SavedItemCreatePayload is the request body for CreateSavedItem.
type SavedItemCreatePayload struct {
	TranslationID string                   `json:"translationId"`
	Category      models.SavedItemCategory `json:"category"`
	FolderID      string                   `json:"folderId,omitempty"`
	Name          string                   `json:"name,omitempty"`
	Notes         string                   `json:"notes,omitempty"`
}

// SavedItemUpdatePayload is the request body for UpdateSavedItem.
// SetFolderIDNull moves the item to the root explicitly.
type SavedItemUpdatePayload struct {
	Name            string `json:"name,omitempty"`
	Notes           string `json:"notes,omitempty"`
	FolderID        string `json:"folderId,omitempty"`
	SetFolderIDNull bool   `json:"setFolderIdNull,omitempty"`
}

// SavedItemQuery narrows GetSavedItems.
type SavedItemQuery struct {
	Category models.SavedItemCategory
	FolderID string
	Page     int
	Size     int
}

// Gateway enumerates the remote operations the reconciliation functions
// dispatch to. Background callers treat every error as log-and-keep-local;
// foreground callers may surface it.
type Gateway interface {
	// Login authenticates and returns the issued bearer token.
	Login(ctx context.Context, usernameOrEmail, password string) (string, error)

	// Register creates an account.
	Register(ctx context.Context, username, email, password string) error

	CreateTranslation(ctx context.Context, p CreateTranslationPayload) (models.TranslationRecord, error)
	GetTranslations(ctx context.Context, page, size int) (models.Page[models.TranslationRecord], error)
	DeleteTranslation(ctx context.Context, id string) error

	// ToggleFavoriteTranslation asks the server to flip the flag and returns
	// the new server-side state.
	ToggleFavoriteTranslation(ctx context.Context, id string) (models.TranslationRecord, error)

	CreateFolder(ctx context.Context, name, parentFolderID string) (models.FolderRecord, error)
	GetFolders(ctx context.Context, parentFolderID string) ([]models.FolderRecord, error)
	UpdateFolder(ctx context.Context, id, name string) (models.FolderRecord, error)
	DeleteFolder(ctx context.Context, id string) error

	// CreateSavedItem files a translation on the server. When a saved item
	// already references the translation the backend answers with a conflict,
	// surfaced as common.ErrAlreadySaved.
	CreateSavedItem(ctx context.Context, p SavedItemCreatePayload) (models.SavedItemRecord, error)
	GetSavedItems(ctx context.Context, q SavedItemQuery) (models.Page[models.SavedItemRecord], error)
	UpdateSavedItem(ctx context.Context, id string, p SavedItemUpdatePayload) (models.SavedItemRecord, error)
	DeleteSavedItem(ctx context.Context, id string) error
}
