package gateway

import (
	"time"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
)

// Wire DTOs. The backend speaks ISO timestamps and nested shapes; the cache
// speaks epoch millis and flat records, so responses are mapped here and
// nowhere else.

type authResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType,omitempty"`
}

type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type translationResponse struct {
	ID         string           `json:"id"`
	SourceText string           `json:"sourceText"`
	TargetText string           `json:"targetText"`
	SourceLang string           `json:"sourceLang"`
	TargetLang string           `json:"targetLang"`
	InputType  models.InputType `json:"inputType"`
	IsFavorite bool             `json:"isFavorite"`
	IsSaved    bool             `json:"isSaved"`
	CreatedAt  string           `json:"createdAt"`
}

func parseMillis(iso string) int64 {
	if ts, err := time.Parse(time.RFC3339, iso); err == nil {
		return ts.UnixMilli()
	}
	return models.NowMillis()
}

// toRecord flattens a server translation into the cache shape. A record that
// came back from the server is by definition synced.
func (r translationResponse) toRecord() models.TranslationRecord {
	return models.TranslationRecord{
		ID:         r.ID,
		SourceText: r.SourceText,
		TargetText: r.TargetText,
		SourceLang: r.SourceLang,
		TargetLang: r.TargetLang,
		Timestamp:  parseMillis(r.CreatedAt),
		IsFavorite: r.IsFavorite,
		IsSaved:    r.IsSaved,
		InputType:  r.InputType,
		IsSynced:   true,
	}
}

type folderResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ParentFolderID string `json:"parentFolderId,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

func (r folderResponse) toRecord() models.FolderRecord {
	return models.FolderRecord{
		ID:        r.ID,
		Name:      r.Name,
		IsSynced:  true,
		CreatedAt: parseMillis(r.CreatedAt),
	}
}

type savedItemResponse struct {
	ID          string                   `json:"id"`
	Translation translationResponse      `json:"translation"`
	FolderID    string                   `json:"folderId,omitempty"`
	FolderName  string                   `json:"folderName,omitempty"`
	Name        string                   `json:"name,omitempty"`
	Notes       string                   `json:"notes,omitempty"`
	Category    models.SavedItemCategory `json:"category,omitempty"`
	CreatedAt   string                   `json:"createdAt"`
}

func (r savedItemResponse) toRecord() models.SavedItemRecord {
	return models.SavedItemRecord{
		ID:          r.ID,
		Translation: r.Translation.toRecord(),
		FolderID:    r.FolderID,
		FolderName:  r.FolderName,
		Name:        r.Name,
		Notes:       r.Notes,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt,
	}
}

type folderCreateRequest struct {
	Name           string `json:"name"`
	ParentFolderID string `json:"parentFolderId,omitempty"`
}

type folderUpdateRequest struct {
	Name string `json:"name"`
}

type loginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail"`
	Password        string `json:"password"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
