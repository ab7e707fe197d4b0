package services

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/rosetta/internal/client/gateway"
	"github.com/dmitrijs2005/rosetta/internal/client/models"
)

// fakeGateway records calls and answers with preset values. Zero value is a
// gateway where every call succeeds and returns empty results.
type fakeGateway struct {
	mu sync.Mutex

	// presets
	CreateTranslationResp models.TranslationRecord
	CreateTranslationErr  error
	Pages                 []models.Page[models.TranslationRecord]
	GetTranslationsErr    error
	ToggleResp            models.TranslationRecord
	ToggleErr             error
	CreateFolderResp      models.FolderRecord
	CreateFolderErr       error
	UpdateFolderErr       error
	CreateSavedItemErr    error

	// recorded calls
	CreatedTranslations []gateway.CreateTranslationPayload
	DeletedTranslations []string
	ToggledIDs          []string
	CreatedFolders      []string
	RenamedFolders      map[string]string
	DeletedFolders      []string
	CreatedSavedItems   []gateway.SavedItemCreatePayload
	DeletedSavedItems   []string
}

var _ gateway.Gateway = (*fakeGateway)(nil)

func (f *fakeGateway) Login(ctx context.Context, usernameOrEmail, password string) (string, error) {
	return "tok", nil
}

func (f *fakeGateway) Register(ctx context.Context, username, email, password string) error {
	return nil
}

func (f *fakeGateway) CreateTranslation(ctx context.Context, p gateway.CreateTranslationPayload) (models.TranslationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreatedTranslations = append(f.CreatedTranslations, p)
	return f.CreateTranslationResp, f.CreateTranslationErr
}

func (f *fakeGateway) GetTranslations(ctx context.Context, page, size int) (models.Page[models.TranslationRecord], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.GetTranslationsErr != nil {
		return models.Page[models.TranslationRecord]{}, f.GetTranslationsErr
	}
	if page >= len(f.Pages) {
		return models.Page[models.TranslationRecord]{Last: true}, nil
	}
	return f.Pages[page], nil
}

func (f *fakeGateway) DeleteTranslation(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeletedTranslations = append(f.DeletedTranslations, id)
	return nil
}

func (f *fakeGateway) ToggleFavoriteTranslation(ctx context.Context, id string) (models.TranslationRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ToggledIDs = append(f.ToggledIDs, id)
	return f.ToggleResp, f.ToggleErr
}

func (f *fakeGateway) CreateFolder(ctx context.Context, name, parentFolderID string) (models.FolderRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreatedFolders = append(f.CreatedFolders, name)
	return f.CreateFolderResp, f.CreateFolderErr
}

func (f *fakeGateway) GetFolders(ctx context.Context, parentFolderID string) ([]models.FolderRecord, error) {
	return nil, nil
}

func (f *fakeGateway) UpdateFolder(ctx context.Context, id, name string) (models.FolderRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.RenamedFolders == nil {
		f.RenamedFolders = make(map[string]string)
	}
	f.RenamedFolders[id] = name
	return models.FolderRecord{ID: id, Name: name, IsSynced: true}, f.UpdateFolderErr
}

func (f *fakeGateway) DeleteFolder(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeletedFolders = append(f.DeletedFolders, id)
	return nil
}

func (f *fakeGateway) CreateSavedItem(ctx context.Context, p gateway.SavedItemCreatePayload) (models.SavedItemRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.CreatedSavedItems = append(f.CreatedSavedItems, p)
	return models.SavedItemRecord{ID: "si-" + p.TranslationID}, f.CreateSavedItemErr
}

func (f *fakeGateway) GetSavedItems(ctx context.Context, q gateway.SavedItemQuery) (models.Page[models.SavedItemRecord], error) {
	return models.Page[models.SavedItemRecord]{Last: true}, nil
}

func (f *fakeGateway) UpdateSavedItem(ctx context.Context, id string, p gateway.SavedItemUpdatePayload) (models.SavedItemRecord, error) {
	return models.SavedItemRecord{ID: id}, nil
}

func (f *fakeGateway) DeleteSavedItem(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeletedSavedItems = append(f.DeletedSavedItems, id)
	return nil
}
