package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/rosetta/internal/client/gateway"
	"github.com/dmitrijs2005/rosetta/internal/client/models"
	"github.com/dmitrijs2005/rosetta/internal/client/repositories/history"
	"github.com/dmitrijs2005/rosetta/internal/client/repositories/saveditems"
	"github.com/dmitrijs2005/rosetta/internal/common"
	"github.com/dmitrijs2005/rosetta/internal/logging"
)

// Source names the store an item is deleted from. Deletes touch exactly the
// named store: the history cache and the saved-items cache are independent
// copies of the same logical translation.
type Source string

const (
	SourceHistory Source = "history"
	SourceSaved   Source = "saved"
)

// SavedItemsService reconciles the saved-items cache (the backing list for
// both the "saved" and "favorites" views) against the backend.
type SavedItemsService interface {
	// List returns every saved record, newest first.
	List(ctx context.Context) []models.TranslationRecord

	// InFolder returns the saved records filed into the given folder.
	InFolder(ctx context.Context, folderID string) []models.TranslationRecord

	// Favorites returns the saved records marked favorite.
	Favorites(ctx context.Context) []models.TranslationRecord

	// SaveToFolder files a translation into a folder. An existing saved entry
	// keeps its favorite flag; a new one inherits the incoming record's. The
	// timestamp is refreshed so the item surfaces at the head of the list.
	SaveToFolder(ctx context.Context, t models.TranslationRecord, folderID string) (models.TranslationRecord, error)

	// ToggleFavorite flips the favorite flag relative to the saved store's
	// current state when the record exists there, else relative to the
	// incoming record's flag. The result is upserted into the saved store.
	ToggleFavorite(ctx context.Context, t models.TranslationRecord) (models.TranslationRecord, error)

	// Delete removes the record from exactly the named store, then fires the
	// corresponding background remote delete.
	Delete(ctx context.Context, id string, from Source) error

	// Wait drains pending background syncs.
	Wait()
}

type savedItemsService struct {
	dispatcher
	gw    gateway.Gateway
	saved saveditems.Store
	hist  history.Store
}

func NewSavedItemsService(gw gateway.Gateway, saved saveditems.Store, hist history.Store, log logging.Logger) SavedItemsService {
	if log == nil {
		log = logging.Nop{}
	}
	return &savedItemsService{dispatcher: dispatcher{log: log}, gw: gw, saved: saved, hist: hist}
}

func (s *savedItemsService) List(ctx context.Context) []models.TranslationRecord {
	return s.saved.GetAll(ctx)
}

func (s *savedItemsService) InFolder(ctx context.Context, folderID string) []models.TranslationRecord {
	return s.saved.ByFolder(ctx, folderID)
}

func (s *savedItemsService) Favorites(ctx context.Context) []models.TranslationRecord {
	return s.saved.Favorites(ctx)
}

func (s *savedItemsService) SaveToFolder(ctx context.Context, t models.TranslationRecord, folderID string) (models.TranslationRecord, error) {
	rec := t
	if existing, ok := s.saved.GetByID(ctx, t.ID); ok {
		rec.IsFavorite = existing.IsFavorite
	}
	rec.IsSaved = true
	rec.FolderID = folderID
	rec.Timestamp = models.NowMillis()

	if _, err := s.saved.Upsert(ctx, rec); err != nil {
		return models.TranslationRecord{}, fmt.Errorf("failed to persist saved item: %w", err)
	}

	if !models.IsLocalID(rec.ID) {
		s.dispatch("createSavedItem", func(ctx context.Context) error {
			_, err := s.gw.CreateSavedItem(ctx, gateway.SavedItemCreatePayload{
				TranslationID: rec.ID,
				Category:      models.CategoryPhrase,
				FolderID:      folderID,
			})
			if errors.Is(err, common.ErrAlreadySaved) {
				return nil
			}
			return err
		})
	}

	return rec, nil
}

func (s *savedItemsService) ToggleFavorite(ctx context.Context, t models.TranslationRecord) (models.TranslationRecord, error) {
	// Resolution order matters: the saved store's current state wins over the
	// caller-supplied flags, falling back to the incoming record on first
	// toggle.
	current := t.IsFavorite
	wasSaved := t.IsSaved
	folderID := t.FolderID
	if existing, ok := s.saved.GetByID(ctx, t.ID); ok {
		current = existing.IsFavorite
		wasSaved = existing.IsSaved
		folderID = existing.FolderID
	}

	rec := t
	rec.IsFavorite = !current
	rec.IsSaved = wasSaved
	rec.FolderID = folderID
	if rec.Timestamp == 0 {
		rec.Timestamp = models.NowMillis()
	}

	if _, err := s.saved.Upsert(ctx, rec); err != nil {
		return models.TranslationRecord{}, fmt.Errorf("failed to persist favorite toggle: %w", err)
	}

	if !models.IsLocalID(rec.ID) {
		nowFavorite := rec.IsFavorite
		s.dispatch("toggleFavorite", func(ctx context.Context) error {
			if _, err := s.gw.ToggleFavoriteTranslation(ctx, rec.ID); err != nil {
				return err
			}
			if !nowFavorite {
				return nil
			}
			// Favoriting implies a server-side saved item exists; a
			// duplicate-save answer is benign.
			_, err := s.gw.CreateSavedItem(ctx, gateway.SavedItemCreatePayload{
				TranslationID: rec.ID,
				Category:      models.CategoryPhrase,
				FolderID:      rec.FolderID,
			})
			if errors.Is(err, common.ErrAlreadySaved) {
				return nil
			}
			return err
		})
	}

	return rec, nil
}

func (s *savedItemsService) Delete(ctx context.Context, id string, from Source) error {
	switch from {
	case SourceHistory:
		if err := s.hist.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete history item: %w", err)
		}
		if !models.IsLocalID(id) {
			s.dispatch("deleteTranslation", func(ctx context.Context) error {
				return s.gw.DeleteTranslation(ctx, id)
			})
		}
		return nil
	case SourceSaved:
		if err := s.saved.Delete(ctx, id); err != nil {
			return fmt.Errorf("failed to delete saved item: %w", err)
		}
		if !models.IsLocalID(id) {
			s.dispatch("deleteSavedItem", func(ctx context.Context) error {
				return s.gw.DeleteSavedItem(ctx, id)
			})
		}
		return nil
	default:
		return fmt.Errorf("unknown delete source %q", from)
	}
}
