package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/rosetta/internal/client/gateway"
	"github.com/dmitrijs2005/rosetta/internal/client/models"
	"github.com/dmitrijs2005/rosetta/internal/client/repositories/history"
	"github.com/dmitrijs2005/rosetta/internal/logging"
)

// HistoryService reconciles the local translation history cache against the
// backend of record.
type HistoryService interface {
	// CreateOptimistic caches a freshly translated pair under a local
	// placeholder id and returns it immediately; the backend create runs in
	// the background and, once acknowledged, the placeholder entry is
	// replaced by the server record.
	CreateOptimistic(ctx context.Context, p gateway.CreateTranslationPayload) (models.TranslationRecord, error)

	// List returns the cached history, newest first.
	List(ctx context.Context) []models.TranslationRecord

	// Update patches the local history copy of a record. Local only: the
	// caller decides which remote mutation, if any, accompanies it.
	Update(ctx context.Context, rec models.TranslationRecord) error

	// Clear wipes the local history cache. Local only.
	Clear(ctx context.Context) error

	// Refresh pulls every page of server-side history and merges it into the
	// local cache, last writer wins by id. Foreground flow: errors surface.
	Refresh(ctx context.Context) error

	// Wait drains pending background syncs.
	Wait()
}

const refreshPageSize = 20

type historyService struct {
	dispatcher
	gw    gateway.Gateway
	store history.Store
}

func NewHistoryService(gw gateway.Gateway, store history.Store, log logging.Logger) HistoryService {
	if log == nil {
		log = logging.Nop{}
	}
	return &historyService{dispatcher: dispatcher{log: log}, gw: gw, store: store}
}

func (s *historyService) CreateOptimistic(ctx context.Context, p gateway.CreateTranslationPayload) (models.TranslationRecord, error) {
	rec := models.TranslationRecord{
		ID:         models.NewLocalID(),
		SourceText: p.SourceText,
		TargetText: p.TargetText,
		SourceLang: p.SourceLang,
		TargetLang: p.TargetLang,
		Timestamp:  models.NowMillis(),
		InputType:  p.InputType,
	}

	// The local write must land before we return; without it there is
	// nothing to reconcile against.
	if _, err := s.store.Add(ctx, rec); err != nil {
		return models.TranslationRecord{}, fmt.Errorf("failed to cache translation: %w", err)
	}

	localID := rec.ID
	s.dispatch("createTranslation", func(ctx context.Context) error {
		synced, err := s.gw.CreateTranslation(ctx, p)
		if err != nil {
			return err
		}
		if err := s.store.Delete(ctx, localID); err != nil {
			return err
		}
		_, err = s.store.Add(ctx, synced)
		return err
	})

	return rec, nil
}

func (s *historyService) List(ctx context.Context) []models.TranslationRecord {
	return s.store.GetAll(ctx)
}

func (s *historyService) Update(ctx context.Context, rec models.TranslationRecord) error {
	return s.store.Update(ctx, rec)
}

func (s *historyService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func (s *historyService) Refresh(ctx context.Context) error {
	for page := 0; ; page++ {
		p, err := s.gw.GetTranslations(ctx, page, refreshPageSize)
		if err != nil {
			return fmt.Errorf("failed to fetch history page %d: %w", page, err)
		}
		if len(p.Content) > 0 {
			if err := s.store.BatchSave(ctx, p.Content); err != nil {
				return fmt.Errorf("failed to merge history page %d: %w", page, err)
			}
		}
		if p.Last || page+1 >= p.TotalPages {
			return nil
		}
	}
}
