package saveditems

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
	"github.com/dmitrijs2005/rosetta/internal/client/storage"
	"github.com/dmitrijs2005/rosetta/internal/logging"
)

// KVStore implements Store over a key/value persistence adapter.
type KVStore struct {
	adapter storage.Adapter
	log     logging.Logger
}

func NewKVStore(adapter storage.Adapter, log logging.Logger) *KVStore {
	if log == nil {
		log = logging.Nop{}
	}
	return &KVStore{adapter: adapter, log: log}
}

func (s *KVStore) GetAll(ctx context.Context) []models.TranslationRecord {
	recs, err := storage.LoadList[models.TranslationRecord](ctx, s.adapter, StorageKey)
	if err != nil {
		s.log.Warn(ctx, "failed to load saved items, returning empty", "err", err)
		return []models.TranslationRecord{}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Timestamp > recs[j].Timestamp
	})
	return recs
}

func (s *KVStore) GetByID(ctx context.Context, id string) (models.TranslationRecord, bool) {
	for _, r := range s.GetAll(ctx) {
		if r.ID == id {
			return r, true
		}
	}
	return models.TranslationRecord{}, false
}

func (s *KVStore) ByFolder(ctx context.Context, folderID string) []models.TranslationRecord {
	var out []models.TranslationRecord
	for _, r := range s.GetAll(ctx) {
		if r.FolderID == folderID {
			out = append(out, r)
		}
	}
	return out
}

func (s *KVStore) Favorites(ctx context.Context) []models.TranslationRecord {
	var out []models.TranslationRecord
	for _, r := range s.GetAll(ctx) {
		if r.IsFavorite {
			out = append(out, r)
		}
	}
	return out
}

func (s *KVStore) Upsert(ctx context.Context, rec models.TranslationRecord) ([]models.TranslationRecord, error) {
	recs := s.GetAll(ctx)

	replaced := false
	for i, r := range recs {
		if r.ID == rec.ID {
			recs[i] = rec
			replaced = true
		}
	}
	if !replaced {
		recs = append([]models.TranslationRecord{rec}, recs...)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Timestamp > recs[j].Timestamp
	})

	if err := storage.SaveList(ctx, s.adapter, StorageKey, recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (s *KVStore) Delete(ctx context.Context, id string) error {
	recs := s.GetAll(ctx)
	filtered := recs[:0]
	for _, r := range recs {
		if r.ID != id {
			filtered = append(filtered, r)
		}
	}
	return storage.SaveList(ctx, s.adapter, StorageKey, filtered)
}

func (s *KVStore) DeleteByFolder(ctx context.Context, folderID string) error {
	recs := s.GetAll(ctx)
	filtered := recs[:0]
	for _, r := range recs {
		if r.FolderID != folderID {
			filtered = append(filtered, r)
		}
	}
	return storage.SaveList(ctx, s.adapter, StorageKey, filtered)
}
