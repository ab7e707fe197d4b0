package history

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
	"github.com/dmitrijs2005/rosetta/internal/client/storage"
	"github.com/dmitrijs2005/rosetta/internal/logging"
)

// KVStore implements Store over a key/value persistence adapter. Every
// mutation is a full read-modify-write of the history blob.
type KVStore struct {
	adapter storage.Adapter
	limit   int
	log     logging.Logger
}

// NewKVStore returns a history store with the given cap. A limit <= 0 falls
// back to DefaultLimit.
func NewKVStore(adapter storage.Adapter, limit int, log logging.Logger) *KVStore {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if log == nil {
		log = logging.Nop{}
	}
	return &KVStore{adapter: adapter, limit: limit, log: log}
}

func sortByTimestampDesc(recs []models.TranslationRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Timestamp > recs[j].Timestamp
	})
}

func (s *KVStore) load(ctx context.Context) ([]models.TranslationRecord, error) {
	return storage.LoadList[models.TranslationRecord](ctx, s.adapter, StorageKey)
}

func (s *KVStore) GetAll(ctx context.Context) []models.TranslationRecord {
	recs, err := s.load(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load history, returning empty", "err", err)
		return []models.TranslationRecord{}
	}
	sortByTimestampDesc(recs)
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

func (s *KVStore) Count(ctx context.Context) int {
	return len(s.GetAll(ctx))
}

func (s *KVStore) Add(ctx context.Context, rec models.TranslationRecord) ([]models.TranslationRecord, error) {
	prior := s.GetAll(ctx)

	if rec.ID == "" {
		rec.ID = models.NewLocalID()
	}
	if rec.Timestamp == 0 {
		rec.Timestamp = models.NowMillis()
	}

	updated := make([]models.TranslationRecord, 0, len(prior)+1)
	updated = append(updated, rec)
	for _, r := range prior {
		if r.ID != rec.ID {
			updated = append(updated, r)
		}
	}
	if len(updated) > s.limit {
		updated = updated[:s.limit]
	}

	if err := storage.SaveList(ctx, s.adapter, StorageKey, updated); err != nil {
		s.log.Warn(ctx, "failed to persist history item", "id", rec.ID, "err", err)
		return prior, err
	}
	return updated, nil
}

func (s *KVStore) Update(ctx context.Context, rec models.TranslationRecord) error {
	recs := s.GetAll(ctx)
	changed := false
	for i, r := range recs {
		if r.ID == rec.ID {
			recs[i] = rec
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return storage.SaveList(ctx, s.adapter, StorageKey, recs)
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

func (s *KVStore) BatchSave(ctx context.Context, recs []models.TranslationRecord) error {
	existing := s.GetAll(ctx)

	index := make(map[string]int, len(existing))
	merged := make([]models.TranslationRecord, len(existing))
	copy(merged, existing)
	for i, r := range merged {
		index[r.ID] = i
	}
	for _, r := range recs {
		if i, ok := index[r.ID]; ok {
			merged[i] = r
			continue
		}
		index[r.ID] = len(merged)
		merged = append(merged, r)
	}

	sortByTimestampDesc(merged)
	return storage.SaveList(ctx, s.adapter, StorageKey, merged)
}

func (s *KVStore) BatchDelete(ctx context.Context, ids []string) error {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	recs := s.GetAll(ctx)
	filtered := recs[:0]
	for _, r := range recs {
		if _, ok := drop[r.ID]; !ok {
			filtered = append(filtered, r)
		}
	}
	return storage.SaveList(ctx, s.adapter, StorageKey, filtered)
}

func (s *KVStore) Prune(ctx context.Context, max int) error {
	recs := s.GetAll(ctx)
	if len(recs) <= max {
		return nil
	}
	return storage.SaveList(ctx, s.adapter, StorageKey, recs[:max])
}

func (s *KVStore) Clear(ctx context.Context) error {
	return s.adapter.Remove(ctx, StorageKey)
}
