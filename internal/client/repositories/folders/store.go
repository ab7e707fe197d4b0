package folders

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
	"github.com/dmitrijs2005/rosetta/internal/client/storage"
)

// KVStore implements Store over a key/value persistence adapter.
type KVStore struct {
	adapter storage.Adapter
}

func NewKVStore(adapter storage.Adapter) *KVStore {
	return &KVStore{adapter: adapter}
}

func (s *KVStore) GetAll(ctx context.Context) ([]models.FolderRecord, error) {
	return storage.LoadList[models.FolderRecord](ctx, s.adapter, StorageKey)
}

func (s *KVStore) GetByID(ctx context.Context, id string) (models.FolderRecord, bool, error) {
	list, err := s.GetAll(ctx)
	if err != nil {
		return models.FolderRecord{}, false, err
	}
	for _, f := range list {
		if f.ID == id {
			return f, true, nil
		}
	}
	return models.FolderRecord{}, false, nil
}

func (s *KVStore) FindByName(ctx context.Context, name string) (models.FolderRecord, bool, error) {
	list, err := s.GetAll(ctx)
	if err != nil {
		return models.FolderRecord{}, false, err
	}
	for _, f := range list {
		if strings.EqualFold(f.Name, name) {
			return f, true, nil
		}
	}
	return models.FolderRecord{}, false, nil
}

func (s *KVStore) Add(ctx context.Context, f models.FolderRecord) error {
	list, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	list = append(list, f)
	return storage.SaveList(ctx, s.adapter, StorageKey, list)
}

func (s *KVStore) Replace(ctx context.Context, oldID string, f models.FolderRecord) error {
	list, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i, cur := range list {
		if cur.ID == oldID {
			list[i] = f
			replaced = true
		}
	}
	if !replaced {
		list = append(list, f)
	}
	return storage.SaveList(ctx, s.adapter, StorageKey, list)
}

func (s *KVStore) Update(ctx context.Context, f models.FolderRecord) error {
	list, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	changed := false
	for i, cur := range list {
		if cur.ID == f.ID {
			list[i] = f
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return storage.SaveList(ctx, s.adapter, StorageKey, list)
}

func (s *KVStore) Delete(ctx context.Context, id string) error {
	list, err := s.GetAll(ctx)
	if err != nil {
		return err
	}
	filtered := list[:0]
	for _, f := range list {
		if f.ID != id {
			filtered = append(filtered, f)
		}
	}
	return storage.SaveList(ctx, s.adapter, StorageKey, filtered)
}
