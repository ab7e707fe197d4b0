package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/rosetta/internal/client/gateway"
	"github.com/dmitrijs2005/rosetta/internal/client/models"
	"github.com/dmitrijs2005/rosetta/internal/client/repositories/folders"
	"github.com/dmitrijs2005/rosetta/internal/client/repositories/saveditems"
	"github.com/dmitrijs2005/rosetta/internal/common"
	"github.com/dmitrijs2005/rosetta/internal/logging"
	"golang.org/x/sync/singleflight"
)

// FoldersService reconciles the local folder cache against the backend.
// Folder flows are foreground UI flows, so local persistence errors
// propagate to the caller; background sync failures still only log.
type FoldersService interface {
	// List returns the cached folders in insertion order.
	List(ctx context.Context) ([]models.FolderRecord, error)

	// Create persists a placeholder folder immediately so the UI can
	// reference it, then creates it remotely in the background; on the
	// backend's ack the placeholder is replaced by the server record. A
	// failed remote create leaves the folder permanently unsynced.
	Create(ctx context.Context, name string) (models.FolderRecord, error)

	// InitializeDefault returns the "Saved" folder, creating it when absent.
	// Concurrent callers are collapsed into a single lookup-and-create.
	InitializeDefault(ctx context.Context) (models.FolderRecord, error)

	// Rename updates the folder name locally and awaits the remote rename,
	// surfacing its error; the optimistic local rename stands either way.
	Rename(ctx context.Context, id, name string) (models.FolderRecord, error)

	// Delete removes the folder and cascades over every saved item filed
	// into it. Local removal is unconditional; the remote delete runs in the
	// background.
	Delete(ctx context.Context, id string) error

	// Wait drains pending background syncs.
	Wait()
}

type foldersService struct {
	dispatcher
	gw    gateway.Gateway
	store folders.Store
	saved saveditems.Store
	sf    singleflight.Group
}

func NewFoldersService(gw gateway.Gateway, store folders.Store, saved saveditems.Store, log logging.Logger) FoldersService {
	if log == nil {
		log = logging.Nop{}
	}
	return &foldersService{dispatcher: dispatcher{log: log}, gw: gw, store: store, saved: saved}
}

func (s *foldersService) List(ctx context.Context) ([]models.FolderRecord, error) {
	return s.store.GetAll(ctx)
}

func (s *foldersService) Create(ctx context.Context, name string) (models.FolderRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.FolderRecord{}, common.ErrEmptyFolderName
	}

	f := models.FolderRecord{
		ID:        models.NewLocalID(),
		Name:      name,
		CreatedAt: models.NowMillis(),
	}
	if err := s.store.Add(ctx, f); err != nil {
		return models.FolderRecord{}, fmt.Errorf("failed to persist folder: %w", err)
	}

	localID := f.ID
	s.dispatch("createFolder", func(ctx context.Context) error {
		synced, err := s.gw.CreateFolder(ctx, name, "")
		if err != nil {
			return err
		}
		return s.store.Replace(ctx, localID, synced)
	})

	return f, nil
}

func (s *foldersService) InitializeDefault(ctx context.Context) (models.FolderRecord, error) {
	// Two concurrent initializations used to both miss the lookup and create
	// two default folders; the singleflight group collapses them.
	v, err, _ := s.sf.Do("default-folder", func() (any, error) {
		f, ok, err := s.store.FindByName(ctx, models.DefaultFolderName)
		if err != nil {
			return models.FolderRecord{}, err
		}
		if ok {
			return f, nil
		}
		return s.Create(ctx, models.DefaultFolderName)
	})
	if err != nil {
		return models.FolderRecord{}, err
	}
	return v.(models.FolderRecord), nil
}

func (s *foldersService) Rename(ctx context.Context, id, name string) (models.FolderRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.FolderRecord{}, common.ErrEmptyFolderName
	}

	f, ok, err := s.store.GetByID(ctx, id)
	if err != nil {
		return models.FolderRecord{}, err
	}
	if !ok {
		return models.FolderRecord{}, common.ErrNotFound
	}

	f.Name = name
	if err := s.store.Update(ctx, f); err != nil {
		return models.FolderRecord{}, fmt.Errorf("failed to persist folder rename: %w", err)
	}

	// A placeholder folder has nothing to rename remotely yet.
	if models.IsLocalID(id) {
		return f, nil
	}
	if _, err := s.gw.UpdateFolder(ctx, id, name); err != nil {
		return f, fmt.Errorf("failed to rename folder remotely: %w", err)
	}
	return f, nil
}

func (s *foldersService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete folder: %w", err)
	}
	if err := s.saved.DeleteByFolder(ctx, id); err != nil {
		return fmt.Errorf("failed to cascade folder delete: %w", err)
	}

	if models.IsLocalID(id) {
		return nil
	}
	s.dispatch("deleteFolder", func(ctx context.Context) error {
		return s.gw.DeleteFolder(ctx, id)
	})
	return nil
}
