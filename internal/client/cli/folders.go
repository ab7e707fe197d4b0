package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
)

// Folders lists the cached folders.
func (a *App) Folders(ctx context.Context) error {
	list, err := a.folders.List(ctx)
	if err != nil {
		a.log.Error(ctx, "could not list folders", "err", err)
		return err
	}
	for _, f := range list {
		mark := ""
		if !f.IsSynced {
			mark = " ?"
		}
		printlnFn(fmt.Sprintf("%s (%s)%s", f.Name, f.ID, mark))
	}
	return nil
}

// NewFolder creates a folder. It is usable immediately; the backend create
// runs in the background.
func (a *App) NewFolder(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter folder name", os.Stdout)
	if err != nil {
		return err
	}

	f, err := a.folders.Create(ctx, name)
	if err != nil {
		a.log.Error(ctx, "could not create folder", "err", err)
		return err
	}
	printlnFn(fmt.Sprintf("Created folder %s (%s)", f.Name, f.ID))
	return nil
}

// RenameFolder renames a folder locally and on the server.
func (a *App) RenameFolder(ctx context.Context) error {
	f, err := a.pickFolder(ctx)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter new name", os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.folders.Rename(ctx, f.ID, name); err != nil {
		a.log.Error(ctx, "could not rename folder", "err", err)
		return err
	}
	printlnFn("Renamed")
	return nil
}

// DeleteFolder removes a folder along with every saved item filed into it.
func (a *App) DeleteFolder(ctx context.Context) error {
	f, err := a.pickFolder(ctx)
	if err != nil {
		return err
	}

	if err := a.folders.Delete(ctx, f.ID); err != nil {
		a.log.Error(ctx, "could not delete folder", "err", err)
		return err
	}
	printlnFn("Folder deleted")
	return nil
}

// pickFolder prompts for a folder name and resolves it against the cache,
// matching case-insensitively.
func (a *App) pickFolder(ctx context.Context) (models.FolderRecord, error) {
	name, err := getSimpleText(a.reader, "Enter folder name", os.Stdout)
	if err != nil {
		return models.FolderRecord{}, err
	}

	list, err := a.folders.List(ctx)
	if err != nil {
		return models.FolderRecord{}, err
	}
	for _, f := range list {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	printlnFn("No such folder:", name)
	return models.FolderRecord{}, fmt.Errorf("folder %q not found", name)
}
