package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Saved lists saved items, optionally filtered by folder (empty name lists
// everything).
func (a *App) Saved(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter folder name (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	if name == "" {
		for _, r := range a.saved.List(ctx) {
			printlnFn(formatRecord(r))
		}
		return nil
	}

	list, err := a.folders.List(ctx)
	if err != nil {
		a.log.Error(ctx, "could not list folders", "err", err)
		return err
	}
	for _, f := range list {
		if strings.EqualFold(f.Name, name) {
			for _, r := range a.saved.InFolder(ctx, f.ID) {
				printlnFn(formatRecord(r))
			}
			return nil
		}
	}
	printlnFn("No such folder:", name)
	return fmt.Errorf("folder %q not found", name)
}

// Favorites lists the saved items marked favorite.
func (a *App) Favorites(ctx context.Context) error {
	for _, r := range a.saved.Favorites(ctx) {
		printlnFn(formatRecord(r))
	}
	return nil
}

// SaveToFolder files a history record into a folder. The saved list updates
// immediately; the backend create runs in the background.
func (a *App) SaveToFolder(ctx context.Context) error {
	rec, err := a.pickHistoryRecord(ctx)
	if err != nil {
		return err
	}
	f, err := a.pickFolder(ctx)
	if err != nil {
		return err
	}

	saved, err := a.saved.SaveToFolder(ctx, rec, f.ID)
	if err != nil {
		a.log.Error(ctx, "could not save item", "err", err)
		return err
	}

	rec.IsSaved = true
	rec.FolderID = saved.FolderID
	if err := a.history.Update(ctx, rec); err != nil {
		a.log.Warn(ctx, "could not update history copy", "err", err)
	}

	printlnFn(fmt.Sprintf("Saved into %s", f.Name))
	return nil
}
