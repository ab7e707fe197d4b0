package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/rosetta/internal/client/models"
	"github.com/dmitrijs2005/rosetta/internal/client/services"
	"github.com/dmitrijs2005/rosetta/internal/common"
)

// formatRecord renders a one-line summary for list views.
func formatRecord(r models.TranslationRecord) string {
	marks := ""
	if r.IsFavorite {
		marks += "*"
	}
	if r.IsSaved {
		marks += "+"
	}
	if !r.IsSynced {
		marks += "?"
	}
	ts := time.UnixMilli(r.Timestamp).Format("2006-01-02 15:04")
	return fmt.Sprintf("%s  [%s->%s] %s -> %s %s (%s)", ts, r.SourceLang, r.TargetLang, r.SourceText, r.TargetText, marks, r.ID)
}

// History lists the local history cache, newest first. Markers: * favorite,
// + saved, ? not yet synced.
func (a *App) History(ctx context.Context) error {
	for _, r := range a.history.List(ctx) {
		printlnFn(formatRecord(r))
	}
	return nil
}

// ToggleFavorite flips the favorite flag on a history record and mirrors the
// result back into the history cache so both views agree.
func (a *App) ToggleFavorite(ctx context.Context) error {
	rec, err := a.pickHistoryRecord(ctx)
	if err != nil {
		return err
	}

	updated, err := a.saved.ToggleFavorite(ctx, rec)
	if err != nil {
		a.log.Error(ctx, "could not toggle favorite", "err", err)
		return err
	}

	rec.IsFavorite = updated.IsFavorite
	if err := a.history.Update(ctx, rec); err != nil {
		a.log.Warn(ctx, "could not update history copy", "err", err)
	}

	if updated.IsFavorite {
		printlnFn("Marked as favorite")
	} else {
		printlnFn("Removed from favorites")
	}
	return nil
}

// Delete removes a record from either the history or the saved list,
// whichever the user names. The other list keeps its copy.
func (a *App) Delete(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter record id to delete", os.Stdout)
	if err != nil {
		return err
	}
	from, err := getSimpleText(a.reader, "Delete from (history/saved)", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.saved.Delete(ctx, id, services.Source(from)); err != nil {
		a.log.Error(ctx, "could not delete record", "err", err)
		return err
	}
	printlnFn("Deleted")
	return nil
}

// Refresh pulls the server-side history into the local cache.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.history.Refresh(ctx); err != nil {
		a.log.Error(ctx, "could not refresh history", "err", err)
		return err
	}
	printlnFn("History refreshed")
	return nil
}

// Clear wipes the local history cache. The server copy is untouched.
func (a *App) Clear(ctx context.Context) error {
	if err := a.history.Clear(ctx); err != nil {
		a.log.Error(ctx, "could not clear history", "err", err)
		return err
	}
	printlnFn("History cleared")
	return nil
}

// pickHistoryRecord prompts for a record id and resolves it against the
// history cache.
func (a *App) pickHistoryRecord(ctx context.Context) (models.TranslationRecord, error) {
	id, err := getSimpleText(a.reader, "Enter record id", os.Stdout)
	if err != nil {
		return models.TranslationRecord{}, err
	}
	for _, r := range a.history.List(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	printlnFn("No such record:", id)
	return models.TranslationRecord{}, common.ErrNotFound
}
