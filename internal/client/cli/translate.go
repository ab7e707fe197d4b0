package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/rosetta/internal/client/gateway"
	"github.com/dmitrijs2005/rosetta/internal/client/models"
)

// Translate collects a source/target text pair and records it in the history
// cache. The record is visible in `history` immediately; the backend create
// runs in the background.
func (a *App) Translate(ctx context.Context) error {
	sourceLang, err := getSimpleText(a.reader, "Source language (e.g. en)", os.Stdout)
	if err != nil {
		return err
	}
	targetLang, err := getSimpleText(a.reader, "Target language (e.g. es)", os.Stdout)
	if err != nil {
		return err
	}
	sourceText, err := getMultiline(a.reader, "Enter text to translate:", os.Stdout)
	if err != nil {
		return err
	}
	if sourceText == "" {
		return fmt.Errorf("source text is required")
	}
	targetText, err := getMultiline(a.reader, "Enter translation:", os.Stdout)
	if err != nil {
		return err
	}

	rec, err := a.history.CreateOptimistic(ctx, gateway.CreateTranslationPayload{
		SourceText: sourceText,
		TargetText: targetText,
		SourceLang: sourceLang,
		TargetLang: targetLang,
		InputType:  models.InputTypeText,
	})
	if err != nil {
		a.log.Error(ctx, "could not record translation", "err", err)
		return err
	}

	printlnFn(fmt.Sprintf("Recorded %s -> %s [%s]", rec.SourceText, rec.TargetText, rec.ID))
	return nil
}
