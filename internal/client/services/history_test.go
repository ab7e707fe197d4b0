package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/rosetta/internal/client/gateway"
	"github.com/dmitrijs2005/rosetta/internal/client/models"
	"github.com/dmitrijs2005/rosetta/internal/client/repositories/history"
	"github.com/dmitrijs2005/rosetta/internal/client/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryFixture(t *testing.T) (*fakeGateway, history.Store, *storage.MemoryAdapter, HistoryService) {
	t.Helper()
	gw := &fakeGateway{}
	a := storage.NewMemoryAdapter()
	store := history.NewKVStore(a, 0, nil)
	return gw, store, a, NewHistoryService(gw, store, nil)
}

func payload() gateway.CreateTranslationPayload {
	return gateway.CreateTranslationPayload{
		SourceText: "hello",
		TargetText: "hola",
		SourceLang: "en",
		TargetLang: "es",
		InputType:  models.InputTypeText,
	}
}

func TestCreateOptimistic_ReturnsPlaceholderImmediately(t *testing.T) {
	gw, store, _, svc := newHistoryFixture(t)
	gw.CreateTranslationErr = errors.New("offline")
	ctx := context.Background()

	rec, err := svc.CreateOptimistic(ctx, payload())
	require.NoError(t, err)
	assert.True(t, models.IsLocalID(rec.ID))
	assert.Equal(t, "hello", rec.SourceText)
	assert.Equal(t, "hola", rec.TargetText)
	assert.NotZero(t, rec.Timestamp)
	assert.False(t, rec.IsSynced)

	// the optimistic record survives the failed sync
	svc.Wait()
	got := store.GetAll(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.False(t, got[0].IsSynced)
}

func TestCreateOptimistic_ServerAckReplacesPlaceholder(t *testing.T) {
	gw, store, _, svc := newHistoryFixture(t)
	gw.CreateTranslationResp = models.TranslationRecord{
		ID:         "42",
		SourceText: "hello",
		TargetText: "hola",
		SourceLang: "en",
		TargetLang: "es",
		Timestamp:  models.NowMillis(),
		InputType:  models.InputTypeText,
		IsSynced:   true,
	}
	ctx := context.Background()

	rec, err := svc.CreateOptimistic(ctx, payload())
	require.NoError(t, err)
	svc.Wait()

	got := store.GetAll(ctx)
	require.Len(t, got, 1)
	assert.Equal(t, "42", got[0].ID)
	assert.True(t, got[0].IsSynced)
	for _, r := range got {
		assert.NotEqual(t, rec.ID, r.ID, "local placeholder must be gone")
	}
}

func TestCreateOptimistic_LocalWriteFailureAborts(t *testing.T) {
	gw, _, a, svc := newHistoryFixture(t)
	a.FailSet = map[string]error{history.StorageKey: errors.New("disk full")}

	_, err := svc.CreateOptimistic(context.Background(), payload())
	require.Error(t, err)

	svc.Wait()
	assert.Empty(t, gw.CreatedTranslations, "no remote dispatch without a local write")
}

func TestRefresh_MergesAllPages(t *testing.T) {
	gw, store, _, svc := newHistoryFixture(t)
	gw.Pages = []models.Page[models.TranslationRecord]{
		{
			Content:    []models.TranslationRecord{{ID: "1", Timestamp: 100}, {ID: "2", Timestamp: 200}},
			Number:     0,
			TotalPages: 2,
		},
		{
			Content:    []models.TranslationRecord{{ID: "3", Timestamp: 300}},
			Number:     1,
			TotalPages: 2,
			Last:       true,
		},
	}
	ctx := context.Background()

	// a local record with the same id gets overwritten by the server copy
	_, err := store.Add(ctx, models.TranslationRecord{ID: "2", Timestamp: 50, TargetText: "stale"})
	require.NoError(t, err)

	require.NoError(t, svc.Refresh(ctx))

	got := store.GetAll(ctx)
	require.Len(t, got, 3)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
	assert.Empty(t, got[1].TargetText)
}

func TestRefresh_PropagatesError(t *testing.T) {
	gw, _, _, svc := newHistoryFixture(t)
	gw.GetTranslationsErr = errors.New("boom")

	require.Error(t, svc.Refresh(context.Background()))
}

func TestClear(t *testing.T) {
	_, store, _, svc := newHistoryFixture(t)
	ctx := context.Background()

	_, err := store.Add(ctx, models.TranslationRecord{ID: "1", Timestamp: 100})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx))
	assert.Empty(t, svc.List(ctx))
}
