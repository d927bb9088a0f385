package staging

import (
	"context"
	"testing"

	"recyklat-backend/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStashTest(t *testing.T) *Stash {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &Stash{Store: NewRedisStore(rdb)}
}

func TestDraftRoundTrip(t *testing.T) {
	stash := setupStashTest(t)
	ctx := context.Background()

	draft := models.Draft{
		TransactionType: models.TransactionSell,
		Title:           "Folia kolorowa po tłoczeniu",
		Material:        "Folia kolorowa",
		WasteCode:       "15 01 02",
		WeightTonnes:    2.5,
		Province:        "śląskie",
		Locality:        "Katowice",
		Phone:           "600 100 200",
		ImageURL:        "https://example.com/img.jpg",
	}
	require.NoError(t, stash.SaveDraft(ctx, "sid-1", draft))

	loaded, err := stash.LoadDraft(ctx, "sid-1")
	require.NoError(t, err)
	draft.Version = models.DraftVersion
	assert.Equal(t, draft, *loaded, "every staged field comes back unchanged")
}

func TestLoadDraft_Missing(t *testing.T) {
	stash := setupStashTest(t)
	_, err := stash.LoadDraft(context.Background(), "sid-1")
	assert.ErrorIs(t, err, ErrNoDraft)
}

func TestLoadDraft_StaleVersion(t *testing.T) {
	stash := setupStashTest(t)
	ctx := context.Background()
	require.NoError(t, stash.Store.Set(ctx, "draft:sid-1", `{"version":0,"title":"old"}`))

	_, err := stash.LoadDraft(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrDraftVersion)
}

func TestRemoveDraft(t *testing.T) {
	stash := setupStashTest(t)
	ctx := context.Background()
	require.NoError(t, stash.SaveDraft(ctx, "sid-1", models.Draft{Title: "x"}))
	require.NoError(t, stash.RemoveDraft(ctx, "sid-1"))

	_, err := stash.LoadDraft(ctx, "sid-1")
	assert.ErrorIs(t, err, ErrNoDraft)

	assert.NoError(t, stash.RemoveDraft(ctx, "sid-1"), "removing a missing draft is not an error")
}

func TestOwnershipIndex(t *testing.T) {
	stash := setupStashTest(t)
	ctx := context.Background()

	ids, err := stash.OwnedIDs(ctx, "sid-1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, stash.AddOwned(ctx, "sid-1", 7))
	require.NoError(t, stash.AddOwned(ctx, "sid-1", 9))
	require.NoError(t, stash.AddOwned(ctx, "sid-1", 7), "duplicate append is dropped")

	ids, err = stash.OwnedIDs(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, []uint{7, 9}, ids)

	owned, err := stash.IsOwned(ctx, "sid-1", 9)
	require.NoError(t, err)
	assert.True(t, owned)

	owned, err = stash.IsOwned(ctx, "sid-2", 9)
	require.NoError(t, err)
	assert.False(t, owned, "index is per-session")

	require.NoError(t, stash.RemoveOwned(ctx, "sid-1", 7))
	ids, err = stash.OwnedIDs(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, []uint{9}, ids)
}
