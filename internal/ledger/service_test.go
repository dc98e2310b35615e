package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lootgrid/lootgrid/internal/domain"
)

func newTestService(repo *FakeRepository) Service {
	return NewService(repo, repo, repo)
}

func TestRegisterPlayer(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	player, err := svc.RegisterPlayer(ctx, "discord-1", "Runa")
	require.NoError(t, err)
	assert.Equal(t, "discord-1", player.DiscordID)
	assert.Equal(t, "Runa", player.DisplayName)
	assert.Zero(t, player.Score)

	// Second contact refreshes the display name, keeps the score.
	player, err = svc.RegisterPlayer(ctx, "discord-1", "Runa the Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Runa the Renamed", player.DisplayName)
	assert.Zero(t, player.Score)
}

func TestRegisterPlayerEmptyID(t *testing.T) {
	svc := newTestService(NewFakeRepository())

	_, err := svc.RegisterPlayer(context.Background(), "", "nobody")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGrantIdempotent(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.RegisterPlayer(ctx, "discord-1", "Runa")
	require.NoError(t, err)

	sword := domain.Item{ID: 7, Name: "sword", PointValue: 25}

	first, err := svc.Grant(ctx, "discord-1", sword)
	require.NoError(t, err)
	assert.True(t, first.Granted)
	assert.Equal(t, 25, first.TotalScore)

	second, err := svc.Grant(ctx, "discord-1", sword)
	require.NoError(t, err)
	assert.False(t, second.Granted)
	assert.Equal(t, first.TotalScore, second.TotalScore, "both calls report the same total")
}

func TestGrantPendingRowCountsAsAbsent(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.RegisterPlayer(ctx, "discord-1", "Runa")
	require.NoError(t, err)

	shield := domain.Item{ID: 3, Name: "shield", PointValue: 10}
	repo.SeedOwnership("discord-1", shield.ID, false)

	result, err := svc.Grant(ctx, "discord-1", shield)
	require.NoError(t, err)
	assert.True(t, result.Granted, "an acquired=false row means not yet granted")
	assert.Equal(t, 10, result.TotalScore)
}

func TestGrantScoreInvariant(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.RegisterPlayer(ctx, "discord-1", "Runa")
	require.NoError(t, err)

	items := []domain.Item{
		{ID: 1, Name: "sword", PointValue: 25},
		{ID: 2, Name: "shield", PointValue: 10},
		{ID: 3, Name: "potion", PointValue: 5},
	}

	// Grant each item twice in mixed order; duplicates must not count.
	for _, item := range items {
		_, err := svc.Grant(ctx, "discord-1", item)
		require.NoError(t, err)
	}
	for _, item := range items {
		_, err := svc.Grant(ctx, "discord-1", item)
		require.NoError(t, err)
	}

	player, err := svc.GetPlayer(ctx, "discord-1")
	require.NoError(t, err)
	assert.Equal(t, 40, player.Score, "score equals the sum of point values over owned items")

	owned, err := repo.GetOwnedItemIDs(ctx, "discord-1")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, owned)
}

func TestGrantRetriesTransientFailures(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.RegisterPlayer(ctx, "discord-1", "Runa")
	require.NoError(t, err)

	repo.FailGrantTimes = 2

	result, err := svc.Grant(ctx, "discord-1", domain.Item{ID: 1, Name: "sword", PointValue: 25})
	require.NoError(t, err)
	assert.True(t, result.Granted)
	assert.Equal(t, 3, repo.GrantCalls, "two transient failures plus the successful attempt")
}

func TestGrantSurfacesExhaustedRetries(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.RegisterPlayer(ctx, "discord-1", "Runa")
	require.NoError(t, err)

	repo.FailGrantTimes = MaxGrantAttempts

	_, err = svc.Grant(ctx, "discord-1", domain.Item{ID: 1, Name: "sword", PointValue: 25})
	require.Error(t, err, "a failed grant must never silently report success")
	assert.ErrorIs(t, err, domain.ErrTransactionFailed)

	player, err := svc.GetPlayer(ctx, "discord-1")
	require.NoError(t, err)
	assert.Zero(t, player.Score, "no partial score on failed grants")
}

func TestGrantUnknownPlayer(t *testing.T) {
	svc := newTestService(NewFakeRepository())

	_, err := svc.Grant(context.Background(), "ghost", domain.Item{ID: 1, Name: "sword"})
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGetPlayerNotFound(t *testing.T) {
	svc := newTestService(NewFakeRepository())

	_, err := svc.GetPlayer(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestGetOwnedItems(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.RegisterPlayer(ctx, "discord-1", "Runa")
	require.NoError(t, err)

	sword := domain.Item{Name: "sword", PointValue: 25}
	sword.ID, err = repo.InsertItem(ctx, &sword)
	require.NoError(t, err)
	gem := domain.Item{Name: "gem", PointValue: 10}
	gem.ID, err = repo.InsertItem(ctx, &gem)
	require.NoError(t, err)

	_, err = svc.Grant(ctx, "discord-1", sword)
	require.NoError(t, err)
	_, err = svc.Grant(ctx, "discord-1", gem)
	require.NoError(t, err)

	owned, err := svc.GetOwnedItems(ctx, "discord-1")
	require.NoError(t, err)
	require.Len(t, owned, 2)
	assert.Equal(t, "sword", owned[0].Name)
	assert.Equal(t, "gem", owned[1].Name)
}

func TestGetOwnedItemsEmpty(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)

	owned, err := svc.GetOwnedItems(context.Background(), "discord-1")
	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestGetLeaderboardOrdering(t *testing.T) {
	repo := NewFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	for _, p := range []struct {
		id    string
		item  domain.Item
	}{
		{"discord-1", domain.Item{ID: 1, Name: "sword", PointValue: 25}},
		{"discord-2", domain.Item{ID: 2, Name: "crown", PointValue: 100}},
		{"discord-3", domain.Item{ID: 3, Name: "potion", PointValue: 5}},
	} {
		_, err := svc.RegisterPlayer(ctx, p.id, p.id)
		require.NoError(t, err)
		_, err = svc.Grant(ctx, p.id, p.item)
		require.NoError(t, err)
	}

	board, err := svc.GetLeaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "discord-2", board[0].DiscordID)
	assert.Equal(t, 100, board[0].Score)
	assert.Equal(t, "discord-1", board[1].DiscordID)
}
