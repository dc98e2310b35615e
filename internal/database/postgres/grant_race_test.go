package postgres_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lootgrid/lootgrid/internal/database/postgres"
	"github.com/lootgrid/lootgrid/internal/domain"
	"github.com/lootgrid/lootgrid/internal/ledger"
)

func TestLedgerRepository_GrantRaceCondition(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	players := postgres.NewPlayerRepository(pool)
	items := postgres.NewItemRepository(pool)
	svc := ledger.NewService(players, items, postgres.NewLedgerRepository(pool))

	_, err := svc.RegisterPlayer(ctx, "discord-1", "race-runner")
	require.NoError(t, err)

	crown := domain.Item{Name: "crown", PointValue: 100, ReferenceImage: "items/crown.png"}
	crown.ID, err = items.InsertItem(ctx, &crown)
	require.NoError(t, err)

	concurrentCalls := 10
	var grantedCount int32
	var duplicateCount int32
	var failures int32

	var wg sync.WaitGroup
	wg.Add(concurrentCalls)

	// Start gate to synchronize goroutines
	start := make(chan struct{})

	for i := 0; i < concurrentCalls; i++ {
		go func() {
			defer wg.Done()
			<-start // Wait for signal

			result, err := svc.Grant(ctx, "discord-1", crown)
			if err != nil {
				atomic.AddInt32(&failures, 1)
				t.Logf("Unexpected error: %v", err)
				return
			}
			if result.Granted {
				atomic.AddInt32(&grantedCount, 1)
			} else {
				atomic.AddInt32(&duplicateCount, 1)
			}
		}()
	}

	// Release the hounds
	close(start)
	wg.Wait()

	t.Logf("Results: Granted=%d, Duplicates=%d, Failures=%d", grantedCount, duplicateCount, failures)

	assert.Equal(t, int32(1), grantedCount, "Exactly one call should win the grant")
	assert.Equal(t, int32(concurrentCalls-1), duplicateCount, "All other calls should observe a duplicate")
	assert.Equal(t, int32(0), failures, "No unexpected failures should occur")

	player, err := svc.GetPlayer(ctx, "discord-1")
	require.NoError(t, err)
	assert.Equal(t, 100, player.Score, "The point value is credited exactly once")
}
