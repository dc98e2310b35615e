package ledger

import (
	"context"
	"sort"
	"sync"

	"github.com/lootgrid/lootgrid/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of the player,
// item and ledger repositories for testing. A single mutex gives it
// the same isolation the real transaction provides, so service-level
// concurrency tests exercise real contention.
//
// IMPORTANT: This fake must remain in the ledger package to avoid
// import cycles; other packages construct it through NewFakeRepository.
type FakeRepository struct {
	mu sync.Mutex

	players   map[string]*domain.Player
	items     map[int]*domain.Item
	ownership map[string]map[int]bool // discordID -> itemID -> acquired
	nextID    int

	// FailGrantTimes injects transient transaction failures: the next N
	// Grant calls fail with domain.ErrTransactionFailed.
	FailGrantTimes int
	// GrantCalls counts Grant invocations, including failed ones.
	GrantCalls int
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		players:   make(map[string]*domain.Player),
		items:     make(map[int]*domain.Item),
		ownership: make(map[string]map[int]bool),
		nextID:    1,
	}
}

func (f *FakeRepository) UpsertPlayer(ctx context.Context, discordID, displayName string) (*domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if p, ok := f.players[discordID]; ok {
		p.DisplayName = displayName
		clone := *p
		return &clone, nil
	}

	p := &domain.Player{DiscordID: discordID, DisplayName: displayName}
	f.players[discordID] = p
	clone := *p
	return &clone, nil
}

func (f *FakeRepository) GetPlayerByDiscordID(ctx context.Context, discordID string) (*domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.players[discordID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *FakeRepository) GetLeaderboard(ctx context.Context, limit int) ([]domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	players := make([]domain.Player, 0, len(f.players))
	for _, p := range f.players {
		players = append(players, *p)
	}
	sort.Slice(players, func(i, j int) bool {
		if players[i].Score != players[j].Score {
			return players[i].Score > players[j].Score
		}
		return players[i].DiscordID < players[j].DiscordID
	})

	if len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

func (f *FakeRepository) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := make([]domain.Item, 0, len(f.items))
	for _, item := range f.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *FakeRepository) GetItemByID(ctx context.Context, id int) (*domain.Item, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	clone := *item
	return &clone, nil
}

func (f *FakeRepository) InsertItem(ctx context.Context, item *domain.Item) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++
	stored := *item
	stored.ID = id
	f.items[id] = &stored
	return id, nil
}

// SeedOwnership plants an ownership row without crediting score.
// acquired=false rows are the legacy state and must behave exactly
// like absent rows.
func (f *FakeRepository) SeedOwnership(discordID string, itemID int, acquired bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.ownership[discordID] == nil {
		f.ownership[discordID] = make(map[int]bool)
	}
	f.ownership[discordID][itemID] = acquired
}

func (f *FakeRepository) Grant(ctx context.Context, discordID string, item domain.Item) (*domain.GrantResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.GrantCalls++
	if f.FailGrantTimes > 0 {
		f.FailGrantTimes--
		return nil, domain.ErrTransactionFailed
	}

	player, ok := f.players[discordID]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}

	if f.ownership[discordID] == nil {
		f.ownership[discordID] = make(map[int]bool)
	}

	result := &domain.GrantResult{
		ItemID:     item.ID,
		ItemName:   item.Name,
		PointValue: item.PointValue,
	}

	if f.ownership[discordID][item.ID] {
		result.Granted = false
		result.TotalScore = player.Score
		return result, nil
	}

	f.ownership[discordID][item.ID] = true
	player.Score += item.PointValue
	result.Granted = true
	result.TotalScore = player.Score
	return result, nil
}

func (f *FakeRepository) GetOwnedItemIDs(ctx context.Context, discordID string) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var ids []int
	for itemID, acquired := range f.ownership[discordID] {
		if acquired {
			ids = append(ids, itemID)
		}
	}
	sort.Ints(ids)
	return ids, nil
}
