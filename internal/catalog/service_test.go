package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GameCatalog_Go/internal/access"
	"github.com/osse101/GameCatalog_Go/internal/domain"
	"github.com/osse101/GameCatalog_Go/internal/inventory"
	"github.com/osse101/GameCatalog_Go/internal/item"
)

var (
	player = domain.Actor{UserID: 7, Username: "ragnar", Role: domain.RolePlayer}
	admin  = domain.Actor{UserID: 1, Username: "odin", Role: domain.RoleAdmin}
)

func newTestService(t *testing.T) (Service, *item.FakeRepository) {
	t.Helper()
	itemRepo := item.NewFakeRepository()
	itemSvc := item.NewService(itemRepo)
	invSvc := inventory.NewService(inventory.NewFakeRepository(), itemRepo)
	return NewService(itemSvc, invSvc, access.NewPolicy()), itemRepo
}

func seedItems(repo *item.FakeRepository, n int) {
	for i := 1; i <= n; i++ {
		repo.Seed(domain.Item{ID: i, Name: "Item", Price: i, LevelReq: 1})
	}
}

func TestListItemsEnvelope(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedItems(repo, 25)

	page, err := svc.ListItems(ctx, domain.ItemFilter{}, 2, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
	assert.Equal(t, 25, page.Meta.TotalItems)
	assert.Equal(t, 10, page.Meta.ItemsPerPage)
	assert.Equal(t, 3, page.Meta.TotalPages)
	assert.Equal(t, 2, page.Meta.CurrentPage)
}

func TestListItemsNormalizesPage(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	seedItems(repo, 3)

	// Page 0 and negative pages normalize to the first page
	for _, rawPage := range []int{0, -5} {
		page, err := svc.ListItems(ctx, domain.ItemFilter{}, rawPage, 10)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Meta.CurrentPage)
		assert.Len(t, page.Items, 3)
	}
}

func TestListItemsEmptyPageSerializesAsSlice(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	page, err := svc.ListItems(ctx, domain.ItemFilter{}, 1, 10)
	require.NoError(t, err)
	assert.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Zero(t, page.Meta.TotalPages)
}

func TestSearchItemsTotalCountsFullSet(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	for i := 1; i <= 15; i++ {
		repo.Seed(domain.Item{ID: i, Name: "Elder Wand", Price: 1, LevelReq: 1})
	}

	// The last partial page still reports the full match count
	page, err := svc.SearchItems(ctx, "wand", 2, 10)
	require.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 15, page.Meta.TotalItems)
	assert.Equal(t, 2, page.Meta.TotalPages)
}

func TestSearchItemsBlankQuery(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SearchItems(context.Background(), "  ", 1, 10)
	assert.ErrorIs(t, err, domain.ErrEmptySearchQuery)
}

func TestInventoryAccessControl(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	repo.Seed(domain.Item{ID: 1, Name: "Rusty Sword", Price: 10, LevelReq: 1})

	_, err := svc.AddInventoryItem(ctx, player, player.UserID, 1, 2)
	require.NoError(t, err)

	tests := []struct {
		name    string
		actor   domain.Actor
		userID  int
		wantErr error
	}{
		{name: "owner reads own inventory", actor: player, userID: player.UserID},
		{name: "admin reads any inventory", actor: admin, userID: player.UserID},
		{name: "other player is forbidden", actor: domain.Actor{UserID: 8, Role: domain.RolePlayer}, userID: player.UserID, wantErr: domain.ErrForbidden},
		{name: "unknown role fails closed on foreign inventory", actor: domain.Actor{UserID: 9}, userID: player.UserID, wantErr: domain.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := svc.GetInventory(ctx, tt.actor, tt.userID, 1, 10)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, page.Meta.TotalItems)
		})
	}
}

func TestInventoryWriteAccessControl(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	repo.Seed(domain.Item{ID: 1, Name: "Rusty Sword", Price: 10, LevelReq: 1})

	stranger := domain.Actor{UserID: 8, Role: domain.RolePlayer}

	_, err := svc.AddInventoryItem(ctx, stranger, player.UserID, 1, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.SetInventoryQuantity(ctx, stranger, player.UserID, 1, 5)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	assert.ErrorIs(t, svc.RemoveInventoryItem(ctx, stranger, player.UserID, 1), domain.ErrForbidden)

	// Admins may mutate any inventory
	_, err = svc.AddInventoryItem(ctx, admin, player.UserID, 1, 1)
	require.NoError(t, err)
}

func TestInventoryEntryExpandsItem(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	repo.Seed(domain.Item{ID: 1, Name: "Rusty Sword", Price: 10, LevelReq: 1})

	_, err := svc.AddInventoryItem(ctx, player, player.UserID, 1, 2)
	require.NoError(t, err)

	page, err := svc.GetInventory(ctx, player, player.UserID, 1, 10)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, 1, page.Items[0].ItemID)
	assert.Equal(t, 2, page.Items[0].Quantity)
}
