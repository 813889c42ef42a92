package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GameCatalog_Go/internal/domain"
)

func intPtr(i int) *int { return &i }
func strPtr(s string) *string { return &s }

func TestListAllRootOnly(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Seed(domain.Category{ID: 1, Name: "Weapons"})

	created, err := svc.Create(ctx, "Swords", "", intPtr(1))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	_, err = svc.Create(ctx, "Longswords", "", intPtr(created.ID))
	require.NoError(t, err)

	roots, err := svc.ListAll(ctx, true)
	require.NoError(t, err)
	require.Len(t, roots, 1)
	assert.Equal(t, "Weapons", roots[0].Name)

	// Two levels of eager expansion beneath the root, no deeper
	require.Len(t, roots[0].Subcategories, 1)
	assert.Equal(t, "Swords", roots[0].Subcategories[0].Name)
	require.Len(t, roots[0].Subcategories[0].Subcategories, 1)
	assert.Equal(t, "Longswords", roots[0].Subcategories[0].Subcategories[0].Name)
	assert.Empty(t, roots[0].Subcategories[0].Subcategories[0].Subcategories)
}

func TestListAllFlat(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Seed(domain.Category{ID: 1, Name: "Weapons"})
	repo.Seed(domain.Category{ID: 2, Name: "Swords", ParentID: intPtr(1)})

	all, err := svc.ListAll(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	for _, c := range all {
		assert.Empty(t, c.Subcategories, "flat list must not expand hierarchy")
	}
}

func TestGetByIDExpandsChildren(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Seed(domain.Category{ID: 1, Name: "Armor"})
	repo.Seed(domain.Category{ID: 2, Name: "Helmets", ParentID: intPtr(1)})

	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got.Subcategories, 1)
	assert.Equal(t, "Helmets", got.Subcategories[0].Name)

	_, err = svc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateDuplicateName(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Weapons", "", nil)
	require.NoError(t, err)

	_, err = svc.Create(ctx, "Weapons", "again", nil)
	assert.ErrorIs(t, err, domain.ErrCategoryNameTaken)
}

func TestUpdateSelfParent(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Seed(domain.Category{ID: 1, Name: "Weapons"})

	_, err := svc.Update(ctx, 1, domain.CategoryUpdate{ParentID: intPtr(1)})
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)

	// Rejected update leaves the category unmodified
	got, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got.ParentID)
}

func TestUpdateIndirectCycle(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	// 1 <- 2 <- 3; reparenting 1 under 3 closes a cycle
	repo.Seed(domain.Category{ID: 1, Name: "Weapons"})
	repo.Seed(domain.Category{ID: 2, Name: "Swords", ParentID: intPtr(1)})
	repo.Seed(domain.Category{ID: 3, Name: "Longswords", ParentID: intPtr(2)})

	_, err := svc.Update(ctx, 1, domain.CategoryUpdate{ParentID: intPtr(3)})
	assert.ErrorIs(t, err, domain.ErrCategoryCycle)
}

func TestUpdateNotFound(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), 42, domain.CategoryUpdate{Name: strPtr("Gone")})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDeleteLeavesChildrenDangling(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Seed(domain.Category{ID: 1, Name: "Weapons"})
	repo.Seed(domain.Category{ID: 2, Name: "Swords", ParentID: intPtr(1)})

	require.NoError(t, svc.Delete(ctx, 1))

	// No cascade, no reparent: the child keeps its stale parent reference
	child, err := svc.GetByID(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, child.ParentID)
	assert.Equal(t, 1, *child.ParentID)

	assert.ErrorIs(t, svc.Delete(ctx, 1), domain.ErrCategoryNotFound)
}

func TestUpdateReparentUnderDanglingParentAllowed(t *testing.T) {
	repo := NewFakeRepository()
	svc := NewService(repo)
	ctx := context.Background()

	repo.Seed(domain.Category{ID: 2, Name: "Swords", ParentID: intPtr(1)}) // parent 1 never existed
	repo.Seed(domain.Category{ID: 3, Name: "Shields"})

	// Ancestor walk hits the dangling reference and stops without error
	_, err := svc.Update(ctx, 3, domain.CategoryUpdate{ParentID: intPtr(2)})
	assert.NoError(t, err)
}
