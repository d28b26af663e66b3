package usecase

import (
	"context"
	"testing"
	"time"

	"roomatch/internal/adapter/repository"
	"roomatch/internal/domain/entity"
	"roomatch/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListingEnv(t *testing.T) (*ListingUseCase, *repository.MemoryStore) {
	t.Helper()

	store := repository.NewMemoryStore()
	uc := NewListingUseCase(
		repository.NewMemoryListingRepository(store),
		repository.NewMemoryLikeRepository(store),
		repository.NewMemoryUserRepository(store),
	)
	return uc, store
}

func TestCreateAndGetListing(t *testing.T) {
	uc, store := newListingEnv(t)
	ctx := context.Background()

	seedUser(t, store, "alice", "Alice", entity.RoleSeller)

	created, err := uc.Create(ctx, "alice", CreateListingInput{
		Title:        "Bright room near the park",
		Price:        1450,
		Neighborhood: "Greenpoint",
		StartDate:    time.Now(),
		EndDate:      time.Now().AddDate(0, 6, 0),
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	require.NotNil(t, created.Owner)
	assert.Equal(t, "Alice", created.Owner.Name)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestUpdateListingOwnerOnly(t *testing.T) {
	uc, store := newListingEnv(t)
	ctx := context.Background()

	seedUser(t, store, "alice", "Alice", entity.RoleSeller)
	seedUser(t, store, "bob", "Bob", entity.RoleSeller)
	seedListing(t, store, "l1", "alice", time.Now())

	newTitle := "Updated title"
	_, err := uc.Update(ctx, "bob", "l1", UpdateListingInput{Title: &newTitle})
	assert.True(t, errors.Is(err, "NOT_AUTHORIZED"))

	updated, err := uc.Update(ctx, "alice", "l1", UpdateListingInput{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Updated title", updated.Title)
}

func TestDeleteListingOwnerOnly(t *testing.T) {
	uc, store := newListingEnv(t)
	ctx := context.Background()

	seedUser(t, store, "alice", "Alice", entity.RoleSeller)
	seedListing(t, store, "l1", "alice", time.Now())

	err := uc.Delete(ctx, "bob", "l1")
	assert.True(t, errors.Is(err, "NOT_AUTHORIZED"))

	require.NoError(t, uc.Delete(ctx, "alice", "l1"))

	_, err = uc.Get(ctx, "l1")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestBrowseExcludesOwnAndLiked(t *testing.T) {
	uc, store := newListingEnv(t)
	ctx := context.Background()

	base := time.Now()
	seedUser(t, store, "alice", "Alice", entity.RoleBoth)
	seedUser(t, store, "bob", "Bob", entity.RoleBoth)
	seedUser(t, store, "carol", "Carol", entity.RoleBoth)
	seedListing(t, store, "mine", "alice", base)
	seedListing(t, store, "liked", "bob", base.Add(time.Minute))
	seedListing(t, store, "fresh", "carol", base.Add(2*time.Minute))

	likeRepo := repository.NewMemoryLikeRepository(store)
	_, err := likeRepo.Record(ctx, "alice", "liked")
	require.NoError(t, err)

	views, err := uc.Browse(ctx, "alice", "")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "fresh", views[0].ID)
}

func TestBrowseFiltersByOwnerRole(t *testing.T) {
	uc, store := newListingEnv(t)
	ctx := context.Background()

	base := time.Now()
	seedUser(t, store, "viewer", "Val", entity.RoleBoth)
	seedUser(t, store, "seller", "Sam", entity.RoleSeller)
	seedUser(t, store, "dual", "Dana", entity.RoleBoth)
	seedUser(t, store, "buyer", "Billie", entity.RoleBuyer)
	seedListing(t, store, "from-seller", "seller", base)
	seedListing(t, store, "from-dual", "dual", base.Add(time.Minute))
	seedListing(t, store, "from-buyer", "buyer", base.Add(2*time.Minute))

	// "sellers" covers dedicated sellers and dual-role owners.
	views, err := uc.Browse(ctx, "viewer", "sellers")
	require.NoError(t, err)
	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	assert.ElementsMatch(t, []string{"from-seller", "from-dual"}, ids)

	// "buyers" narrows to pure-buyer owners.
	views, err = uc.Browse(ctx, "viewer", "buyers")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "from-buyer", views[0].ID)
}

func TestSavedListingsMostRecentFirst(t *testing.T) {
	uc, store := newListingEnv(t)
	ctx := context.Background()

	base := time.Now()
	seedUser(t, store, "alice", "Alice", entity.RoleBoth)
	seedUser(t, store, "bob", "Bob", entity.RoleBoth)
	seedListing(t, store, "l1", "bob", base)
	seedListing(t, store, "l2", "bob", base.Add(time.Minute))

	likeRepo := repository.NewMemoryLikeRepository(store)
	_, err := likeRepo.Record(ctx, "alice", "l1")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = likeRepo.Record(ctx, "alice", "l2")
	require.NoError(t, err)

	// Buyer-profile likes are not saved listings.
	_, err = likeRepo.Record(ctx, "alice", entity.BuyerRef("someone"))
	require.NoError(t, err)

	views, err := uc.SavedListings(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "l2", views[0].ID)
	assert.Equal(t, "l1", views[1].ID)
}

func TestListBuyersExcludesCaller(t *testing.T) {
	uc, store := newListingEnv(t)
	ctx := context.Background()

	seedUser(t, store, "b1", "Billie", entity.RoleBuyer)
	seedUser(t, store, "b2", "Blake", entity.RoleBuyer)
	seedUser(t, store, "seller", "Sam", entity.RoleSeller)

	buyers, err := uc.ListBuyers(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, buyers, 1)
	assert.Equal(t, "b2", buyers[0].ID)
}
