package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"roomatch/internal/domain/entity"
	"roomatch/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLikeRepositoryRecordIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryLikeRepository(store)
	ctx := context.Background()

	first, err := repo.Record(ctx, "user-1", "listing-1")
	require.NoError(t, err)

	second, err := repo.Record(ctx, "user-1", "listing-1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	likes, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, likes, 1)
}

func TestMemoryLikeRepositoryRemove(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryLikeRepository(store)
	ctx := context.Background()

	_, err := repo.Record(ctx, "user-1", "listing-1")
	require.NoError(t, err)

	removed, err := repo.Remove(ctx, "user-1", "listing-1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Remove(ctx, "user-1", "listing-1")
	require.NoError(t, err)
	assert.False(t, removed)

	exists, err := repo.Exists(ctx, "user-1", "listing-1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryMatchRepositoryFindOrCreate(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryMatchRepository(store)
	ctx := context.Background()

	match, created, err := repo.FindOrCreate(ctx, "user-b", "user-a", "listing-1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, [2]string{"user-a", "user-b"}, match.Users)

	// Reversed argument order resolves to the same match.
	again, created, err := repo.FindOrCreate(ctx, "user-a", "user-b", "listing-1")
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, match.ID, again.ID)
}

func TestMemoryMatchRepositoryFindOrCreateConcurrent(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryMatchRepository(store)
	ctx := context.Background()

	const workers = 16

	var wg sync.WaitGroup
	createdCount := make(chan bool, workers)
	ids := make(chan string, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, b := "user-a", "user-b"
			if i%2 == 0 {
				a, b = b, a
			}
			match, created, err := repo.FindOrCreate(ctx, a, b, "listing-1")
			if !assert.NoError(t, err) {
				return
			}
			createdCount <- created
			ids <- match.ID
		}(i)
	}
	wg.Wait()
	close(createdCount)
	close(ids)

	var creations int
	for created := range createdCount {
		if created {
			creations++
		}
	}
	assert.Equal(t, 1, creations, "exactly one caller should create the match")

	var firstID string
	for id := range ids {
		if firstID == "" {
			firstID = id
		}
		assert.Equal(t, firstID, id)
	}
}

func TestMemoryMatchRepositoryFindByPairAbsent(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryMatchRepository(store)

	match, err := repo.FindByPair(context.Background(), "user-a", "user-b", "listing-1")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestMemoryMessageRepositoryAppendBumpsLastMessageAt(t *testing.T) {
	store := NewMemoryStore()
	matchRepo := NewMemoryMatchRepository(store)
	messageRepo := NewMemoryMessageRepository(store)
	ctx := context.Background()

	match, _, err := matchRepo.FindOrCreate(ctx, "user-a", "user-b", "listing-1")
	require.NoError(t, err)

	later := match.LastMessageAt.Add(time.Minute)
	err = messageRepo.Append(ctx, &entity.Message{
		ID:        uuid.New().String(),
		MatchID:   match.ID,
		SenderID:  "user-a",
		Content:   "hey!",
		CreatedAt: later,
	})
	require.NoError(t, err)

	updated, err := matchRepo.GetByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, later, updated.LastMessageAt)

	// A message with an older timestamp must not move the cursor back.
	err = messageRepo.Append(ctx, &entity.Message{
		ID:        uuid.New().String(),
		MatchID:   match.ID,
		SenderID:  "user-b",
		Content:   "delayed",
		CreatedAt: later.Add(-30 * time.Second),
	})
	require.NoError(t, err)

	updated, err = matchRepo.GetByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, later, updated.LastMessageAt)
}

func TestMemoryMessageRepositoryAppendUnknownMatch(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryMessageRepository(store)

	err := repo.Append(context.Background(), &entity.Message{
		ID:        uuid.New().String(),
		MatchID:   "missing",
		SenderID:  "user-a",
		Content:   "hello",
		CreatedAt: time.Now(),
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestMemoryListingRepositoryListActiveByOwnerOrder(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryListingRepository(store)
	ctx := context.Background()

	base := time.Now()
	for _, l := range []entity.Listing{
		{ID: "l2", OwnerID: "owner", IsActive: true, CreatedAt: base.Add(time.Hour)},
		{ID: "l1", OwnerID: "owner", IsActive: true, CreatedAt: base},
		{ID: "l3", OwnerID: "owner", IsActive: false, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "l4", OwnerID: "someone-else", IsActive: true, CreatedAt: base},
	} {
		listing := l
		require.NoError(t, repo.Create(ctx, &listing))
	}

	listings, err := repo.ListActiveByOwner(ctx, "owner")
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "l1", listings[0].ID)
	assert.Equal(t, "l2", listings[1].ID)
}

func TestMemoryUserRepositoryGetByEmail(t *testing.T) {
	store := NewMemoryStore()
	repo := NewMemoryUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Email: "sam@example.com"}))

	user, err := repo.GetByEmail(ctx, "sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
