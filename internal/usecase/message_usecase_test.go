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

func newMessageEnv(t *testing.T) (*MessageUseCase, *MatchUseCase, *recordingNotifier, *repository.MemoryStore) {
	t.Helper()

	store := repository.NewMemoryStore()
	notifier := &recordingNotifier{}

	matchUC := NewMatchUseCase(
		repository.NewMemoryLikeRepository(store),
		repository.NewMemoryMatchRepository(store),
		repository.NewMemoryListingRepository(store),
		repository.NewMemoryUserRepository(store),
		notifier,
		PolicyAlways,
	)
	messageUC := NewMessageUseCase(
		repository.NewMemoryMatchRepository(store),
		repository.NewMemoryMessageRepository(store),
		repository.NewMemoryUserRepository(store),
		notifier,
	)
	return messageUC, matchUC, notifier, store
}

func formMatch(t *testing.T, matchUC *MatchUseCase, store *repository.MemoryStore) *entity.MatchView {
	t.Helper()
	ctx := context.Background()

	seedUser(t, store, "alice", "Alice", entity.RoleBoth)
	seedUser(t, store, "bob", "Bob", entity.RoleBoth)
	seedListing(t, store, "l1", "alice", time.Now())

	result, err := matchUC.LikeListing(ctx, "bob", "l1")
	require.NoError(t, err)
	require.True(t, result.Matched)
	return result.Match
}

func TestPostMessageAppendsAndNotifies(t *testing.T) {
	messageUC, matchUC, notifier, store := newMessageEnv(t)
	ctx := context.Background()

	match := formMatch(t, matchUC, store)

	view, err := messageUC.PostMessage(ctx, match.ID, "alice", "  hey, is the room still free?  ")
	require.NoError(t, err)
	assert.Equal(t, "hey, is the room still free?", view.Content)
	require.NotNil(t, view.Sender)
	assert.Equal(t, "Alice", view.Sender.Name)

	notifier.mu.Lock()
	count := notifier.messageCount
	notifier.mu.Unlock()
	assert.Equal(t, 1, count)
}

func TestPostMessageRejectsThirdParty(t *testing.T) {
	messageUC, matchUC, _, store := newMessageEnv(t)
	ctx := context.Background()

	match := formMatch(t, matchUC, store)
	seedUser(t, store, "mallory", "Mallory", entity.RoleBoth)

	_, err := messageUC.PostMessage(ctx, match.ID, "mallory", "let me in")
	assert.True(t, errors.Is(err, "NOT_AUTHORIZED"))

	messages, err := messageUC.ListMessages(ctx, match.ID, "alice")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestPostMessageRejectsEmptyContent(t *testing.T) {
	messageUC, matchUC, _, store := newMessageEnv(t)
	ctx := context.Background()

	match := formMatch(t, matchUC, store)

	_, err := messageUC.PostMessage(ctx, match.ID, "alice", "   \t\n ")
	assert.True(t, errors.Is(err, "EMPTY_CONTENT"))
}

func TestPostMessageUnknownMatch(t *testing.T) {
	messageUC, _, _, _ := newMessageEnv(t)

	_, err := messageUC.PostMessage(context.Background(), "missing", "alice", "hello")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestPostMessageAdvancesLastMessageAt(t *testing.T) {
	messageUC, matchUC, _, store := newMessageEnv(t)
	ctx := context.Background()

	match := formMatch(t, matchUC, store)
	matchRepo := repository.NewMemoryMatchRepository(store)

	var previous time.Time
	for _, content := range []string{"first", "second", "third"} {
		_, err := messageUC.PostMessage(ctx, match.ID, "bob", content)
		require.NoError(t, err)

		current, err := matchRepo.GetByID(ctx, match.ID)
		require.NoError(t, err)
		assert.False(t, current.LastMessageAt.Before(previous), "lastMessageAt moved backwards")
		previous = current.LastMessageAt
	}

	messages, err := messageUC.ListMessages(ctx, match.ID, "alice")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "third", messages[2].Content)
}

func TestListMessagesRestrictedToParties(t *testing.T) {
	messageUC, matchUC, _, store := newMessageEnv(t)
	ctx := context.Background()

	match := formMatch(t, matchUC, store)
	seedUser(t, store, "mallory", "Mallory", entity.RoleBoth)

	_, err := messageUC.PostMessage(ctx, match.ID, "bob", "hi alice")
	require.NoError(t, err)

	_, err = messageUC.ListMessages(ctx, match.ID, "mallory")
	assert.True(t, errors.Is(err, "NOT_AUTHORIZED"))
}

func TestMarkMessageRead(t *testing.T) {
	messageUC, matchUC, _, store := newMessageEnv(t)
	ctx := context.Background()

	match := formMatch(t, matchUC, store)

	view, err := messageUC.PostMessage(ctx, match.ID, "bob", "hi alice")
	require.NoError(t, err)
	assert.False(t, view.Read)

	require.NoError(t, messageUC.MarkMessageRead(ctx, match.ID, view.Message.ID, "alice"))

	messages, err := messageUC.ListMessages(ctx, match.ID, "alice")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)

	seedUser(t, store, "mallory", "Mallory", entity.RoleBoth)
	err = messageUC.MarkMessageRead(ctx, match.ID, view.Message.ID, "mallory")
	assert.True(t, errors.Is(err, "NOT_AUTHORIZED"))
}
