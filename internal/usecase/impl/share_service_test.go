package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"nearby/internal/domain/entity"
	"nearby/internal/domain/repository"
	"nearby/internal/infra/persistence/memory"
	"nearby/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shareFixture(t *testing.T, store repository.KVStore) (usecase.ShareUsecase, *fakePublisher) {
	t.Helper()

	publisher := &fakePublisher{}
	share := NewShareService(store, publisher, discardLogger())

	// Advance a fake clock per call so timestamps and message ids order
	// deterministically.
	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	share.(*shareService).now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()

		clock = clock.Add(time.Second)

		return clock
	}

	return share, publisher
}

func testVenue() *entity.Venue {
	return &entity.Venue{
		ID:      "cafe-blue-bottle",
		Name:    "Blue Bottle Coffee",
		Address: "66 Mint St",
		Coordinate: entity.Coordinate{
			Latitude:  37.7825,
			Longitude: -122.4077,
		},
	}
}

func TestShareService_Share_RecordsHistoryAndChat(t *testing.T) {
	share, publisher := shareFixture(t, memory.NewKVStore())
	ctx := context.Background()
	recipient := entity.Recipient{ID: "friend-1", Name: "Alex"}

	record, err := share.Share(ctx, testVenue(), recipient)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, "cafe-blue-bottle", record.CafeID)
	assert.Equal(t, "friend-1", record.RecipientID)
	assert.Equal(t, "Alex", record.RecipientName)
	assert.False(t, record.SharedAt.IsZero())

	history, err := share.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, record.ID, history[0].ID)

	messages, err := share.Messages(ctx, "friend-1")
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, entity.SenderMe, messages[0].Sender)
	assert.Equal(t, "Check out Blue Bottle Coffee!", messages[0].Text)
	require.NotNil(t, messages[0].SharedCafe)
	assert.Equal(t, "cafe-blue-bottle", messages[0].SharedCafe.CafeID)
	assert.Equal(t, record.SharedAt, messages[0].Timestamp)

	events := publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, record.ID.String(), events[0].ShareID)
}

func TestShareService_Share_NotIdempotent(t *testing.T) {
	share, _ := shareFixture(t, memory.NewKVStore())
	ctx := context.Background()
	recipient := entity.Recipient{ID: "friend-1", Name: "Alex"}

	first, err := share.Share(ctx, testVenue(), recipient)
	require.NoError(t, err)
	second, err := share.Share(ctx, testVenue(), recipient)
	require.NoError(t, err)

	// Identical arguments still produce two distinct records.
	assert.NotEqual(t, first.ID, second.ID)
	assert.True(t, second.SharedAt.After(first.SharedAt))

	history, err := share.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	messages, err := share.Messages(ctx, "friend-1")
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.NotEqual(t, messages[0].ID, messages[1].ID)
	assert.Less(t, messages[0].ID, messages[1].ID)
}

func TestShareService_Share_AppendsOldestFirst(t *testing.T) {
	share, _ := shareFixture(t, memory.NewKVStore())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		recipient := entity.Recipient{ID: "friend-1", Name: "Alex"}
		_, err := share.Share(ctx, testVenue(), recipient)
		require.NoError(t, err)
	}

	history, err := share.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for i := 1; i < len(history); i++ {
		assert.False(t, history[i].SharedAt.Before(history[i-1].SharedAt))
	}
}

func TestShareService_Share_ValidatesInput(t *testing.T) {
	share, _ := shareFixture(t, memory.NewKVStore())
	ctx := context.Background()

	_, err := share.Share(ctx, nil, entity.Recipient{ID: "friend-1"})
	require.Error(t, err)

	_, err = share.Share(ctx, testVenue(), entity.Recipient{})
	require.Error(t, err)

	history, err := share.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestShareService_Share_ChatWriteFailure(t *testing.T) {
	store := &failingKVStore{
		KVStore: memory.NewKVStore(),
		failKey: repository.ChatMessagesKey("friend-1"),
	}
	share, publisher := shareFixture(t, store)
	ctx := context.Background()

	_, err := share.Share(ctx, testVenue(), entity.Recipient{ID: "friend-1", Name: "Alex"})
	require.Error(t, err)

	// The chat log never got the message and nothing was published.
	messages, err := share.Messages(ctx, "friend-1")
	require.NoError(t, err)
	assert.Empty(t, messages)
	assert.Empty(t, publisher.published())
}

func TestShareService_Share_HistoryWriteFailure(t *testing.T) {
	store := &failingKVStore{
		KVStore: memory.NewKVStore(),
		failKey: repository.ShareHistoryKey,
	}
	share, _ := shareFixture(t, store)
	ctx := context.Background()

	_, err := share.Share(ctx, testVenue(), entity.Recipient{ID: "friend-1", Name: "Alex"})
	require.Error(t, err)

	// The history write failed first, so the chat log stays untouched.
	messages, err := share.Messages(ctx, "friend-1")
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestShareService_Share_PublishFailureDoesNotFailShare(t *testing.T) {
	share, publisher := shareFixture(t, memory.NewKVStore())
	publisher.err = fmt.Errorf("broker unavailable")
	ctx := context.Background()

	record, err := share.Share(ctx, testVenue(), entity.Recipient{ID: "friend-1", Name: "Alex"})
	require.NoError(t, err)
	require.NotNil(t, record)

	history, err := share.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestShareService_Share_ConcurrentSameRecipient(t *testing.T) {
	share, _ := shareFixture(t, memory.NewKVStore())
	ctx := context.Background()
	recipient := entity.Recipient{ID: "friend-1", Name: "Alex"}

	const shares = 10
	var wg sync.WaitGroup
	for i := 0; i < shares; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := share.Share(ctx, testVenue(), recipient)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	history, err := share.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, shares)

	messages, err := share.Messages(ctx, "friend-1")
	require.NoError(t, err)
	assert.Len(t, messages, shares)
}

func TestShareService_Share_ConcurrentDistinctRecipients(t *testing.T) {
	share, _ := shareFixture(t, memory.NewKVStore())
	ctx := context.Background()

	const shares = 8
	var wg sync.WaitGroup
	for i := 0; i < shares; i++ {
		recipient := entity.Recipient{ID: fmt.Sprintf("friend-%d", i), Name: "Friend"}
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := share.Share(ctx, testVenue(), recipient)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	history, err := share.History(ctx)
	require.NoError(t, err)
	assert.Len(t, history, shares)

	for i := 0; i < shares; i++ {
		messages, err := share.Messages(ctx, fmt.Sprintf("friend-%d", i))
		require.NoError(t, err)
		assert.Len(t, messages, 1)
	}
}

func TestShareService_History_EmptyLog(t *testing.T) {
	share, _ := shareFixture(t, memory.NewKVStore())
	ctx := context.Background()

	history, err := share.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)

	messages, err := share.Messages(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, messages)
}
