package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gashapp/gash-backend/internal/events"
)

func setupBus(t *testing.T) *events.RedisBus {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(func() { mr.Close() })

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return events.NewRedisBus(client)
}

func TestPublishSubscribeRoundTrip(t *testing.T) {
	ctx := context.Background()
	bus := setupBus(t)

	sub, err := bus.Subscribe(ctx, events.MatchTopic("m1"))
	require.NoError(t, err)
	defer sub.Close()

	payload, err := events.EncodeInsert(events.MessagePayload{
		ID:      "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		MatchID: "m1",
		Content: "hello",
		Seq:     7,
	})
	require.NoError(t, err)
	require.NoError(t, bus.Publish(ctx, events.MatchTopic("m1"), payload))

	select {
	case raw := <-sub.C():
		msg, err := events.DecodeMessage(raw)
		require.NoError(t, err)
		assert.Equal(t, "m1", msg.MatchID)
		assert.Equal(t, "hello", msg.Content)
		assert.Equal(t, uint64(7), msg.Seq)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published payload")
	}
}

func TestSubscribeIsTopicScoped(t *testing.T) {
	ctx := context.Background()
	bus := setupBus(t)

	sub, err := bus.Subscribe(ctx, events.MatchTopic("m1"))
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, bus.Publish(ctx, events.MatchTopic("other"), []byte("{}")))

	select {
	case raw := <-sub.C():
		t.Fatalf("received payload from foreign topic: %s", raw)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscriptionClose(t *testing.T) {
	ctx := context.Background()
	bus := setupBus(t)

	sub, err := bus.Subscribe(ctx, events.UserMatchesTopic("elena"))
	require.NoError(t, err)

	require.NoError(t, sub.Close())
	assert.NoError(t, sub.Close()) // close twice is fine

	select {
	case _, ok := <-sub.C():
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after Close")
	}
}

func TestSubscribeContextCancel(t *testing.T) {
	bus := setupBus(t)

	ctx, cancel := context.WithCancel(context.Background())
	sub, err := bus.Subscribe(ctx, events.MatchTopic("m1"))
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-sub.C():
		assert.False(t, ok, "channel should be closed")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after context cancel")
	}
}

func TestEnvelopeDecodeMatch(t *testing.T) {
	created := time.Now().UTC().Truncate(time.Millisecond)
	payload, err := events.EncodeInsert(events.MatchPayload{
		ID:        "match-1",
		UserA:     "elena",
		UserB:     "marcus",
		CreatedAt: created,
	})
	require.NoError(t, err)

	m, err := events.DecodeMatch(payload)
	require.NoError(t, err)
	assert.Equal(t, "elena", m.UserA)
	assert.Equal(t, "marcus", m.UserB)
	assert.True(t, m.CreatedAt.Equal(created))
}
