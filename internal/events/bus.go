package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Bus is the publish/subscribe channel used for real-time fan-out. It is
// deliberately storage-agnostic: callers see topics and opaque payloads,
// delivery is at-least-once and consumers de-duplicate by payload id.
type Bus interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	// Subscribe registers a listener for a topic. The returned subscription
	// is live until Close is called or ctx is done, whichever comes first.
	Subscribe(ctx context.Context, topic string) (*Subscription, error)
}

// MatchTopic is the per-conversation topic carrying message INSERT events.
func MatchTopic(matchID string) string {
	return fmt.Sprintf("chat:%s", matchID)
}

// UserMatchesTopic carries "new match" events for one user.
func UserMatchesTopic(userID string) string {
	return fmt.Sprintf("user:%s:matches", userID)
}

// Subscription is a scoped handle on one topic. Closing it unregisters the
// listener and closes C; both the subscriber context ending and an explicit
// Close release the underlying resources.
type Subscription struct {
	out  <-chan []byte
	ps   *redis.PubSub
	once sync.Once
	err  error
}

// C returns the payload channel. It is closed when the subscription ends.
func (s *Subscription) C() <-chan []byte {
	return s.out
}

// Close unregisters the subscription. Safe to call more than once.
func (s *Subscription) Close() error {
	s.once.Do(func() { s.err = s.ps.Close() })
	return s.err
}

// RedisBus implements Bus on Redis channels. One Redis connection is held
// per subscription, released on Close.
type RedisBus struct {
	client *redis.Client
}

func NewRedisBus(client *redis.Client) *RedisBus {
	return &RedisBus{client: client}
}

func (b *RedisBus) Publish(ctx context.Context, topic string, payload []byte) error {
	return b.client.Publish(ctx, topic, payload).Err()
}

func (b *RedisBus) Subscribe(ctx context.Context, topic string) (*Subscription, error) {
	ps := b.client.Subscribe(ctx, topic)

	// Confirm the subscription before handing it out, so a publish issued
	// right after Subscribe returns cannot be missed.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, err
	}

	out := make(chan []byte, 16)
	sub := &Subscription{out: out, ps: ps}
	go func() {
		defer close(out)
		src := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-src:
				if !ok {
					return
				}
				select {
				case out <- []byte(m.Payload):
				case <-ctx.Done():
					_ = sub.Close()
					return
				}
			}
		}
	}()

	return sub, nil
}
