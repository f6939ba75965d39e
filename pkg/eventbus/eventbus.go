// Package eventbus publishes committed receipts to a Redis Pub/Sub
// channel, the final step of the commit sequence (spec.md §4.4 step 6).
//
// Client construction follows the teacher's kernel.NewRedisLimiterStore
// idiom; the publish call shape (context-scoped, one channel per topic,
// structured key/value pair) follows the CatsMeow492-nochat.io messaging
// package's publishMessage.
package eventbus

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// sendTimeout is the deadline spec.md §5 assigns to the event-bus
// publish step; exceeding it is a per-submission EventBus.Timeout error.
const sendTimeout = 5 * time.Second

// ErrTimeout and ErrSendFailed match the EventBus.* taxonomy in
// spec.md §7. By the time either is returned, the receipt is already
// persisted in the store — the caller must not treat this as a reason
// to retry persistence.
var (
	ErrTimeout    = errors.New("eventbus: publish deadline exceeded")
	ErrSendFailed = errors.New("eventbus: publish failed")
)

// Bus publishes receipts to a single configured topic over Redis
// Pub/Sub. A Bus is a shared, immutable reference safe for concurrent
// use by multiple batcher-issued commit sequences (spec.md §5).
type Bus struct {
	client *redis.Client
	topic  string
}

// New constructs a Bus from a Redis address and the topic to publish
// on. It does not dial — go-redis connects lazily on first use.
func New(addr, topic string) *Bus {
	client := redis.NewClient(&redis.Options{Addr: addr})
	return &Bus{client: client, topic: topic}
}

// Close releases the underlying Redis connection pool.
func (b *Bus) Close() error {
	return b.client.Close()
}

// Publish sends `{hash, receipt}` on the configured topic, per spec.md
// §6: key = lowercase-hex(leafHash), value = hex(leafHash) ":" receiptJSON.
// Redis Pub/Sub carries no notion of message keys, so the key is folded
// into the published payload alongside the value, preserving the
// "key:value" wire shape a consuming subscriber expects.
func (b *Bus) Publish(ctx context.Context, leafHash []byte, receiptJSON []byte) error {
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	key := hex.EncodeToString(leafHash)
	payload := fmt.Sprintf("%s:%s", key, receiptJSON)

	err := b.client.Publish(ctx, b.topic, payload).Err()
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: topic %q", ErrTimeout, b.topic)
		}
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
