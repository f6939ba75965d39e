package eventbus

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// TestBus_Publish_Integration requires a running Redis. We skip if
// connection fails, matching the teacher's Redis integration tests.
func TestBus_Publish_Integration(t *testing.T) {
	bus := New("localhost:6379", "receipts-test")
	ctx := context.Background()
	if _, err := bus.client.Ping(ctx).Result(); err != nil {
		t.Skip("skipping eventbus integration test: redis not available")
	}
	defer bus.Close()

	sub := bus.client.Subscribe(ctx, "receipts-test")
	defer sub.Close()
	if _, err := sub.Receive(ctx); err != nil {
		t.Fatalf("subscribe failed: %v", err)
	}

	leaf := make([]byte, 32)
	leaf[0] = 0xAB
	receipt := []byte(`{"leaf_index":3}`)

	errCh := make(chan error, 1)
	go func() { errCh <- bus.Publish(ctx, leaf, receipt) }()

	select {
	case msg := <-sub.Channel():
		if !strings.HasPrefix(msg.Payload, "ab00") {
			t.Errorf("expected payload to start with hex(leaf_hash), got %q", msg.Payload)
		}
		if !strings.Contains(msg.Payload, string(receipt)) {
			t.Errorf("expected payload to contain the receipt JSON, got %q", msg.Payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for published message")
	}

	if err := <-errCh; err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
}

// TestBus_Publish_Timeout verifies a pre-cancelled context surfaces
// ErrTimeout, matching spec.md §7's EventBus.Timeout kind.
func TestBus_Publish_Timeout(t *testing.T) {
	bus := New("127.0.0.1:1", "receipts-test")
	defer bus.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	err := bus.Publish(ctx, make([]byte, 32), []byte(`{}`))
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected ErrTimeout when the context is already expired, got %v", err)
	}
}
