package events

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestBusDeliversToSubscriber(t *testing.T) {
	bus := NewBus(zap.NewNop())
	ch, cancel := bus.Subscribe(TopicCommandAudit)
	defer cancel()

	bus.Publish(TopicCommandAudit, "hello")

	select {
	case got := <-ch:
		if got != "hello" {
			t.Fatalf("received %v, want hello", got)
		}
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}
}

func TestBusFansOut(t *testing.T) {
	bus := NewBus(zap.NewNop())
	a, cancelA := bus.Subscribe(TopicCommandAudit)
	defer cancelA()
	b, cancelB := bus.Subscribe(TopicCommandAudit)
	defer cancelB()

	bus.Publish(TopicCommandAudit, 42)

	for _, ch := range []<-chan any{a, b} {
		select {
		case got := <-ch:
			if got != 42 {
				t.Fatalf("received %v, want 42", got)
			}
		case <-time.After(time.Second):
			t.Fatal("a subscriber missed the message")
		}
	}
}

func TestBusTopicsAreIsolated(t *testing.T) {
	bus := NewBus(zap.NewNop())
	ch, cancel := bus.Subscribe(TopicCommandAudit)
	defer cancel()

	bus.Publish("task:expired", "unrelated")

	select {
	case got := <-ch:
		t.Fatalf("received %v from another topic", got)
	default:
	}
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus(zap.NewNop())
	ch, cancel := bus.Subscribe(TopicCommandAudit)
	cancel()

	// The channel is closed on unsubscribe and publishes no longer
	// reach it.
	bus.Publish(TopicCommandAudit, "late")
	if got, ok := <-ch; ok {
		t.Fatalf("received %v after unsubscribe", got)
	}
}

func TestBusPublishNeverBlocks(t *testing.T) {
	bus := NewBus(zap.NewNop())
	_, cancel := bus.Subscribe(TopicCommandAudit)
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < defaultBufferSize*2; i++ {
			bus.Publish(TopicCommandAudit, i)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
}
