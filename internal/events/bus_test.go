package events

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBus() *Bus {
	return NewBus(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPublishSubscribe(t *testing.T) {
	bus := testBus()
	defer bus.Close()

	ch := bus.Subscribe(TypeInstanceCreated, 1)

	bus.Publish(context.Background(), InstanceCreated{
		BaseEvent: NewBaseEvent(TypeInstanceCreated, 42),
		Label:     "Movies",
		Variant:   "radarr",
	})

	e := <-ch
	require.Equal(t, TypeInstanceCreated, e.EventType())
	assert.Equal(t, int64(42), e.EntityID())

	created, ok := e.(InstanceCreated)
	require.True(t, ok)
	assert.Equal(t, "Movies", created.Label)
}

func TestSubscribeFiltersByType(t *testing.T) {
	bus := testBus()
	defer bus.Close()

	ch := bus.Subscribe(TypeInstanceDeleted, 1)

	bus.Publish(context.Background(), InstanceCreated{
		BaseEvent: NewBaseEvent(TypeInstanceCreated, 1),
	})

	select {
	case e := <-ch:
		t.Fatalf("unexpected event %v", e.EventType())
	default:
	}
}

func TestSubscribeAll(t *testing.T) {
	bus := testBus()
	defer bus.Close()

	ch := bus.SubscribeAll(2)

	bus.Publish(context.Background(), InstanceCreated{BaseEvent: NewBaseEvent(TypeInstanceCreated, 1)})
	bus.Publish(context.Background(), SelectionChanged{BaseEvent: NewBaseEvent(TypeSelectionChanged, 2), PreviousID: 1})

	assert.Equal(t, TypeInstanceCreated, (<-ch).EventType())
	assert.Equal(t, TypeSelectionChanged, (<-ch).EventType())
}

func TestPublishDropsWhenFull(t *testing.T) {
	bus := testBus()
	defer bus.Close()

	ch := bus.Subscribe(TypeInstanceUpdated, 1)

	bus.Publish(context.Background(), InstanceUpdated{BaseEvent: NewBaseEvent(TypeInstanceUpdated, 1)})
	bus.Publish(context.Background(), InstanceUpdated{BaseEvent: NewBaseEvent(TypeInstanceUpdated, 2)})

	e := <-ch
	assert.Equal(t, int64(1), e.EntityID())
	select {
	case e := <-ch:
		t.Fatalf("second event should have been dropped, got entity %d", e.EntityID())
	default:
	}
}

func TestUnsubscribe(t *testing.T) {
	bus := testBus()
	defer bus.Close()

	ch := bus.Subscribe(TypeInstanceCreated, 1)
	bus.Unsubscribe(ch)

	_, open := <-ch
	assert.False(t, open)

	bus.Publish(context.Background(), InstanceCreated{BaseEvent: NewBaseEvent(TypeInstanceCreated, 1)})
}

func TestPublishAfterClose(t *testing.T) {
	bus := testBus()

	ch := bus.SubscribeAll(1)
	require.NoError(t, bus.Close())

	_, open := <-ch
	assert.False(t, open)

	bus.Publish(context.Background(), InstanceCreated{BaseEvent: NewBaseEvent(TypeInstanceCreated, 1)})
	require.NoError(t, bus.Close())
}
