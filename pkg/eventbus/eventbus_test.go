package eventbus

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testEvent struct{ payload string }

func (testEvent) Type() string { return "test.event" }

func TestMemory_PublishReachesSubscribers(t *testing.T) {
	bus := NewMemory()
	var got []string
	bus.Subscribe("test.event", func(_ context.Context, e Event) {
		got = append(got, e.(testEvent).payload)
	})

	err := bus.Publish(context.Background(), testEvent{payload: "one"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"one"}, got)
}

func TestMemory_NoSubscribers(t *testing.T) {
	bus := NewMemory()
	assert.NoError(t, bus.Publish(context.Background(), testEvent{}))
}

func TestMemory_OnlyMatchingTypeInvoked(t *testing.T) {
	bus := NewMemory()
	called := false
	bus.Subscribe("other.event", func(context.Context, Event) { called = true })

	_ = bus.Publish(context.Background(), testEvent{})
	assert.False(t, called)
}
