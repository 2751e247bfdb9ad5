package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionalBus_FlushDeliversToMainBus(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	received := make(chan StatsRefreshedEvent, 1)
	mainBus.Subscribe(EventTypeStatsRefreshed, func(ctx context.Context, event Event) {
		if refreshed, ok := event.(StatsRefreshedEvent); ok {
			received <- refreshed
		} else {
			t.Errorf("Expected StatsRefreshedEvent, got %T", event)
		}
	})

	sent := StatsRefreshedEvent{
		DrawCount:    1100,
		LatestDrawNo: 1100,
		Hottest:      []int{34, 18, 27},
		MostOverdue:  []int{9, 22, 41},
		RefreshedAt:  time.Date(2024, 1, 6, 21, 0, 0, 0, time.UTC),
	}
	transactionalBus.Publish(sent)
	assert.Equal(t, 1, transactionalBus.Pending())

	transactionalBus.Flush()
	mainBus.Wait()

	select {
	case got := <-received:
		assert.Equal(t, sent, got)
	case <-time.After(2 * time.Second):
		t.Fatal("Event was not received within timeout")
	}
	assert.Zero(t, transactionalBus.Pending())
}

func TestTransactionalBus_DiscardDropsEvents(t *testing.T) {
	mainBus := NewBus()
	transactionalBus := NewTransactionalBus(mainBus)

	var mu sync.Mutex
	calls := 0
	mainBus.Subscribe(EventTypePickSaved, func(ctx context.Context, event Event) {
		mu.Lock()
		calls++
		mu.Unlock()
	})

	transactionalBus.Publish(PickSavedEvent{UserID: 1, PickID: 10, Numbers: [6]int{1, 2, 3, 4, 5, 6}})
	transactionalBus.Discard()
	transactionalBus.Flush()
	mainBus.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, calls)
}

func TestBus_RoutesByEventType(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var got []EventType
	record := func(ctx context.Context, event Event) {
		mu.Lock()
		got = append(got, event.Type())
		mu.Unlock()
	}
	bus.Subscribe(EventTypePickSaved, record)
	bus.Subscribe(EventTypePickDeleted, record)

	ctx := context.Background()
	bus.Emit(ctx, PickSavedEvent{UserID: 1, PickID: 1})
	bus.Emit(ctx, PickDeletedEvent{UserID: 1, PickID: 1})
	bus.Emit(ctx, DrawsImportedEvent{Inserted: 3})
	bus.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.ElementsMatch(t, []EventType{EventTypePickSaved, EventTypePickDeleted}, got)
}

func TestBus_HandlerPanicDoesNotStopOthers(t *testing.T) {
	bus := NewBus()

	done := make(chan struct{}, 1)
	bus.Subscribe(EventTypeDrawsImported, func(ctx context.Context, event Event) {
		panic("notifier down")
	})
	bus.Subscribe(EventTypeDrawsImported, func(ctx context.Context, event Event) {
		done <- struct{}{}
	})

	bus.Emit(context.Background(), DrawsImportedEvent{Source: "draws.csv", Inserted: 2})
	bus.Wait()

	require.Len(t, done, 1)
}
