package repository

import (
	"context"
	"testing"
	"time"

	"lottotrack/events"
	"lottotrack/models"
	"lottotrack/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatRepository_ReplaceAll(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	factory := NewUnitOfWorkFactory(testDB.DB, events.NewBus())
	reader := NewStatRepository(testDB.DB)
	ctx := context.Background()

	replace := func(stats []models.NumberStat) error {
		uow := factory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}
		defer uow.Rollback()

		if err := uow.StatRepository().ReplaceAll(ctx, stats); err != nil {
			return err
		}
		return uow.Commit()
	}

	t.Run("first refresh", func(t *testing.T) {
		require.NoError(t, replace(testutil.CreateTestStats(45)))

		stats, err := reader.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, stats, models.MaxNumber)

		assert.Equal(t, 1, stats[0].Number)
		assert.Equal(t, 101, stats[0].Frequency)
		require.NotNil(t, stats[0].LastDrawGap)
		assert.Equal(t, 1, *stats[0].LastDrawGap)
		assert.Nil(t, stats[44].LastDrawGap)
	})

	t.Run("second refresh replaces every row", func(t *testing.T) {
		next := testutil.CreateTestStats()
		for i := range next {
			next[i].Frequency = 7
		}
		require.NoError(t, replace(next))

		count, err := reader.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.MaxNumber, count)

		stats, err := reader.GetAll(ctx)
		require.NoError(t, err)
		for _, s := range stats {
			assert.Equal(t, 7, s.Frequency)
		}
	})

	t.Run("rolled back refresh keeps previous stats", func(t *testing.T) {
		uow := factory.Create()
		require.NoError(t, uow.Begin(ctx))

		require.NoError(t, uow.StatRepository().ReplaceAll(ctx, testutil.CreateTestStats()[:3]))
		require.NoError(t, uow.Rollback())

		count, err := reader.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, models.MaxNumber, count)
	})

	t.Run("invalid stats fail without partial writes", func(t *testing.T) {
		bad := testutil.CreateTestStats()
		bad[10].Number = 99

		err := replace(bad)
		require.Error(t, err)

		stats, err := reader.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, stats, models.MaxNumber)
		assert.Equal(t, 7, stats[10].Frequency)
	})
}

func TestUnitOfWork_EventsFlushOnlyOnCommit(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	bus := events.NewBus()
	received := make(chan events.Event, 2)
	bus.Subscribe(events.EventTypeStatsRefreshed, func(ctx context.Context, event events.Event) {
		received <- event
	})

	factory := NewUnitOfWorkFactory(testDB.DB, bus)
	ctx := context.Background()

	rolledBack := factory.Create()
	require.NoError(t, rolledBack.Begin(ctx))
	rolledBack.EventBus().Publish(events.StatsRefreshedEvent{DrawCount: 1})
	require.NoError(t, rolledBack.Rollback())

	committed := factory.Create()
	require.NoError(t, committed.Begin(ctx))
	committed.EventBus().Publish(events.StatsRefreshedEvent{DrawCount: 2})
	require.NoError(t, committed.Commit())
	require.NoError(t, committed.Rollback())

	bus.Wait()
	require.Len(t, received, 1)

	select {
	case ev := <-received:
		assert.Equal(t, 2, ev.(events.StatsRefreshedEvent).DrawCount)
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}
