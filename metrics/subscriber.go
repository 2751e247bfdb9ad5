package metrics

import (
	"context"

	"lottotrack/events"
)

// Subscribe registers handlers that keep the domain counters in step with
// the events flushed by committed units of work
func Subscribe(bus *events.Bus) {
	bus.Subscribe(events.EventTypeStatsRefreshed, onStatsRefreshed)
	bus.Subscribe(events.EventTypeDrawsImported, onDrawsImported)
	bus.Subscribe(events.EventTypePickSaved, func(context.Context, events.Event) {
		PicksSavedTotal.Inc()
	})
	bus.Subscribe(events.EventTypePickDeleted, func(context.Context, events.Event) {
		PicksDeletedTotal.Inc()
	})
	bus.Subscribe(events.EventTypeUserCreated, func(context.Context, events.Event) {
		UsersCreatedTotal.Inc()
	})
}

func onStatsRefreshed(_ context.Context, event events.Event) {
	e, ok := event.(events.StatsRefreshedEvent)
	if !ok {
		return
	}

	triggeredBy := e.TriggeredBy
	if triggeredBy == "" {
		triggeredBy = "unknown"
	}
	StatsRefreshesTotal.WithLabelValues(triggeredBy).Inc()
	StatsDrawCount.Set(float64(e.DrawCount))
	if !e.RefreshedAt.IsZero() {
		StatsLastRefresh.Set(float64(e.RefreshedAt.Unix()))
	}
}

func onDrawsImported(_ context.Context, event events.Event) {
	e, ok := event.(events.DrawsImportedEvent)
	if !ok {
		return
	}

	DrawsImportedTotal.WithLabelValues("inserted").Add(float64(e.Inserted))
	DrawsImportedTotal.WithLabelValues("skipped").Add(float64(e.Skipped))
	if e.LatestDrawNo > 0 {
		LatestDrawNo.Set(float64(e.LatestDrawNo))
	}
}
