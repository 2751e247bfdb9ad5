package events

import (
	"time"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeStatsRefreshed EventType = "stats_refreshed"
	EventTypeDrawsImported  EventType = "draws_imported"
	EventTypePickSaved      EventType = "pick_saved"
	EventTypePickDeleted    EventType = "pick_deleted"
	EventTypeUserCreated    EventType = "user_created"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// StatsRefreshedEvent is emitted after the number stats were recomputed
type StatsRefreshedEvent struct {
	DrawCount    int
	LatestDrawNo int
	Hottest      []int
	MostOverdue  []int
	RefreshedAt  time.Time
	TriggeredBy  string
}

func (e StatsRefreshedEvent) Type() EventType {
	return EventTypeStatsRefreshed
}

// DrawsImportedEvent is emitted after a batch of historical draws was stored
type DrawsImportedEvent struct {
	Source       string
	Inserted     int
	Skipped      int
	LatestDrawNo int
}

func (e DrawsImportedEvent) Type() EventType {
	return EventTypeDrawsImported
}

// PickSavedEvent is emitted when a user stores a pick
type PickSavedEvent struct {
	UserID  int64
	PickID  int64
	Numbers [6]int
}

func (e PickSavedEvent) Type() EventType {
	return EventTypePickSaved
}

// PickDeletedEvent is emitted when a user deletes one of their picks
type PickDeletedEvent struct {
	UserID int64
	PickID int64
}

func (e PickDeletedEvent) Type() EventType {
	return EventTypePickDeleted
}

// UserCreatedEvent is emitted when an account signs up
type UserCreatedEvent struct {
	UserID   int64
	Username string
}

func (e UserCreatedEvent) Type() EventType {
	return EventTypeUserCreated
}
