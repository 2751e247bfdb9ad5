package service

import (
	"context"
	"io"

	"lottotrack/events"
	"lottotrack/models"
)

// DrawRepository defines the interface for historical draw access
type DrawRepository interface {
	// GetAll returns every stored draw, newest first
	GetAll(ctx context.Context) ([]models.Draw, error)

	// GetPage returns up to limit draws, newest first, skipping offset
	GetPage(ctx context.Context, offset, limit int) ([]models.Draw, error)

	// Count returns the number of stored draws
	Count(ctx context.Context) (int, error)

	// InsertIgnoringDuplicates stores draws, skipping draw numbers that already
	// exist, and returns how many were inserted
	InsertIgnoringDuplicates(ctx context.Context, draws []models.Draw) (int, error)

	// LatestDrawNo returns the highest stored draw number, 0 if there are none
	LatestDrawNo(ctx context.Context) (int, error)
}

// StatRepository defines the interface for the derived number stats
type StatRepository interface {
	// ReplaceAll swaps the full stat set for the given one
	ReplaceAll(ctx context.Context, stats []models.NumberStat) error

	// GetAll returns every stored stat ordered by number
	GetAll(ctx context.Context) ([]models.NumberStat, error)

	// Count returns the number of stored stat rows
	Count(ctx context.Context) (int, error)
}

// PickRepository defines the interface for user pick access
type PickRepository interface {
	// Save stores a sorted pick for the user
	Save(ctx context.Context, userID int64, numbers [6]int) (*models.Pick, error)

	// ListByUser returns the user's picks, newest first
	ListByUser(ctx context.Context, userID int64) ([]models.Pick, error)

	// Delete removes the pick if the user owns it, reporting whether a row was removed
	Delete(ctx context.Context, pickID, userID int64) (bool, error)
}

// UserRepository defines the interface for account access
type UserRepository interface {
	// Create stores a new active account
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)

	// GetByUsername returns the account or nil if it does not exist
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// GetByID returns the account or nil if it does not exist
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Publish(event events.Event)
}

// UnitOfWork defines the interface for transactional repository operations
type UnitOfWork interface {
	// Begin starts a new transaction
	Begin(ctx context.Context) error

	// Commit commits the transaction and flushes pending events
	Commit() error

	// Rollback rolls back the transaction and discards pending events
	Rollback() error

	DrawRepository() DrawRepository
	StatRepository() StatRepository
	PickRepository() PickRepository
	UserRepository() UserRepository
	EventBus() EventPublisher
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork instances
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// StatService defines the interface for number statistics
type StatService interface {
	// RefreshStatistics recomputes every number stat from the draw history
	RefreshStatistics(ctx context.Context, triggeredBy string) (*models.StatsSummary, error)

	// ListStatistics returns the stat table sorted by the given column and order
	ListStatistics(ctx context.Context, sortBy, order string) (*models.StatListing, error)

	// CountStatistics returns the number of stored stat rows
	CountStatistics(ctx context.Context) (int, error)
}

// RecommendService defines the interface for personalised recommendations
type RecommendService interface {
	// Recommend returns six numbers the user has not picked before
	Recommend(ctx context.Context, userID int64) (*models.Recommendation, error)
}

// LottoService defines the interface for draw browsing and picks
type LottoService interface {
	// GetPaginatedDraws returns one page of draws, newest first
	GetPaginatedDraws(ctx context.Context, page int) (*models.DrawPage, error)

	// AnalyzePick validates and analyses a pick against the draw history
	AnalyzePick(ctx context.Context, numbers []int) (*models.AnalysisResult, error)

	// SavePick validates and stores a pick for the user
	SavePick(ctx context.Context, userID int64, numbers []int) (*models.Pick, error)

	// ListPicks returns the user's picks, newest first
	ListPicks(ctx context.Context, userID int64) ([]models.Pick, error)

	// DeletePick removes one of the user's picks
	DeletePick(ctx context.Context, userID, pickID int64) error
}

// UserService defines the interface for account operations
type UserService interface {
	// Signup creates an account with a hashed password
	Signup(ctx context.Context, username, password string) (*models.User, error)

	// Login checks credentials and returns the account
	Login(ctx context.Context, username, password string) (*models.User, error)

	// GetUser returns the account or ErrUserNotFound
	GetUser(ctx context.Context, userID int64) (*models.User, error)
}

// ImportService defines the interface for loading historical draws
type ImportService interface {
	// ImportCSV reads draws from CSV and stores the new ones
	ImportCSV(ctx context.Context, source string, r io.Reader) (*models.ImportReport, error)
}
