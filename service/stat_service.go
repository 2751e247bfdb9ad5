package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"lottotrack/analysis"
	"lottotrack/events"
	"lottotrack/models"

	log "github.com/sirupsen/logrus"
)

// Statistics table sort keys and orders
const (
	SortByNumber      = "number"
	SortByFrequency   = "frequency"
	SortByLastDrawGap = "last_draw_gap"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// summaryLimit is the length of the hottest and most overdue lists in a refresh summary
const summaryLimit = 6

// statService implements the StatService interface
type statService struct {
	uowFactory UnitOfWorkFactory
	now        func() time.Time
}

// NewStatService creates a new stat service
func NewStatService(uowFactory UnitOfWorkFactory) StatService {
	return &statService{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// RefreshStatistics recomputes every number stat from the full draw history
// and replaces the stored set in one transaction. On any failure the
// previous stats stay in place.
func (s *statService) RefreshStatistics(ctx context.Context, triggeredBy string) (*models.StatsSummary, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	draws, err := uow.DrawRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load draws: %w", ErrStorageFailure, err)
	}

	stats := analysis.ComputeStats(draws)
	if err := uow.StatRepository().ReplaceAll(ctx, stats); err != nil {
		return nil, fmt.Errorf("%w: failed to store number stats: %w", ErrStorageFailure, err)
	}

	summary := analysis.Summarize(draws, stats, summaryLimit)
	summary.RefreshedAt = s.now().UTC()

	uow.EventBus().Publish(events.StatsRefreshedEvent{
		DrawCount:    summary.DrawCount,
		LatestDrawNo: summary.LatestDrawNo,
		Hottest:      summary.Hottest,
		MostOverdue:  summary.MostOverdue,
		RefreshedAt:  summary.RefreshedAt,
		TriggeredBy:  triggeredBy,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit stat refresh: %w", ErrStorageFailure, err)
	}

	log.WithFields(log.Fields{
		"draws":        summary.DrawCount,
		"latestDrawNo": summary.LatestDrawNo,
		"triggeredBy":  triggeredBy,
	}).Info("Refreshed number statistics")

	return &summary, nil
}

// ListStatistics returns the stored stats sorted by the requested column.
// An unknown sort key or order falls back to frequency descending and the
// listing carries a warning. Never-seen gaps sort as -1.
func (s *statService) ListStatistics(ctx context.Context, sortBy, order string) (*models.StatListing, error) {
	listing := &models.StatListing{
		SortBy: strings.ToLower(strings.TrimSpace(sortBy)),
		Order:  strings.ToLower(strings.TrimSpace(order)),
	}
	if listing.SortBy == "" {
		listing.SortBy = SortByFrequency
	}
	if listing.Order == "" {
		listing.Order = OrderDesc
	}

	validSort := listing.SortBy == SortByNumber || listing.SortBy == SortByFrequency || listing.SortBy == SortByLastDrawGap
	validOrder := listing.Order == OrderAsc || listing.Order == OrderDesc
	if !validSort || !validOrder {
		listing.Warning = fmt.Sprintf("Unsupported sort %q %q, showing %s %s instead",
			sortBy, order, SortByFrequency, OrderDesc)
		listing.SortBy = SortByFrequency
		listing.Order = OrderDesc
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	stats, err := uow.StatRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load number stats: %w", ErrStorageFailure, err)
	}

	sortStats(stats, listing.SortBy, listing.Order == OrderDesc)
	listing.Stats = stats
	if listing.Stats == nil {
		listing.Stats = []models.NumberStat{}
	}

	return listing, nil
}

// CountStatistics returns the number of stored stat rows
func (s *statService) CountStatistics(ctx context.Context) (int, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	count, err := uow.StatRepository().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count number stats: %w", ErrStorageFailure, err)
	}
	return count, nil
}

func sortStats(stats []models.NumberStat, sortBy string, desc bool) {
	key := func(s models.NumberStat) int {
		switch sortBy {
		case SortByNumber:
			return s.Number
		case SortByLastDrawGap:
			return s.GapOr(-1)
		}
		return s.Frequency
	}

	sort.SliceStable(stats, func(i, j int) bool {
		a, b := key(stats[i]), key(stats[j])
		if a == b {
			return stats[i].Number < stats[j].Number
		}
		if desc {
			return a > b
		}
		return a < b
	})
}
