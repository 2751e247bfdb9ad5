package service

import (
	"context"
	"fmt"

	"lottotrack/analysis"
	"lottotrack/models"

	log "github.com/sirupsen/logrus"
)

// recommendService implements the RecommendService interface
type recommendService struct {
	uowFactory UnitOfWorkFactory
}

// NewRecommendService creates a new recommend service
func NewRecommendService(uowFactory UnitOfWorkFactory) RecommendService {
	return &recommendService{uowFactory: uowFactory}
}

// Recommend ranks the stored stats and removes every number the user has
// picked before. It returns analysis.ErrStatsUnavailable before the first
// refresh and analysis.ErrInsufficientCandidates when too few numbers remain.
func (s *recommendService) Recommend(ctx context.Context, userID int64) (*models.Recommendation, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	stats, err := uow.StatRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load number stats: %w", ErrStorageFailure, err)
	}
	if len(stats) == 0 {
		return nil, analysis.ErrStatsUnavailable
	}

	picks, err := uow.PickRepository().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load picks for user %d: %w", ErrStorageFailure, userID, err)
	}

	candidates, err := analysis.Recommend(analysis.Rank(stats), picks)
	if err != nil {
		log.WithFields(log.Fields{
			"userID": userID,
			"picks":  len(picks),
		}).WithError(err).Info("No recommendation available")
		return nil, err
	}

	return &models.Recommendation{
		Numbers:    analysis.RecommendedNumbers(candidates),
		Candidates: candidates,
	}, nil
}
