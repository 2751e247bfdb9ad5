package service

import (
	"context"
	"fmt"

	"lottotrack/analysis"
	"lottotrack/events"
	"lottotrack/models"
	"lottotrack/validation"

	log "github.com/sirupsen/logrus"
)

// lottoService implements the LottoService interface
type lottoService struct {
	uowFactory   UnitOfWorkFactory
	statSources  StatSourceFactory
	drawsPerPage int
}

// NewLottoService creates a new lotto service
func NewLottoService(uowFactory UnitOfWorkFactory, statSources StatSourceFactory, drawsPerPage int) LottoService {
	if drawsPerPage < 1 {
		drawsPerPage = 20
	}
	return &lottoService{
		uowFactory:   uowFactory,
		statSources:  statSources,
		drawsPerPage: drawsPerPage,
	}
}

// GetPaginatedDraws returns one page of draws, newest first. Pages below 1
// are treated as page 1.
func (s *lottoService) GetPaginatedDraws(ctx context.Context, page int) (*models.DrawPage, error) {
	if page < 1 {
		page = 1
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	total, err := uow.DrawRepository().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to count draws: %w", ErrStorageFailure, err)
	}

	draws, err := uow.DrawRepository().GetPage(ctx, (page-1)*s.drawsPerPage, s.drawsPerPage)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load draw page %d: %w", ErrStorageFailure, page, err)
	}
	if draws == nil {
		draws = []models.Draw{}
	}

	return &models.DrawPage{
		Draws:       draws,
		TotalPages:  (total + s.drawsPerPage - 1) / s.drawsPerPage,
		CurrentPage: page,
		TotalCount:  total,
		PerPage:     s.drawsPerPage,
	}, nil
}

// AnalyzePick validates the pick and analyses it against the full history.
// Only validation errors are returned; storage failures produce the
// fallback result.
func (s *lottoService) AnalyzePick(ctx context.Context, numbers []int) (*models.AnalysisResult, error) {
	pick, err := validation.ValidatePick(numbers)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		log.WithError(err).Error("Failed to begin transaction for pick analysis")
		return fallbackResult(), nil
	}
	defer uow.Rollback()

	draws, err := uow.DrawRepository().GetAll(ctx)
	if err != nil {
		log.WithError(err).WithField("pick", pick).Error("Failed to load draws for pick analysis")
		return fallbackResult(), nil
	}

	result := analysis.AnalyzePick(ctx, pick, draws, s.statSources(uow))
	return &result, nil
}

// SavePick validates and stores a sorted pick for the user
func (s *lottoService) SavePick(ctx context.Context, userID int64, numbers []int) (*models.Pick, error) {
	pick, err := validation.ValidatePick(numbers)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	saved, err := uow.PickRepository().Save(ctx, userID, pick)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}

	uow.EventBus().Publish(events.PickSavedEvent{
		UserID:  userID,
		PickID:  saved.ID,
		Numbers: saved.Numbers,
	})

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("%w: failed to commit pick: %w", ErrStorageFailure, err)
	}

	log.WithFields(log.Fields{
		"userID":  userID,
		"pickID":  saved.ID,
		"numbers": saved.Numbers,
	}).Info("Saved pick")

	return saved, nil
}

// ListPicks returns the user's picks, newest first
func (s *lottoService) ListPicks(ctx context.Context, userID int64) ([]models.Pick, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	picks, err := uow.PickRepository().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if picks == nil {
		picks = []models.Pick{}
	}
	return picks, nil
}

// DeletePick removes a pick owned by the user. Picks that do not exist and
// picks owned by someone else both report ErrPickNotFound.
func (s *lottoService) DeletePick(ctx context.Context, userID, pickID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", ErrStorageFailure, err)
	}
	defer uow.Rollback()

	deleted, err := uow.PickRepository().Delete(ctx, pickID, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorageFailure, err)
	}
	if !deleted {
		return fmt.Errorf("%w: pick %d for user %d", ErrPickNotFound, pickID, userID)
	}

	uow.EventBus().Publish(events.PickDeletedEvent{UserID: userID, PickID: pickID})

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("%w: failed to commit pick deletion: %w", ErrStorageFailure, err)
	}
	return nil
}

func fallbackResult() *models.AnalysisResult {
	result := analysis.FallbackResult()
	return &result
}
