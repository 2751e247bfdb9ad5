package web

import (
	"context"

	"lottotrack/models"

	"github.com/stretchr/testify/mock"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Signup(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type mockLottoService struct{ mock.Mock }

func (m *mockLottoService) GetPaginatedDraws(ctx context.Context, page int) (*models.DrawPage, error) {
	args := m.Called(ctx, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DrawPage), args.Error(1)
}

func (m *mockLottoService) AnalyzePick(ctx context.Context, numbers []int) (*models.AnalysisResult, error) {
	args := m.Called(ctx, numbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalysisResult), args.Error(1)
}

func (m *mockLottoService) SavePick(ctx context.Context, userID int64, numbers []int) (*models.Pick, error) {
	args := m.Called(ctx, userID, numbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pick), args.Error(1)
}

func (m *mockLottoService) ListPicks(ctx context.Context, userID int64) ([]models.Pick, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pick), args.Error(1)
}

func (m *mockLottoService) DeletePick(ctx context.Context, userID, pickID int64) error {
	return m.Called(ctx, userID, pickID).Error(0)
}

type mockStatService struct{ mock.Mock }

func (m *mockStatService) RefreshStatistics(ctx context.Context, triggeredBy string) (*models.StatsSummary, error) {
	args := m.Called(ctx, triggeredBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StatsSummary), args.Error(1)
}

func (m *mockStatService) ListStatistics(ctx context.Context, sortBy, order string) (*models.StatListing, error) {
	args := m.Called(ctx, sortBy, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StatListing), args.Error(1)
}

func (m *mockStatService) CountStatistics(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type mockRecommendService struct{ mock.Mock }

func (m *mockRecommendService) Recommend(ctx context.Context, userID int64) (*models.Recommendation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recommendation), args.Error(1)
}

type stubHealth struct{ err error }

func (s stubHealth) Healthy(context.Context) error { return s.err }
