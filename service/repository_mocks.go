package service

import (
	"context"

	"lottotrack/events"
	"lottotrack/models"

	"github.com/stretchr/testify/mock"
)

// MockDrawRepository is a mock implementation of DrawRepository
type MockDrawRepository struct {
	mock.Mock
}

func (m *MockDrawRepository) GetAll(ctx context.Context) ([]models.Draw, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Draw), args.Error(1)
}

func (m *MockDrawRepository) GetPage(ctx context.Context, offset, limit int) ([]models.Draw, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Draw), args.Error(1)
}

func (m *MockDrawRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockDrawRepository) InsertIgnoringDuplicates(ctx context.Context, draws []models.Draw) (int, error) {
	args := m.Called(ctx, draws)
	return args.Int(0), args.Error(1)
}

func (m *MockDrawRepository) LatestDrawNo(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockStatRepository is a mock implementation of StatRepository
type MockStatRepository struct {
	mock.Mock
}

func (m *MockStatRepository) ReplaceAll(ctx context.Context, stats []models.NumberStat) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *MockStatRepository) GetAll(ctx context.Context) ([]models.NumberStat, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.NumberStat), args.Error(1)
}

func (m *MockStatRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockPickRepository is a mock implementation of PickRepository
type MockPickRepository struct {
	mock.Mock
}

func (m *MockPickRepository) Save(ctx context.Context, userID int64, numbers [6]int) (*models.Pick, error) {
	args := m.Called(ctx, userID, numbers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Pick), args.Error(1)
}

func (m *MockPickRepository) ListByUser(ctx context.Context, userID int64) ([]models.Pick, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Pick), args.Error(1)
}

func (m *MockPickRepository) Delete(ctx context.Context, pickID, userID int64) (bool, error) {
	args := m.Called(ctx, pickID, userID)
	return args.Bool(0), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	args := m.Called(ctx, username, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(event events.Event) {
	m.Called(event)
}

// MockUnitOfWork is a mock implementation of UnitOfWork. Repository getters
// return whatever SetRepositories configured.
type MockUnitOfWork struct {
	mock.Mock
	drawRepo  DrawRepository
	statRepo  StatRepository
	pickRepo  PickRepository
	userRepo  UserRepository
	publisher EventPublisher
}

// SetRepositories configures the repositories handed out by the unit of work
func (m *MockUnitOfWork) SetRepositories(draws DrawRepository, stats StatRepository, picks PickRepository, users UserRepository, publisher EventPublisher) {
	m.drawRepo = draws
	m.statRepo = stats
	m.pickRepo = picks
	m.userRepo = users
	m.publisher = publisher
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) DrawRepository() DrawRepository { return m.drawRepo }
func (m *MockUnitOfWork) StatRepository() StatRepository { return m.statRepo }
func (m *MockUnitOfWork) PickRepository() PickRepository { return m.pickRepo }
func (m *MockUnitOfWork) UserRepository() UserRepository { return m.userRepo }
func (m *MockUnitOfWork) EventBus() EventPublisher       { return m.publisher }

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
