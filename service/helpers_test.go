package service

import (
	"context"
	"testing"
	"time"

	"lottotrack/models"
)

type serviceMocks struct {
	factory   *MockUnitOfWorkFactory
	uow       *MockUnitOfWork
	draws     *MockDrawRepository
	stats     *MockStatRepository
	picks     *MockPickRepository
	users     *MockUserRepository
	publisher *MockEventPublisher
}

// newServiceMocks wires a unit of work that begins and rolls back successfully
func newServiceMocks(ctx context.Context) *serviceMocks {
	m := &serviceMocks{
		factory:   new(MockUnitOfWorkFactory),
		uow:       new(MockUnitOfWork),
		draws:     new(MockDrawRepository),
		stats:     new(MockStatRepository),
		picks:     new(MockPickRepository),
		users:     new(MockUserRepository),
		publisher: new(MockEventPublisher),
	}
	m.uow.SetRepositories(m.draws, m.stats, m.picks, m.users, m.publisher)

	m.factory.On("Create").Return(m.uow)
	m.uow.On("Begin", ctx).Return(nil)
	m.uow.On("Rollback").Return(nil)
	return m
}

func (m *serviceMocks) assertExpectations(t *testing.T) {
	t.Helper()
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.draws.AssertExpectations(t)
	m.stats.AssertExpectations(t)
	m.picks.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func testDraw(no, bonus int, numbers ...int) models.Draw {
	d := models.Draw{
		DrawNo:   no,
		DrawDate: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*no),
		Bonus:    bonus,
	}
	copy(d.Numbers[:], numbers)
	return d
}

func gapOf(g int) *int {
	return &g
}

// rankedStats gives lower numbers higher frequency and larger gaps, so the
// ranking order is 1, 2, 3, ...
func rankedStats() []models.NumberStat {
	stats := make([]models.NumberStat, 0, models.MaxNumber)
	for n := models.MinNumber; n <= models.MaxNumber; n++ {
		stats = append(stats, models.NumberStat{Number: n, Frequency: 200 - n, LastDrawGap: gapOf(100 - n)})
	}
	return stats
}
