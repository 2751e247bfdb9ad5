package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"lottotrack/events"
	"lottotrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const officialExport = "\ufeff회차,추첨일,1,2,3,4,5,6,보너스\n" +
	"1101,2024.01.06,7,9,24,27,35,36,37\n" +
	"1100,2023-12-30,17,26,29,30,31,43,12\n" +
	"1099,2023-12-23,3,20,28,38,40,43,4\n" +
	"1098,2023-12-16,7,7,14,19,21,34,44\n" +
	"abc,2023-12-09,1,2,3,4,5,6,7\n"

func TestParseDrawCSV(t *testing.T) {
	draws, report, err := parseDrawCSV("1101.csv", strings.NewReader(officialExport))

	require.NoError(t, err)
	require.Len(t, draws, 3)
	assert.Equal(t, 5, report.Read)
	assert.Equal(t, 2, report.Invalid)

	assert.Equal(t, 1101, draws[0].DrawNo)
	assert.Equal(t, time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), draws[0].DrawDate)
	assert.Equal(t, [6]int{7, 9, 24, 27, 35, 36}, draws[0].Numbers)
	assert.Equal(t, 37, draws[0].Bonus)
}

func TestParseDrawCSV_EnglishHeaders(t *testing.T) {
	input := "draw_no,draw_date,n1,n2,n3,n4,n5,n6,bonus\n1,2002-12-07,10,23,29,33,37,40,16\n"

	draws, report, err := parseDrawCSV("first.csv", strings.NewReader(input))

	require.NoError(t, err)
	require.Len(t, draws, 1)
	assert.Zero(t, report.Invalid)
	assert.Equal(t, 16, draws[0].Bonus)
}

func TestParseDrawCSV_MissingColumns(t *testing.T) {
	_, _, err := parseDrawCSV("bad.csv", strings.NewReader("draw_no,n1,n2\n1,2,3\n"))

	require.ErrorIs(t, err, ErrInvalidImport)
	assert.Contains(t, err.Error(), "draw_date")
}

func TestImportService_ImportCSV(t *testing.T) {
	ctx := context.Background()
	m := newServiceMocks(ctx)

	m.draws.On("InsertIgnoringDuplicates", ctx, mock.MatchedBy(func(draws []models.Draw) bool {
		return len(draws) == 3
	})).Return(2, nil)
	m.draws.On("LatestDrawNo", ctx).Return(1101, nil)
	m.publisher.On("Publish", events.DrawsImportedEvent{
		Source:       "1101.csv",
		Inserted:     2,
		Skipped:      3,
		LatestDrawNo: 1101,
	}).Return()
	m.uow.On("Commit").Return(nil)

	report, err := NewImportService(m.factory).ImportCSV(ctx, "1101.csv", strings.NewReader(officialExport))

	require.NoError(t, err)
	assert.Equal(t, 2, report.Inserted)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 2, report.Invalid)
	assert.Equal(t, 1101, report.LatestDrawNo)
	m.assertExpectations(t)
}
