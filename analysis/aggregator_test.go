package analysis

import (
	"testing"

	"lottotrack/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleHistory() []models.Draw {
	return []models.Draw{
		draw(3, 1, 20, 21, 22, 23, 24, 25),
		draw(2, 2, 1, 10, 11, 12, 13, 14),
		draw(1, 7, 1, 2, 3, 4, 5, 6),
	}
}

func TestComputeStats_EmptyHistory(t *testing.T) {
	t.Parallel()

	stats := ComputeStats(nil)

	require.Len(t, stats, models.MaxNumber)
	for i, s := range stats {
		assert.Equal(t, i+1, s.Number)
		assert.Zero(t, s.Frequency)
		assert.Nil(t, s.LastDrawGap)
	}
}

func TestComputeStats_FrequencyAndGap(t *testing.T) {
	t.Parallel()

	stats := ComputeStats(sampleHistory())
	require.Len(t, stats, models.MaxNumber)

	byNumber := indexStats(stats)

	// Appeared in draws 1 and 2, latest draw is 3
	assert.Equal(t, 2, byNumber[1].Frequency)
	require.NotNil(t, byNumber[1].LastDrawGap)
	assert.Equal(t, 1, *byNumber[1].LastDrawGap)

	// Appeared in the latest draw
	assert.Equal(t, 1, byNumber[20].Frequency)
	require.NotNil(t, byNumber[20].LastDrawGap)
	assert.Equal(t, 0, *byNumber[20].LastDrawGap)

	// Only ever drawn as a bonus
	assert.Equal(t, 0, byNumber[7].Frequency)
	assert.Nil(t, byNumber[7].LastDrawGap)

	// Never drawn
	assert.Equal(t, 0, byNumber[45].Frequency)
	assert.Nil(t, byNumber[45].LastDrawGap)
}

func TestComputeStats_Invariants(t *testing.T) {
	t.Parallel()

	var history []models.Draw
	for no := 1; no <= 200; no++ {
		start := (no*7)%40 + 1
		history = append(history, draw(no, (start+5)%45+1, start, start+1, start+2, start+3, start+4, start+5))
	}

	stats := ComputeStats(history)
	require.Len(t, stats, models.MaxNumber)

	total := 0
	for _, s := range stats {
		assert.GreaterOrEqual(t, s.Frequency, 0)
		if s.LastDrawGap != nil {
			assert.GreaterOrEqual(t, *s.LastDrawGap, 0)
		}
		total += s.Frequency
	}
	assert.Equal(t, 6*len(history), total)
}

func TestComputeStats_IgnoresIncompleteDraws(t *testing.T) {
	t.Parallel()

	history := append(sampleHistory(),
		draw(9, 7, 1, 1, 2, 3, 4, 5),   // duplicate main number
		draw(10, 46, 1, 2, 3, 4, 5, 6), // bonus out of range
	)

	assert.Equal(t, ComputeStats(sampleHistory()), ComputeStats(history))
}

func TestComputeStats_Idempotent(t *testing.T) {
	t.Parallel()

	history := sampleHistory()
	assert.Equal(t, ComputeStats(history), ComputeStats(history))
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	history := sampleHistory()
	summary := Summarize(history, ComputeStats(history), 3)

	assert.Equal(t, 3, summary.DrawCount)
	assert.Equal(t, 3, summary.LatestDrawNo)
	assert.Equal(t, []int{1, 2, 3}, summary.Hottest)
	assert.Equal(t, []int{2, 3, 4}, summary.MostOverdue)
}
