package analysis

import (
	"context"
	"fmt"
	"math/rand/v2"

	"lottotrack/models"
)

// StatSource supplies number statistics for pick analysis
type StatSource interface {
	// StatsFor returns stats for the requested numbers. Numbers without
	// stats are omitted rather than reported as an error.
	StatsFor(ctx context.Context, numbers []int) ([]models.NumberStat, error)
}

// StatReader loads every stored number stat
type StatReader interface {
	GetAll(ctx context.Context) ([]models.NumberStat, error)
}

// StoreStatSource reads stats from the stat store
type StoreStatSource struct {
	reader StatReader
}

// NewStoreStatSource creates a stat source backed by a stat store
func NewStoreStatSource(reader StatReader) *StoreStatSource {
	return &StoreStatSource{reader: reader}
}

// StatsFor returns the stored stats for the requested numbers
func (s *StoreStatSource) StatsFor(ctx context.Context, numbers []int) ([]models.NumberStat, error) {
	all, err := s.reader.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load number stats: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrStatsUnavailable
	}

	byNumber := indexStats(all)
	stats := make([]models.NumberStat, 0, len(numbers))
	for _, n := range numbers {
		if stat, ok := byNumber[n]; ok {
			stats = append(stats, stat)
		}
	}
	return stats, nil
}

// Synthetic stat ranges, matching the shape of real history around draw 1100
const (
	SyntheticReferenceDraw = 1100
	syntheticMinFrequency  = 100
	syntheticMaxFrequency  = 150
	syntheticMaxGap        = 30
)

// SyntheticStatSource generates plausible stats without a database.
// Output is deterministic for a given seed and number.
type SyntheticStatSource struct {
	seed uint64
}

// NewSyntheticStatSource creates a synthetic stat source
func NewSyntheticStatSource(seed uint64) *SyntheticStatSource {
	return &SyntheticStatSource{seed: seed}
}

// StatsFor generates a stat for each requested number
func (s *SyntheticStatSource) StatsFor(_ context.Context, numbers []int) ([]models.NumberStat, error) {
	stats := make([]models.NumberStat, 0, len(numbers))
	for _, n := range numbers {
		stats = append(stats, s.statFor(n))
	}
	return stats, nil
}

func (s *SyntheticStatSource) statFor(number int) models.NumberStat {
	rng := rand.New(rand.NewPCG(s.seed, uint64(number)))
	frequency := syntheticMinFrequency + rng.IntN(syntheticMaxFrequency-syntheticMinFrequency+1)
	lastDraw := SyntheticReferenceDraw - (1 + rng.IntN(syntheticMaxGap))
	gap := SyntheticReferenceDraw - lastDraw
	return models.NumberStat{
		Number:      number,
		Frequency:   frequency,
		LastDrawGap: &gap,
	}
}
