package analysis

import (
	"sort"

	"lottotrack/models"
)

// Rank pairs every stat with its frequency rank, gap rank and total score,
// returned in selection order.
//
// Ranks follow SQL RANK() semantics: 1 plus the number of strictly better
// entries, so ties share a rank. A higher frequency ranks better, as does a
// larger gap. Numbers that never appeared rank after every number with a gap.
func Rank(stats []models.NumberStat) []models.RankedCandidate {
	candidates := make([]models.RankedCandidate, 0, len(stats))

	withGap := 0
	for _, s := range stats {
		if s.LastDrawGap != nil {
			withGap++
		}
	}

	for _, s := range stats {
		frequencyRank := 1
		gapRank := 1
		for _, other := range stats {
			if other.Frequency > s.Frequency {
				frequencyRank++
			}
			if s.LastDrawGap != nil && other.LastDrawGap != nil && *other.LastDrawGap > *s.LastDrawGap {
				gapRank++
			}
		}
		if s.LastDrawGap == nil {
			gapRank = withGap + 1
		}

		candidates = append(candidates, models.RankedCandidate{
			Number:        s.Number,
			Frequency:     s.Frequency,
			LastDrawGap:   copyGap(s.LastDrawGap),
			FrequencyRank: frequencyRank,
			GapRank:       gapRank,
			TotalScore:    frequencyRank + gapRank,
		})
	}

	sortCandidates(candidates, selectionLess)
	return candidates
}

// selectionLess orders candidates by ascending total score, then by
// descending frequency, then by number.
func selectionLess(a, b models.RankedCandidate) bool {
	if a.TotalScore != b.TotalScore {
		return a.TotalScore < b.TotalScore
	}
	if a.Frequency != b.Frequency {
		return a.Frequency > b.Frequency
	}
	return a.Number < b.Number
}

func sortCandidates(candidates []models.RankedCandidate, less func(a, b models.RankedCandidate) bool) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return less(candidates[i], candidates[j])
	})
}

func copyGap(gap *int) *int {
	if gap == nil {
		return nil
	}
	g := *gap
	return &g
}
