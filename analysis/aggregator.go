// Package analysis computes per-number statistics from draw history, ranks
// numbers into recommendation candidates and scores arbitrary picks.
//
// Everything here is pure: callers load draws, stats and picks from storage
// and pass them in as plain values.
package analysis

import "lottotrack/models"

// ComputeStats aggregates the full draw history into exactly one NumberStat
// per number, ordered by number.
//
// Frequency counts main-number appearances only (the bonus is excluded).
// The gap is the latest draw number in history minus the latest draw number
// the number appeared in, and stays nil for numbers that never appeared.
// Incomplete draws are ignored.
func ComputeStats(draws []models.Draw) []models.NumberStat {
	var frequency [models.MaxNumber + 1]int
	var lastSeen [models.MaxNumber + 1]int
	var seen [models.MaxNumber + 1]bool
	latest := 0
	hasDraws := false

	for i := range draws {
		draw := &draws[i]
		if !draw.IsComplete() {
			continue
		}
		if !hasDraws || draw.DrawNo > latest {
			latest = draw.DrawNo
			hasDraws = true
		}
		for _, n := range draw.Numbers {
			frequency[n]++
			if !seen[n] || draw.DrawNo > lastSeen[n] {
				lastSeen[n] = draw.DrawNo
				seen[n] = true
			}
		}
	}

	stats := make([]models.NumberStat, 0, models.MaxNumber)
	for n := models.MinNumber; n <= models.MaxNumber; n++ {
		stat := models.NumberStat{
			Number:    n,
			Frequency: frequency[n],
		}
		if seen[n] {
			gap := latest - lastSeen[n]
			stat.LastDrawGap = &gap
		}
		stats = append(stats, stat)
	}

	return stats
}

// Summarize builds a refresh summary: the draw count, the latest draw number
// and the top `limit` numbers by frequency and by gap.
func Summarize(draws []models.Draw, stats []models.NumberStat, limit int) models.StatsSummary {
	summary := models.StatsSummary{DrawCount: len(draws)}
	for i := range draws {
		if draws[i].DrawNo > summary.LatestDrawNo {
			summary.LatestDrawNo = draws[i].DrawNo
		}
	}

	ranked := Rank(stats)

	byFrequency := append([]models.RankedCandidate(nil), ranked...)
	sortCandidates(byFrequency, func(a, b models.RankedCandidate) bool {
		if a.FrequencyRank != b.FrequencyRank {
			return a.FrequencyRank < b.FrequencyRank
		}
		return a.Number < b.Number
	})

	byGap := append([]models.RankedCandidate(nil), ranked...)
	sortCandidates(byGap, func(a, b models.RankedCandidate) bool {
		if a.GapRank != b.GapRank {
			return a.GapRank < b.GapRank
		}
		return a.Number < b.Number
	})

	for i := 0; i < limit && i < len(ranked); i++ {
		summary.Hottest = append(summary.Hottest, byFrequency[i].Number)
		if byGap[i].LastDrawGap != nil {
			summary.MostOverdue = append(summary.MostOverdue, byGap[i].Number)
		}
	}

	return summary
}
