package analysis

import (
	"context"
	"math"
	"sort"

	"lottotrack/models"

	log "github.com/sirupsen/logrus"
)

// Score weights for the per-number pick score
const (
	FrequencyWeight = 0.7
	GapWeight       = 0.3
)

// MatchTier classifies a pick against one draw. The first rule that matches
// wins: 6 main, 5 main plus bonus, 5 main, 4 main, 3 main, otherwise none.
func MatchTier(pick [6]int, draw models.Draw) int {
	matches := 0
	hasBonus := false
	for _, n := range pick {
		if draw.Contains(n) {
			matches++
		}
		if n == draw.Bonus {
			hasBonus = true
		}
	}

	switch {
	case matches == 6:
		return models.TierJackpot
	case matches == 5 && hasBonus:
		return models.TierSecond
	case matches == 5:
		return models.TierThird
	case matches == 4:
		return models.TierFourth
	case matches == 3:
		return models.TierFifth
	}
	return models.TierNone
}

// TallyTiers classifies the pick against every draw in history.
// Incomplete draws count towards TotalDraws and Skipped but no tier.
func TallyTiers(pick [6]int, draws []models.Draw) models.TierTally {
	tally := models.TierTally{TotalDraws: len(draws)}
	for i := range draws {
		if !draws[i].IsComplete() {
			tally.Skipped++
			continue
		}
		tally.Counts[MatchTier(pick, draws[i])]++
	}
	return tally
}

// ScorePick scores each number of the pick from its frequency and gap,
// normalised against the other five numbers:
//
//	score = (0.7 * freq/maxFreq + 0.3 * (1 - gap/maxGap)) * 100
//
// Missing stats and never-seen gaps count as 0.
func ScorePick(pick [6]int, stats []models.NumberStat) []models.ScoredNumber {
	byNumber := indexStats(stats)

	details := make([]models.ScoredNumber, 0, len(pick))
	maxFreq, maxGap := 0, 0
	for _, n := range pick {
		s := byNumber[n]
		detail := models.ScoredNumber{
			Number:      n,
			Frequency:   s.Frequency,
			LastDrawGap: s.GapOr(0),
		}
		maxFreq = max(maxFreq, detail.Frequency)
		maxGap = max(maxGap, detail.LastDrawGap)
		details = append(details, detail)
	}
	if maxFreq <= 0 {
		maxFreq = 1
	}
	if maxGap <= 0 {
		maxGap = 1
	}

	for i := range details {
		freqNorm := float64(details[i].Frequency) / float64(maxFreq)
		gapNorm := 1 - float64(details[i].LastDrawGap)/float64(maxGap)
		details[i].Score = round2((FrequencyWeight*freqNorm + GapWeight*gapNorm) * 100)
	}

	return details
}

// AnalyzePick runs the tier tally, scoring and commentary for a validated
// pick. Stat lookup failures degrade to zero frequency and gap. Any other
// failure produces FallbackResult instead of escaping to the caller.
func AnalyzePick(ctx context.Context, pick [6]int, draws []models.Draw, source StatSource) (result models.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"pick":  pick,
				"panic": r,
			}).Error("Pick analysis failed")
			result = FallbackResult()
		}
	}()

	sorted := SortPick(pick)
	stats := lookupStats(ctx, source, sorted)

	result = models.AnalysisResult{
		Numbers:  sorted,
		Tiers:    TallyTiers(sorted, draws),
		Details:  ScorePick(sorted, stats),
		Comments: Comments(sorted, stats),
	}

	total := 0.0
	for _, d := range result.Details {
		total += d.Score
	}
	result.TotalScore = round2(total)

	return result
}

// FallbackResult is returned when analysis cannot complete
func FallbackResult() models.AnalysisResult {
	return models.AnalysisResult{
		Details: []models.ScoredNumber{},
		Comments: []models.Comment{{
			Topic:   "error",
			Verdict: "failed",
			Message: "An error occurred while analysing the numbers.",
		}},
		Failed: true,
	}
}

// SortPick returns the pick sorted ascending
func SortPick(pick [6]int) [6]int {
	sorted := pick
	sort.Ints(sorted[:])
	return sorted
}

func lookupStats(ctx context.Context, source StatSource, pick [6]int) []models.NumberStat {
	if source == nil {
		return nil
	}
	stats, err := source.StatsFor(ctx, pick[:])
	if err != nil {
		log.WithError(err).WithField("pick", pick).Warn("Number stats unavailable, scoring with zero values")
		return nil
	}
	return stats
}

func indexStats(stats []models.NumberStat) map[int]models.NumberStat {
	byNumber := make(map[int]models.NumberStat, len(stats))
	for _, s := range stats {
		byNumber[s.Number] = s
	}
	return byNumber
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
