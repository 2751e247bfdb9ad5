package analysis

import (
	"fmt"
	"sort"

	"lottotrack/models"
)

// RecommendationSize is the number of candidates in a recommendation
const RecommendationSize = models.NumbersPerDraw

// Recommend removes every number found in the user's previous picks and
// returns the best six remaining candidates in selection order.
// It never returns fewer than six: if filtering leaves too few candidates
// the result is ErrInsufficientCandidates.
func Recommend(ranked []models.RankedCandidate, picks []models.Pick) ([]models.RankedCandidate, error) {
	picked := make(map[int]bool)
	for _, pick := range picks {
		for _, n := range pick.Numbers {
			picked[n] = true
		}
	}

	remaining := make([]models.RankedCandidate, 0, len(ranked))
	for _, c := range ranked {
		if !picked[c.Number] {
			remaining = append(remaining, c)
		}
	}

	if len(remaining) < RecommendationSize {
		return nil, fmt.Errorf("%w: %d left after excluding %d picked numbers",
			ErrInsufficientCandidates, len(remaining), len(picked))
	}

	sortCandidates(remaining, selectionLess)
	return remaining[:RecommendationSize], nil
}

// RecommendedNumbers returns the candidates' numbers sorted ascending
func RecommendedNumbers(candidates []models.RankedCandidate) []int {
	numbers := make([]int, 0, len(candidates))
	for _, c := range candidates {
		numbers = append(numbers, c.Number)
	}
	sort.Ints(numbers)
	return numbers
}
