package analysis

import (
	"fmt"

	"lottotrack/models"
)

const (
	sumVeryLow       = 80
	sumVeryHigh      = 180
	avgFrequencyLow  = 110
	avgFrequencyHigh = 140
)

// Comments evaluates every commentary rule against a sorted pick.
// The frequency rule uses the raw frequencies from stats.
func Comments(pick [6]int, stats []models.NumberStat) []models.Comment {
	byNumber := indexStats(stats)

	sum, odd, low, totalFreq := 0, 0, 0, 0
	for _, n := range pick {
		sum += n
		if n%2 != 0 {
			odd++
		}
		if n <= models.LowNumberMax {
			low++
		}
		totalFreq += byNumber[n].Frequency
	}

	return []models.Comment{
		sumComment(sum),
		oddEvenComment(odd),
		lowHighComment(low),
		consecutiveComment(ConsecutivePairs(pick)),
		frequencyComment(float64(totalFreq) / models.NumbersPerDraw),
	}
}

// ConsecutivePairs counts adjacent integers in a sorted pick
func ConsecutivePairs(sorted [6]int) int {
	pairs := 0
	for i := 0; i < len(sorted)-1; i++ {
		if sorted[i+1] == sorted[i]+1 {
			pairs++
		}
	}
	return pairs
}

func sumComment(sum int) models.Comment {
	switch {
	case sum < sumVeryLow:
		return models.Comment{Topic: "sum", Verdict: "very low",
			Message: fmt.Sprintf("The total sum (%d) is very low. The usual range is 100-170.", sum)}
	case sum > sumVeryHigh:
		return models.Comment{Topic: "sum", Verdict: "very high",
			Message: fmt.Sprintf("The total sum (%d) is very high. The usual range is 100-170.", sum)}
	}
	return models.Comment{Topic: "sum", Verdict: "normal",
		Message: fmt.Sprintf("The total sum (%d) is within the usual range (100-170).", sum)}
}

func oddEvenComment(odd int) models.Comment {
	switch odd {
	case 0, 6:
		return models.Comment{Topic: "odd_even", Verdict: "skewed extreme",
			Message: "Odd and even numbers lean entirely to one side. This combination rarely appears."}
	case 1, 5:
		return models.Comment{Topic: "odd_even", Verdict: "skewed",
			Message: fmt.Sprintf("The odd/even ratio is %s, which is unbalanced.", describeRatio(odd))}
	}
	return models.Comment{Topic: "odd_even", Verdict: "ideal",
		Message: fmt.Sprintf("The odd/even ratio is %s, which is ideal.", describeRatio(odd))}
}

func lowHighComment(low int) models.Comment {
	switch low {
	case 0, 6:
		return models.Comment{Topic: "low_high", Verdict: "skewed extreme",
			Message: "All numbers are low or all are high. This is an extreme pattern."}
	case 1, 5:
		return models.Comment{Topic: "low_high", Verdict: "skewed",
			Message: fmt.Sprintf("The low/high ratio is %s, which is unbalanced.", describeRatio(low))}
	}
	return models.Comment{Topic: "low_high", Verdict: "ideal",
		Message: fmt.Sprintf("The low/high ratio is %s, which is ideal.", describeRatio(low))}
}

func consecutiveComment(pairs int) models.Comment {
	switch {
	case pairs >= 3:
		return models.Comment{Topic: "consecutive", Verdict: "rare pattern",
			Message: "There are three or more consecutive pairs. This is a very rare pattern."}
	case pairs == 0:
		return models.Comment{Topic: "consecutive", Verdict: "unusual",
			Message: "There are no consecutive numbers, which is somewhat unusual."}
	}
	return models.Comment{Topic: "consecutive", Verdict: "natural",
		Message: "One or two consecutive pairs make for a natural pattern."}
}

func frequencyComment(avg float64) models.Comment {
	switch {
	case avg < avgFrequencyLow:
		return models.Comment{Topic: "frequency", Verdict: "low average",
			Message: fmt.Sprintf("The selected numbers have a low average frequency (%.1f).", avg)}
	case avg > avgFrequencyHigh:
		return models.Comment{Topic: "frequency", Verdict: "high average",
			Message: fmt.Sprintf("The selected numbers have a high average frequency (%.1f).", avg)}
	}
	return models.Comment{Topic: "frequency", Verdict: "adequate",
		Message: fmt.Sprintf("The average frequency (%.1f) is in an adequate range.", avg)}
}

func describeRatio(count int) string {
	return fmt.Sprintf("%d:%d", count, models.NumbersPerDraw-count)
}
