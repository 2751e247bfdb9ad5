package models

// Prize tiers. TierNone covers every outcome with two or fewer main matches.
const (
	TierNone    = 0
	TierJackpot = 1
	TierSecond  = 2 // 5 main + bonus
	TierThird   = 3 // 5 main
	TierFourth  = 4 // 4 main
	TierFifth   = 5 // 3 main
	TierCount   = 6
)

// TierTally counts historical outcomes per prize tier for one pick
type TierTally struct {
	TotalDraws int            `json:"total_draws"`
	Skipped    int            `json:"skipped"` // incomplete draws not classified
	Counts     [TierCount]int `json:"counts"`  // indexed by tier
}

// Count returns the tally for a tier, 0 for unknown tiers
func (t TierTally) Count(tier int) int {
	if tier < 0 || tier >= TierCount {
		return 0
	}
	return t.Counts[tier]
}

// ScoredNumber is the per-number score breakdown of an analysed pick
type ScoredNumber struct {
	Number      int     `json:"number"`
	Frequency   int     `json:"frequency"`
	LastDrawGap int     `json:"last_draw_gap"`
	Score       float64 `json:"total_score"`
}

// Comment is one line of qualitative commentary on a pick
type Comment struct {
	Topic   string `json:"topic"`   // sum, odd_even, low_high, consecutive, frequency, error
	Verdict string `json:"verdict"` // e.g. "normal", "skewed", "ideal"
	Message string `json:"message"`
}

// AnalysisResult is the full analysis of one pick
type AnalysisResult struct {
	Numbers    [6]int         `json:"numbers"`
	Tiers      TierTally      `json:"history"`
	Details    []ScoredNumber `json:"detailed_stats"`
	Comments   []Comment      `json:"comments"`
	TotalScore float64        `json:"total_score"`
	Failed     bool           `json:"failed"`
}
