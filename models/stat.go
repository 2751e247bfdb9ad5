package models

import "time"

// NumberStat holds the aggregated history of a single number
type NumberStat struct {
	Number      int  `db:"number" json:"number"`
	Frequency   int  `db:"frequency" json:"frequency"`
	LastDrawGap *int `db:"last_draw_gap" json:"last_draw_gap"` // NULL if the number never appeared
}

// GapOr returns the gap, or def if the number never appeared
func (s NumberStat) GapOr(def int) int {
	if s.LastDrawGap == nil {
		return def
	}
	return *s.LastDrawGap
}

// RankedCandidate is a number with its recommendation ranks.
// Lower TotalScore is a stronger candidate.
type RankedCandidate struct {
	Number        int  `json:"number"`
	Frequency     int  `json:"frequency"`
	LastDrawGap   *int `json:"last_draw_gap"`
	FrequencyRank int  `json:"frequency_rank"`
	GapRank       int  `json:"gap_rank"`
	TotalScore    int  `json:"total_score"`
}

// StatsSummary describes the result of a statistics refresh
type StatsSummary struct {
	DrawCount    int       `json:"draw_count"`
	LatestDrawNo int       `json:"latest_draw_no"`
	Hottest      []int     `json:"hottest"`
	MostOverdue  []int     `json:"most_overdue"`
	RefreshedAt  time.Time `json:"refreshed_at"`
}

// Recommendation is the personalised pick suggested to a user
type Recommendation struct {
	Numbers    []int             `json:"numbers"`
	Candidates []RankedCandidate `json:"candidates"`
}

// StatListing is the sorted statistics table
type StatListing struct {
	Stats   []NumberStat `json:"stats"`
	SortBy  string       `json:"sort_by"`
	Order   string       `json:"order"`
	Warning string       `json:"warning,omitempty"`
}

// ImportReport summarises a draw import
type ImportReport struct {
	Source       string `json:"source"`
	Read         int    `json:"read"`
	Inserted     int    `json:"inserted"`
	Invalid      int    `json:"invalid"`
	Duplicates   int    `json:"duplicates"`
	LatestDrawNo int    `json:"latest_draw_no"`
}
