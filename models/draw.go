package models

import "time"

const (
	// MinNumber and MaxNumber bound every main and bonus number
	MinNumber = 1
	MaxNumber = 45

	// NumbersPerDraw is the count of main numbers in a draw or pick
	NumbersPerDraw = 6

	// LowNumberMax is the largest number counted as "low" in balance checks
	LowNumberMax = 22
)

// Draw represents one historical lottery result
type Draw struct {
	DrawNo   int       `db:"draw_no" json:"draw_no"`
	DrawDate time.Time `db:"draw_date" json:"draw_date"`
	Numbers  [6]int    `db:"-" json:"numbers"` // n1..n6
	Bonus    int       `db:"bonus" json:"bonus"`
}

// IsComplete returns true if the main numbers are distinct and in range
// and the bonus is in range and not one of the main numbers
func (d *Draw) IsComplete() bool {
	seen := make(map[int]bool, NumbersPerDraw)
	for _, n := range d.Numbers {
		if !InRange(n) || seen[n] {
			return false
		}
		seen[n] = true
	}
	return InRange(d.Bonus) && !seen[d.Bonus]
}

// Contains reports whether n is one of the draw's main numbers
func (d *Draw) Contains(n int) bool {
	for _, m := range d.Numbers {
		if m == n {
			return true
		}
	}
	return false
}

// DrawPage is one page of draws, newest first
type DrawPage struct {
	Draws       []Draw `json:"draws"`
	TotalPages  int    `json:"total_pages"`
	CurrentPage int    `json:"current_page"`
	TotalCount  int    `json:"total_count"`
	PerPage     int    `json:"per_page"`
}

// InRange reports whether n is a valid lottery number
func InRange(n int) bool {
	return n >= MinNumber && n <= MaxNumber
}

// BallColorClass returns the display class for a number's colour band
func BallColorClass(n int) string {
	switch {
	case n >= 1 && n <= 10:
		return "ball-1"
	case n >= 11 && n <= 20:
		return "ball-2"
	case n >= 21 && n <= 30:
		return "ball-3"
	case n >= 31 && n <= 40:
		return "ball-4"
	case n >= 41 && n <= 45:
		return "ball-5"
	}
	return ""
}
