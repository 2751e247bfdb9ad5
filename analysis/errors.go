package analysis

import "errors"

var (
	// ErrInsufficientCandidates is returned when personalisation leaves fewer than 6 numbers
	ErrInsufficientCandidates = errors.New("insufficient recommendation candidates")

	// ErrStatsUnavailable is returned when there is no stat data to work from
	ErrStatsUnavailable = errors.New("number statistics unavailable")
)
