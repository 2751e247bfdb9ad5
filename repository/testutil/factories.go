package testutil

import (
	"time"

	"lottotrack/models"
)

// CreateTestDraw creates a draw dated one week after the previous draw number
func CreateTestDraw(drawNo int, bonus int, numbers ...int) models.Draw {
	d := models.Draw{
		DrawNo:   drawNo,
		DrawDate: time.Date(2002, 12, 7, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7*(drawNo-1)),
		Bonus:    bonus,
	}
	copy(d.Numbers[:], numbers)
	return d
}

// CreateTestDraws creates count complete draws numbered from 1, newest first
func CreateTestDraws(count int) []models.Draw {
	draws := make([]models.Draw, 0, count)
	for no := count; no >= 1; no-- {
		start := (no*7)%40 + 1
		bonus := (start+5)%45 + 1
		draws = append(draws, CreateTestDraw(no, bonus,
			start, start+1, start+2, start+3, start+4, start+5))
	}
	return draws
}

// CreateTestStats creates one stat per number with a frequency of 100+number
// and a gap equal to the number. Numbers listed in neverSeen get a nil gap.
func CreateTestStats(neverSeen ...int) []models.NumberStat {
	unseen := make(map[int]bool, len(neverSeen))
	for _, n := range neverSeen {
		unseen[n] = true
	}

	stats := make([]models.NumberStat, 0, models.MaxNumber)
	for n := models.MinNumber; n <= models.MaxNumber; n++ {
		s := models.NumberStat{Number: n, Frequency: 100 + n}
		if !unseen[n] {
			gap := n
			s.LastDrawGap = &gap
		}
		stats = append(stats, s)
	}
	return stats
}
