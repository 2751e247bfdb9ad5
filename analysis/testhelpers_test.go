package analysis

import (
	"lottotrack/models"
)

func draw(no int, bonus int, numbers ...int) models.Draw {
	d := models.Draw{DrawNo: no, Bonus: bonus}
	copy(d.Numbers[:], numbers)
	return d
}

func gap(g int) *int {
	return &g
}

func stat(number, frequency int, lastDrawGap *int) models.NumberStat {
	return models.NumberStat{Number: number, Frequency: frequency, LastDrawGap: lastDrawGap}
}

func fullStats(frequency func(n int) int, lastDrawGap func(n int) *int) []models.NumberStat {
	stats := make([]models.NumberStat, 0, models.MaxNumber)
	for n := models.MinNumber; n <= models.MaxNumber; n++ {
		stats = append(stats, stat(n, frequency(n), lastDrawGap(n)))
	}
	return stats
}
