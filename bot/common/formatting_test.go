package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCount(tt.in))
	}
}

func TestFormatNumbers(t *testing.T) {
	assert.Equal(t, "`3` `14` `27`", FormatNumbers([]int{3, 14, 27}))
	assert.Equal(t, "none", FormatNumbers(nil))
}

func TestFormatDiscordTimestamp(t *testing.T) {
	ts := time.Date(2024, 1, 6, 20, 45, 0, 0, time.UTC)
	assert.Equal(t, "<t:1704573900:R>", FormatDiscordTimestamp(ts, "R"))
}
