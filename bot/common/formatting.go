package common

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatCount formats a count with thousand separators
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	str := strconv.Itoa(n)

	l := len(str)
	if l <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (l-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}
	return result.String()
}

// FormatNumbers renders lottery numbers as inline code blocks, e.g. `3` `14` `27`
func FormatNumbers(numbers []int) string {
	if len(numbers) == 0 {
		return "none"
	}
	parts := make([]string, len(numbers))
	for i, n := range numbers {
		parts[i] = fmt.Sprintf("`%d`", n)
	}
	return strings.Join(parts, " ")
}

// FormatDiscordTimestamp formats a time as a Discord timestamp that displays in user's local timezone
// Format types: "t" = short time, "T" = long time, "d" = short date, "D" = long date,
// "f" = short date/time, "F" = long date/time, "R" = relative time
func FormatDiscordTimestamp(t time.Time, format string) string {
	return fmt.Sprintf("<t:%d:%s>", t.Unix(), format)
}
