package common

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatAmount formats a currency amount with thousand separators
func FormatAmount(amount int64) string {
	str := fmt.Sprintf("%d", amount)

	negative := strings.HasPrefix(str, "-")
	if negative {
		str = str[1:]
	}

	n := len(str)
	if n > 3 {
		var result strings.Builder
		for i, digit := range str {
			if i > 0 && (n-i)%3 == 0 {
				result.WriteRune(',')
			}
			result.WriteRune(digit)
		}
		str = result.String()
	}

	if negative {
		return "-" + str
	}
	return str
}

// FormatSigned formats an amount with an explicit sign, for profit/loss display
func FormatSigned(amount int64) string {
	if amount >= 0 {
		return "+" + FormatAmount(amount)
	}
	return FormatAmount(amount)
}

// FormatDuration renders a remaining wait as the largest useful units,
// rounding seconds up so "1ms left" never reads as "0s".
func FormatDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}

	seconds := int64(math.Ceil(d.Seconds()))
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
