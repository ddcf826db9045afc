package report

import (
	"fmt"
	"strconv"
	"strings"
)

// FmtInt renders an integer with thousands separators: 1234567 -> 1,234,567.
func FmtInt(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// FmtBytes renders a byte count in the largest unit below 1024, two decimals
// for everything above plain bytes: 0 -> "0 B", 2048 -> "2.00 KB".
func FmtBytes(n int64) string {
	units := []string{"B", "KB", "MB", "GB", "TB"}
	v := float64(n)
	for i, u := range units {
		if v < 1024.0 || i == len(units)-1 {
			if u == "B" {
				return fmt.Sprintf("%d %s", int64(v), u)
			}
			return fmt.Sprintf("%.2f %s", v, u)
		}
		v /= 1024.0
	}
	return "" // unreachable
}

// FmtPct renders a percentage with one decimal in a fixed width column:
// 68.3 -> " 68.3%".
func FmtPct(x float64) string {
	return fmt.Sprintf("%5.1f%%", x)
}
