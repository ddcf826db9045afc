package strip

import "strings"

// BatchLines blanks Windows batch comment lines: a line whose left-trimmed
// lowercase form is exactly "rem" or starts with "rem ", or whose left-trimmed
// form starts with "::".
func BatchLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, raw := range lines {
		trimmed := strings.TrimLeft(raw, " \t\r")
		low := strings.ToLower(trimmed)
		if low == "rem" || strings.HasPrefix(low, "rem ") || strings.HasPrefix(trimmed, "::") {
			out = append(out, "")
			continue
		}
		out = append(out, raw)
	}

	return strings.Join(out, "\n")
}
