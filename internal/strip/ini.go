package strip

import "strings"

// INILines strips ; and # comments from INI-style text. This scanner is
// line-oriented: a line whose left-trimmed content starts with a comment
// marker becomes blank, and a marker elsewhere cuts the line only when
// everything before it is whitespace. It never cuts mid-statement, because
// INI values regularly contain # and ; without any quoting convention.
func INILines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	for _, raw := range lines {
		trimmed := strings.TrimLeft(raw, " \t\r")
		if strings.HasPrefix(trimmed, ";") || strings.HasPrefix(trimmed, "#") {
			out = append(out, "")
			continue
		}

		cut := -1
		for _, marker := range []string{"#", ";"} {
			idx := strings.Index(raw, marker)
			if idx >= 0 && strings.TrimRight(raw[:idx], " \t\r") == "" {
				cut = idx
				break
			}
		}
		if cut >= 0 {
			out = append(out, strings.TrimRight(raw[:cut], " \t\r"))
		} else {
			out = append(out, raw)
		}
	}

	return strings.Join(out, "\n")
}
