package stats

import "strings"

// CountCode counts the non-blank lines of comment-stripped text and the
// characters on those lines. A line that is empty after trimming whitespace
// contributes to neither count. Characters are counted per rune, internal
// whitespace included, line terminators excluded.
func CountCode(text string) (lines int, chars int) {
	for len(text) > 0 {
		var line string
		if idx := strings.IndexByte(text, '\n'); idx >= 0 {
			line = text[:idx]
			text = text[idx+1:]
		} else {
			line = text
			text = ""
		}
		line = strings.TrimSuffix(line, "\r")

		if strings.TrimSpace(line) == "" {
			continue
		}
		lines++
		chars += len([]rune(line))
	}
	return lines, chars
}
