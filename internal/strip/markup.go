package strip

import "strings"

// Markup strips <!-- --> comments from HTML/XML-like text. Markup has no
// escape-bearing string literals in this model, so only the literal comment
// delimiters are scanned for. Comments do not nest; newlines inside a
// comment are preserved.
func Markup(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	n := len(text)
	inComment := false

	for i := 0; i < n; {
		if !inComment && strings.HasPrefix(text[i:], "<!--") {
			inComment = true
			i += 4
			continue
		}
		if inComment && strings.HasPrefix(text[i:], "-->") {
			inComment = false
			i += 3
			continue
		}
		ch := text[i]
		if inComment {
			if ch == '\n' {
				out.WriteByte('\n')
			}
			i++
			continue
		}
		out.WriteByte(ch)
		i++
	}

	return out.String()
}
