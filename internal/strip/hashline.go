package strip

import "strings"

// HashLine strips # line comments, tracking single- and double-quoted
// strings with backslash escapes so a # inside a literal survives.
func HashLine(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	n := len(text)
	inSquote := false
	inDquote := false

	for i := 0; i < n; {
		ch := text[i]

		if inSquote || inDquote {
			out.WriteByte(ch)
			if ch == '\\' && i+1 < n {
				out.WriteByte(text[i+1])
				i += 2
				continue
			}
			if (inSquote && ch == '\'') || (inDquote && ch == '"') {
				inSquote, inDquote = false, false
			}
			i++
			continue
		}

		if ch == '\'' {
			inSquote = true
			out.WriteByte(ch)
			i++
			continue
		}
		if ch == '"' {
			inDquote = true
			out.WriteByte(ch)
			i++
			continue
		}

		if ch == '#' {
			for i < n && text[i] != '\n' {
				i++
			}
			continue
		}

		out.WriteByte(ch)
		i++
	}

	return out.String()
}
