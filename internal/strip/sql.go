package strip

import "strings"

// SQLScript strips -- line comments and non-nesting /* */ block comments
// from SQL. Single-quoted strings follow SQL escape semantics: a doubled
// single quote ('') inside a string is one literal quote and does not close
// the string, so 'it''s -- fine' contains no comment.
func SQLScript(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	n := len(text)
	inSquote := false
	inBlock := false

	for i := 0; i < n; {
		ch := text[i]
		var next byte
		if i+1 < n {
			next = text[i+1]
		}

		if inBlock {
			if ch == '*' && next == '/' {
				inBlock = false
				i += 2
				continue
			}
			if ch == '\n' {
				out.WriteByte('\n')
			}
			i++
			continue
		}

		if inSquote {
			out.WriteByte(ch)
			if ch == '\'' && next == '\'' {
				out.WriteByte(next)
				i += 2
				continue
			}
			if ch == '\'' {
				inSquote = false
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

		if ch == '-' && next == '-' {
			i += 2
			for i < n && text[i] != '\n' {
				i++
			}
			continue
		}

		if ch == '/' && next == '*' {
			inBlock = true
			i += 2
			continue
		}

		out.WriteByte(ch)
		i++
	}

	return out.String()
}
