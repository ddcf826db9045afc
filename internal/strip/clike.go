package strip

import "strings"

// CLike strips // line comments and non-nesting /* */ block comments from
// C-family source. Single-, double- and back-tick-quoted strings are tracked
// with backslash escapes so delimiters inside literals are never treated as
// comment starts. Newlines inside block comments are kept so line numbering
// stays roughly aligned.
func CLike(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	n := len(text)
	inSquote := false
	inDquote := false
	inBtick := false
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

		if inSquote || inDquote || inBtick {
			out.WriteByte(ch)
			if ch == '\\' && i+1 < n {
				out.WriteByte(text[i+1])
				i += 2
				continue
			}
			// Only the exact opener closes the string.
			if (inSquote && ch == '\'') || (inDquote && ch == '"') || (inBtick && ch == '`') {
				inSquote, inDquote, inBtick = false, false, false
			}
			i++
			continue
		}

		switch ch {
		case '\'':
			inSquote = true
			out.WriteByte(ch)
			i++
			continue
		case '"':
			inDquote = true
			out.WriteByte(ch)
			i++
			continue
		case '`':
			inBtick = true
			out.WriteByte(ch)
			i++
			continue
		}

		if ch == '/' && next == '/' {
			// Discard to end of line, keeping the newline itself.
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
