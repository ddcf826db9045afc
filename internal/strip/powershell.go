package strip

import "strings"

// PowerShellScript strips # line comments and non-nesting <# #> block
// comments from PowerShell. Single-quoted strings escape quotes by doubling
// them; double-quoted strings use the back-tick as the escape character.
func PowerShellScript(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	n := len(text)
	inSquote := false
	inDquote := false
	inBlock := false

	for i := 0; i < n; {
		ch := text[i]
		var next byte
		if i+1 < n {
			next = text[i+1]
		}

		if inBlock {
			if ch == '#' && next == '>' {
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

		if inDquote {
			out.WriteByte(ch)
			if ch == '`' && i+1 < n {
				out.WriteByte(text[i+1])
				i += 2
				continue
			}
			if ch == '"' {
				inDquote = false
			}
			i++
			continue
		}

		if ch == '<' && next == '#' {
			inBlock = true
			i += 2
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
