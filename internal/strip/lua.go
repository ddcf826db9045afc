package strip

import "strings"

// matchLongOpen reports a Lua long-bracket opener at pos: [[, [=[, [==[, ...
// It returns the number of = signs and whether an opener is present.
func matchLongOpen(text string, pos int) (int, bool) {
	n := len(text)
	if pos >= n || text[pos] != '[' {
		return 0, false
	}
	j := pos + 1
	eq := 0
	for j < n && text[j] == '=' {
		eq++
		j++
	}
	if j < n && text[j] == '[' {
		return eq, true
	}
	return 0, false
}

// matchLongClose reports a closing long bracket at pos whose = count is
// exactly eq: ]], ]=], ]==], ... A mismatched count does not close.
func matchLongClose(text string, pos int, eq int) bool {
	n := len(text)
	if pos >= n || text[pos] != ']' {
		return false
	}
	j := pos + 1
	k := 0
	for k < eq && j < n && text[j] == '=' {
		k++
		j++
	}
	return k == eq && j < n && text[j] == ']'
}

// LuaScript strips -- line comments and --[=*[ ... ]=*] long-bracket block
// comments from Lua. The = count of a block comment's opener must be matched
// exactly by its closer. Long-bracket string literals use the same matching
// rule and their contents, including brackets of a different depth, are
// preserved verbatim. Ordinary quoted strings use backslash escapes.
//
// At a --, a long bracket immediately after makes the whole construct a block
// comment; otherwise it is a line comment.
func LuaScript(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	n := len(text)
	inSquote := false
	inDquote := false
	inLongStr := false
	longEq := 0
	inBlock := false
	blockEq := 0

	for i := 0; i < n; {
		ch := text[i]
		var next byte
		if i+1 < n {
			next = text[i+1]
		}

		if inBlock {
			if ch == '\n' {
				out.WriteByte('\n')
				i++
				continue
			}
			if matchLongClose(text, i, blockEq) {
				inBlock = false
				i += 2 + blockEq
				continue
			}
			i++
			continue
		}

		if inLongStr {
			out.WriteByte(ch)
			if ch == '\n' {
				i++
				continue
			}
			if matchLongClose(text, i, longEq) {
				out.WriteString(text[i+1 : i+2+longEq])
				inLongStr = false
				i += 2 + longEq
				continue
			}
			i++
			continue
		}

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

		if eq, ok := matchLongOpen(text, i); ok {
			inLongStr = true
			longEq = eq
			out.WriteString(text[i : i+2+eq])
			i += 2 + eq
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

		if ch == '-' && next == '-' {
			if eq, ok := matchLongOpen(text, i+2); ok {
				inBlock = true
				blockEq = eq
				i += 4 + eq // skip -- and [=*[
				continue
			}
			i += 2
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
