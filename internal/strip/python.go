package strip

import (
	"errors"
	"strings"
)

// Python strips comment tokens and docstring-shaped string literals from
// Python-like source using a token stream.
//
// A string token is treated as a docstring and discarded when it is the first
// significant token of a statement: since the last statement boundary
// (newline, indent or dedent at bracket depth zero) no name, number, operator
// or kept string has appeared. A string assigned to a variable or used
// mid-expression is preserved. This is a positional heuristic, not scope
// analysis, and any bare string-expression statement is discarded with it.
//
// On tokenization failure the scanner falls back to a line-oriented pass that
// blanks whole #-lines and truncates lines at their first #. The fallback has
// no string awareness and may truncate a literal # inside a string; that is
// an accepted approximation of malformed source.
func Python(text string) string {
	tokens, err := pythonTokenize(text)
	if err != nil {
		return pythonFallback(text)
	}

	var out strings.Builder
	out.Grow(len(text))

	prevEnd := 0
	startOfStmt := true

	for _, tok := range tokens {
		keep := true
		switch tok.kind {
		case pyComment:
			keep = false
		case pyString:
			if startOfStmt {
				keep = false
			}
		}

		if keep {
			out.WriteString(text[prevEnd:tok.end])
			switch tok.kind {
			case pyNewline, pyNL, pyIndent, pyDedent:
				startOfStmt = true
			default:
				startOfStmt = false
			}
		}
		// Dropped tokens also swallow the whitespace gap before them and
		// leave the statement-boundary state untouched.
		prevEnd = tok.end
	}
	out.WriteString(text[prevEnd:])

	return out.String()
}

// pythonFallback is the crude line-oriented stripper used when the tokenizer
// rejects the source.
func pythonFallback(text string) string {
	var out strings.Builder
	out.Grow(len(text))

	for line := range splitAfterLines(text) {
		hasNL := strings.HasSuffix(line, "\n")
		stripped := strings.TrimLeft(line, " \t\r\f")
		switch {
		case strings.HasPrefix(stripped, "#"):
			if hasNL {
				out.WriteByte('\n')
			}
		case strings.Contains(line, "#"):
			out.WriteString(line[:strings.Index(line, "#")])
			if hasNL {
				out.WriteByte('\n')
			}
		default:
			out.WriteString(line)
		}
	}

	return out.String()
}

// splitAfterLines yields lines with their trailing newline kept.
func splitAfterLines(text string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		for len(text) > 0 {
			idx := strings.IndexByte(text, '\n')
			if idx < 0 {
				yield(text)
				return
			}
			if !yield(text[:idx+1]) {
				return
			}
			text = text[idx+1:]
		}
	}
}

type pyTokenKind int

const (
	pyComment pyTokenKind = iota
	pyString
	pyName
	pyNumber
	pyOp
	pyNewline // logical end of statement
	pyNL      // non-logical newline (blank or comment-only line)
	pyIndent
	pyDedent
)

// pyToken is a token's kind plus its source span. Indent and dedent markers
// are zero-width and sit before the line's indentation, so the indentation
// stays in the gap of the first real token and vanishes with it when that
// token is a dropped docstring.
type pyToken struct {
	kind  pyTokenKind
	start int
	end   int
}

var (
	errUnterminatedString = errors.New("unterminated string literal")
	errInconsistentDedent = errors.New("inconsistent dedent")
)

// pythonTokenize produces the token stream used by Python. It understands
// string prefixes, triple quotes, escapes, bracket continuation, explicit
// backslash continuation and indentation, which is all the stripping
// heuristic requires; it does not validate the grammar beyond that.
func pythonTokenize(src string) ([]pyToken, error) {
	var tokens []pyToken
	n := len(src)
	indents := []int{0}
	parenDepth := 0
	atLineStart := true
	i := 0

	for i < n {
		if atLineStart && parenDepth == 0 {
			lineStart := i
			col := 0
			for i < n {
				switch src[i] {
				case ' ':
					col++
				case '\t':
					col = col/8*8 + 8
				case '\f', '\r':
					// no column change
				default:
					goto indentDone
				}
				i++
			}
		indentDone:
			if i >= n {
				break
			}
			if src[i] == '\n' {
				tokens = append(tokens, pyToken{pyNL, i, i + 1})
				i++
				continue
			}
			if src[i] == '#' {
				// Comment-only lines never touch the indent stack.
				start := i
				for i < n && src[i] != '\n' {
					i++
				}
				tokens = append(tokens, pyToken{pyComment, start, i})
				if i < n {
					tokens = append(tokens, pyToken{pyNL, i, i + 1})
					i++
				}
				continue
			}

			top := indents[len(indents)-1]
			if col > top {
				indents = append(indents, col)
				tokens = append(tokens, pyToken{pyIndent, lineStart, lineStart})
			} else {
				for col < indents[len(indents)-1] {
					indents = indents[:len(indents)-1]
					tokens = append(tokens, pyToken{pyDedent, lineStart, lineStart})
				}
				if col != indents[len(indents)-1] {
					return nil, errInconsistentDedent
				}
			}
			atLineStart = false
			continue
		}

		ch := src[i]

		switch {
		case ch == '\n':
			if parenDepth == 0 {
				tokens = append(tokens, pyToken{pyNewline, i, i + 1})
				atLineStart = true
			}
			i++

		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\f':
			i++

		case ch == '#':
			start := i
			for i < n && src[i] != '\n' {
				i++
			}
			tokens = append(tokens, pyToken{pyComment, start, i})

		case ch == '\\' && i+1 < n && (src[i+1] == '\n' || src[i+1] == '\r'):
			// Explicit continuation: the logical line keeps going.
			i++
			if i < n && src[i] == '\r' {
				i++
			}
			if i < n && src[i] == '\n' {
				i++
			}

		case ch == '\'' || ch == '"':
			end, err := lexPyString(src, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, pyToken{pyString, i, end})
			i = end

		case isPyNameStart(ch):
			if end, ok := lexPyPrefixedString(src, i); ok {
				var err error
				end, err = lexPyString(src, end)
				if err != nil {
					return nil, err
				}
				tokens = append(tokens, pyToken{pyString, i, end})
				i = end
				continue
			}
			start := i
			for i < n && isPyNameChar(src[i]) {
				i++
			}
			tokens = append(tokens, pyToken{pyName, start, i})

		case ch >= '0' && ch <= '9':
			start := i
			for i < n && (isPyNameChar(src[i]) || src[i] == '.') {
				i++
			}
			tokens = append(tokens, pyToken{pyNumber, start, i})

		default:
			if ch == '(' || ch == '[' || ch == '{' {
				parenDepth++
			} else if (ch == ')' || ch == ']' || ch == '}') && parenDepth > 0 {
				parenDepth--
			}
			tokens = append(tokens, pyToken{pyOp, i, i + 1})
			i++
		}
	}

	return tokens, nil
}

// lexPyPrefixedString checks for a string prefix (r, b, u, f and their
// two-letter combinations) directly followed by a quote. It returns the
// offset of the quote.
func lexPyPrefixedString(src string, i int) (int, bool) {
	j := i
	for j < len(src) && j-i < 2 && isPyStringPrefixLetter(src[j]) {
		j++
	}
	if j == i || j >= len(src) {
		return 0, false
	}
	if src[j] == '\'' || src[j] == '"' {
		return j, true
	}
	return 0, false
}

// lexPyString consumes a string literal starting at the opening quote and
// returns the offset just past the closer.
func lexPyString(src string, i int) (int, error) {
	n := len(src)
	quote := src[i]

	if strings.HasPrefix(src[i:], strings.Repeat(string(quote), 3)) {
		closer := strings.Repeat(string(quote), 3)
		k := i + 3
		for k < n {
			if src[k] == '\\' && k+1 < n {
				k += 2
				continue
			}
			if strings.HasPrefix(src[k:], closer) {
				return k + 3, nil
			}
			k++
		}
		return 0, errUnterminatedString
	}

	k := i + 1
	for k < n {
		switch {
		case src[k] == '\\' && k+1 < n:
			k += 2
		case src[k] == quote:
			return k + 1, nil
		case src[k] == '\n':
			return 0, errUnterminatedString
		default:
			k++
		}
	}
	return 0, errUnterminatedString
}

func isPyStringPrefixLetter(ch byte) bool {
	switch ch {
	case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		return true
	}
	return false
}

func isPyNameStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch >= 0x80
}

func isPyNameChar(ch byte) bool {
	return isPyNameStart(ch) || (ch >= '0' && ch <= '9')
}
