package stats

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeText turns raw file bytes into a string, trying encodings in order:
// UTF-8 with BOM, plain UTF-8, GB18030, then a lossy UTF-8 decode that maps
// invalid bytes to the replacement character. It never fails.
func DecodeText(data []byte) string {
	if bytes.HasPrefix(data, utf8BOM) {
		body := data[len(utf8BOM):]
		if utf8.Valid(body) {
			return string(body)
		}
		data = body
	} else if utf8.Valid(data) {
		return string(data)
	}

	decoded, err := simplifiedchinese.GB18030.NewDecoder().Bytes(data)
	if err == nil && utf8.Valid(decoded) {
		return string(decoded)
	}

	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
