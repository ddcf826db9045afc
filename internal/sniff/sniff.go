// Package sniff decides whether a file is text or binary.
package sniff

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// probeSize is how many leading bytes are inspected for a NUL byte.
const probeSize = 4096

// binaryExts short-circuits the content probe for well-known binary formats.
var binaryExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".webp": true,
	".ico": true, ".bmp": true, ".tiff": true,
	".mp3": true, ".wav": true, ".flac": true,
	".mp4": true, ".mkv": true, ".mov": true, ".avi": true,
	".pdf": true,
	".zip": true, ".7z": true, ".rar": true, ".gz": true, ".tar": true,
	".woff": true, ".woff2": true, ".ttf": true, ".otf": true,
	".psd": true,
}

// IsBinary reports whether the file at path should be treated as binary.
// Known binary extensions are accepted without I/O; otherwise the first 4096
// bytes are probed for a NUL byte. Unreadable files are treated as binary so
// a scan never aborts on them.
func IsBinary(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	if binaryExts[ext] {
		return true
	}

	f, err := os.Open(path)
	if err != nil {
		return true
	}
	defer f.Close()

	buf := make([]byte, probeSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return true
	}

	return enry.IsBinary(buf[:n])
}
