package sniff

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestIsBinary_KnownExtensionSkipsIO(t *testing.T) {
	// The file does not exist; the extension alone decides.
	assert.True(t, IsBinary("/nonexistent/image.png"))
	assert.True(t, IsBinary("/nonexistent/ARCHIVE.ZIP"))
}

func TestIsBinary_TextContent(t *testing.T) {
	path := writeFile(t, "main.go", []byte("package main\n\nfunc main() {}\n"))
	assert.False(t, IsBinary(path))
}

func TestIsBinary_NulByteInPrefix(t *testing.T) {
	path := writeFile(t, "blob.unknown", []byte{'a', 0x00, 'b'})
	assert.True(t, IsBinary(path))
}

func TestIsBinary_NulBeyondProbeWindow(t *testing.T) {
	content := append(bytes.Repeat([]byte{'x'}, probeSize), 0x00)
	path := writeFile(t, "long.txt", content)
	assert.False(t, IsBinary(path), "only the first %d bytes are probed", probeSize)
}

func TestIsBinary_EmptyFile(t *testing.T) {
	path := writeFile(t, "empty.txt", nil)
	assert.False(t, IsBinary(path))
}

func TestIsBinary_UnreadableFailsClosed(t *testing.T) {
	assert.True(t, IsBinary(filepath.Join(t.TempDir(), "missing.txt")))
}
