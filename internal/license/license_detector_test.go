package license

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectInDirectory_NoLicense(t *testing.T) {
	assert.Empty(t, DetectInDirectory(t.TempDir()))
}

func TestDetectInDirectory_MissingDirectory(t *testing.T) {
	assert.Nil(t, DetectInDirectory(filepath.Join(t.TempDir(), "nope")))
}

func TestDetectInDirectory_UnrelatedFilesOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte("package main\n"), 0644))

	assert.Empty(t, DetectInDirectory(dir))
}
