package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFmtInt(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{18848, "18,848"},
		{936197, "936,197"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FmtInt(tt.input))
	}
}

func TestFmtBytes(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1023, "1023 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1048576, "1.00 MB"},
		{1073741824, "1.00 GB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FmtBytes(tt.input))
	}
}

func TestFmtPct(t *testing.T) {
	assert.Equal(t, " 68.3%", FmtPct(68.3))
	assert.Equal(t, "100.0%", FmtPct(100.0))
	assert.Equal(t, "  0.0%", FmtPct(0.0))
}
