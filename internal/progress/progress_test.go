package progress

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimpleHandler(t *testing.T) {
	tests := []struct {
		name     string
		event    Event
		expected string
	}{
		{
			name: "scan start",
			event: Event{
				Type: EventScanStart,
				Path: "/path/to/project",
				Info: "node_modules, vendor",
			},
			expected: "[SCAN] Starting: /path/to/project\n[SCAN] Excluding: node_modules, vendor\n",
		},
		{
			name: "scan start without excludes",
			event: Event{
				Type: EventScanStart,
				Path: "/path/to/project",
			},
			expected: "[SCAN] Starting: /path/to/project\n",
		},
		{
			name: "scan complete",
			event: Event{
				Type:      EventScanComplete,
				FileCount: 120,
				Duration:  1500 * time.Millisecond,
			},
			expected: "[SCAN] Completed: 120 files in 1.5s\n",
		},
		{
			name: "file processing",
			event: Event{
				Type: EventFileProcessing,
				Name: "main.py",
			},
			expected: "[FILE] Analyzing: main.py\n",
		},
		{
			name: "skipped",
			event: Event{
				Type:   EventSkipped,
				Path:   "vendor/lib.js",
				Reason: "vendored",
			},
			expected: "[SKIP] Excluding: vendor/lib.js (vendored)\n",
		},
		{
			name: "report written",
			event: Event{
				Type: EventFileWritten,
				Path: "report.html",
			},
			expected: "[OUT]  Report written: report.html\n",
		},
		{
			name: "info",
			event: Event{
				Type: EventInfo,
				Info: "3 files skipped due to read errors",
			},
			expected: "[INFO] 3 files skipped due to read errors\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := NewSimpleHandler(&buf)
			h.Handle(tt.event)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestProgress_DisabledReportsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := New(false, NewSimpleHandler(&buf))

	p.ScanStart("/project", nil)
	p.FileProcessing("a.py")
	p.Info("hello")

	assert.Empty(t, buf.String())
}

func TestProgress_EnabledForwardsEvents(t *testing.T) {
	var buf bytes.Buffer
	p := New(true, NewSimpleHandler(&buf))

	p.FileProcessing("a.py")
	p.ScanComplete(1, time.Second)

	assert.Contains(t, buf.String(), "[FILE] Analyzing: a.py")
	assert.Contains(t, buf.String(), "[SCAN] Completed: 1 files in 1.0s")
}

func TestProgress_NilHandlerDefaultsToStderr(t *testing.T) {
	p := New(true, nil)
	assert.NotNil(t, p.handler)
}

func TestNullHandler(t *testing.T) {
	h := NewNullHandler()
	// Must not panic on any event type.
	h.Handle(Event{Type: EventScanStart})
	h.Handle(Event{Type: EventInfo, Info: "x"})
}
