// Package progress is the verbose reporting channel of a scan. The scan loop
// and command layer emit events; a handler renders them to stderr. All of it
// is inert unless verbose mode enables it.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Event types reported during a scan
type EventType int

const (
	EventScanStart EventType = iota
	EventScanComplete
	EventFileProcessing
	EventSkipped
	EventFileWriting
	EventFileWritten
	EventInfo
)

// Event represents something that happened during scanning
type Event struct {
	Type      EventType
	Path      string
	Name      string
	Info      string
	Reason    string
	FileCount int
	Duration  time.Duration
}

// Reporter is the interface the scan loop uses to report events
type Reporter interface {
	Report(event Event)
}

// Handler processes events and produces output
type Handler interface {
	Handle(event Event)
}

// Progress is the centralized verbose system
type Progress struct {
	enabled bool
	handler Handler
}

// New creates a new progress reporter
func New(enabled bool, handler Handler) *Progress {
	if handler == nil {
		handler = NewSimpleHandler(os.Stderr)
	}
	return &Progress{
		enabled: enabled,
		handler: handler,
	}
}

// Report sends an event to the handler (only if enabled)
func (p *Progress) Report(event Event) {
	if !p.enabled {
		return
	}
	p.handler.Handle(event)
}

// Convenience methods for the scan loop to report events

func (p *Progress) ScanStart(path string, excludePatterns []string) {
	p.Report(Event{
		Type: EventScanStart,
		Path: path,
		Info: strings.Join(excludePatterns, ", "),
	})
}

func (p *Progress) ScanComplete(files int, duration time.Duration) {
	p.Report(Event{
		Type:      EventScanComplete,
		FileCount: files,
		Duration:  duration,
	})
}

func (p *Progress) FileProcessing(name string) {
	p.Report(Event{
		Type: EventFileProcessing,
		Name: name,
	})
}

func (p *Progress) Skipped(path, reason string) {
	p.Report(Event{
		Type:   EventSkipped,
		Path:   path,
		Reason: reason,
	})
}

func (p *Progress) FileWriting(path string) {
	p.Report(Event{
		Type: EventFileWriting,
		Path: path,
	})
}

func (p *Progress) FileWritten(path string) {
	p.Report(Event{
		Type: EventFileWritten,
		Path: path,
	})
}

func (p *Progress) Info(message string) {
	p.Report(Event{
		Type: EventInfo,
		Info: message,
	})
}

// SimpleHandler outputs events as simple prefixed lines
type SimpleHandler struct {
	writer io.Writer
}

func NewSimpleHandler(writer io.Writer) *SimpleHandler {
	return &SimpleHandler{writer: writer}
}

func (h *SimpleHandler) Handle(event Event) {
	switch event.Type {
	case EventScanStart:
		fmt.Fprintf(h.writer, "[SCAN] Starting: %s\n", event.Path)
		if event.Info != "" {
			fmt.Fprintf(h.writer, "[SCAN] Excluding: %s\n", event.Info)
		}

	case EventScanComplete:
		fmt.Fprintf(h.writer, "[SCAN] Completed: %d files in %.1fs\n",
			event.FileCount, event.Duration.Seconds())

	case EventFileProcessing:
		fmt.Fprintf(h.writer, "[FILE] Analyzing: %s\n", event.Name)

	case EventSkipped:
		fmt.Fprintf(h.writer, "[SKIP] Excluding: %s (%s)\n", event.Path, event.Reason)

	case EventFileWriting:
		fmt.Fprintf(h.writer, "[OUT]  Writing report to: %s\n", event.Path)

	case EventFileWritten:
		fmt.Fprintf(h.writer, "[OUT]  Report written: %s\n", event.Path)

	case EventInfo:
		fmt.Fprintf(h.writer, "[INFO] %s\n", event.Info)
	}
}

// NullHandler discards all events (for disabled verbose mode)
type NullHandler struct{}

func NewNullHandler() *NullHandler {
	return &NullHandler{}
}

func (h *NullHandler) Handle(event Event) {
	// Do nothing
}
