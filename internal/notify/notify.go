// ABOUTME: Notification sink abstraction for user-facing engine events.
// ABOUTME: Console implementation prints colored output; Recorder captures for tests.
package notify

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Severity classifies a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityWarning
)

// Notifier receives fire-and-forget user-facing notifications.
type Notifier interface {
	Notify(title, detail string, severity Severity)
}

// Console prints notifications to stdout with color by severity.
type Console struct{}

// NewConsole creates a console notifier.
func NewConsole() *Console {
	return &Console{}
}

// Notify prints the notification.
func (c *Console) Notify(title, detail string, severity Severity) {
	switch severity {
	case SeveritySuccess:
		color.Green("✓ %s", title)
	case SeverityWarning:
		color.Yellow("⚠ %s", title)
	default:
		fmt.Println(title)
	}
	if detail != "" {
		fmt.Printf("  %s\n", detail)
	}
}

// Entry is one captured notification.
type Entry struct {
	Title    string
	Detail   string
	Severity Severity
}

// Recorder captures notifications for inspection in tests.
type Recorder struct {
	Entries []Entry
}

// Notify appends the notification to the recorder.
func (r *Recorder) Notify(title, detail string, severity Severity) {
	r.Entries = append(r.Entries, Entry{Title: title, Detail: detail, Severity: severity})
}

// Has reports whether any captured notification title contains s.
func (r *Recorder) Has(s string) bool {
	for _, e := range r.Entries {
		if strings.Contains(strings.ToLower(e.Title), strings.ToLower(s)) {
			return true
		}
	}
	return false
}
