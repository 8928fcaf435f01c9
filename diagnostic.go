package id3

import "fmt"

// DiagnosticKind categorizes a soft, non-fatal event raised during a parse.
type DiagnosticKind string

const (
	// DiagUnknownFrame: a frame identifier wasn't in the version's
	// dispatch table. The frame header and body bytes were still
	// consumed so iteration continues (spec §4.4.5); never fatal.
	DiagUnknownFrame DiagnosticKind = "unknown_frame"
	// DiagSkippedFrame: a frame-level decode error occurred and
	// Options.Lenient dropped the frame instead of failing the parse.
	DiagSkippedFrame DiagnosticKind = "skipped_frame"
	// DiagFooterPresent: the v2.4 footer bit was set; the footer itself
	// is not read or validated (spec §9).
	DiagFooterPresent DiagnosticKind = "footer_present"
)

// Diagnostic is a single soft event raised while parsing a tag.
type Diagnostic struct {
	Kind   DiagnosticKind
	Label  string
	Offset int
	Err    error // set for DiagSkippedFrame
}

func (d Diagnostic) String() string {
	if d.Err != nil {
		return fmt.Sprintf("%s: label=%q offset=%d: %v", d.Kind, d.Label, d.Offset, d.Err)
	}
	return fmt.Sprintf("%s: label=%q offset=%d", d.Kind, d.Label, d.Offset)
}

// DiagnosticSink receives Diagnostic events raised during a parse.
type DiagnosticSink interface {
	Diagnose(Diagnostic)
}

// DiscardSink drops every diagnostic. It is the default sink.
type DiscardSink struct{}

// Diagnose implements DiagnosticSink.
func (DiscardSink) Diagnose(Diagnostic) {}

// SliceSink collects diagnostics into a slice, in arrival order.
// Useful for tests and for callers that want to inspect diagnostics
// after a parse completes rather than streaming them live.
type SliceSink struct {
	Diagnostics []Diagnostic
}

// Diagnose implements DiagnosticSink.
func (s *SliceSink) Diagnose(d Diagnostic) {
	s.Diagnostics = append(s.Diagnostics, d)
}
