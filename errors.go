package id3

import (
	"errors"
	"fmt"

	"github.com/illright/id3/internal/breader"
)

// ErrorKind tags the structural category of a ParseError, per the
// propagation policy: header errors are always fatal; frame-level
// errors are fatal unless Options.Lenient is set; UnknownFrame never
// reaches here at all (it is a diagnostic, not an error).
type ErrorKind int

const (
	// MissingIdentifier means the header magic ("TAG"/"ID3") was absent.
	MissingIdentifier ErrorKind = iota
	// UnsupportedVersion means the major/revision pair isn't recognised.
	UnsupportedVersion
	// MalformedHeader means a reserved flag bit was set or an extended
	// header declared illegal flags.
	MalformedHeader
	// Malformed means a structural violation inside a frame body.
	Malformed
	// Underflow means a read tried to move past the end of the buffer.
	Underflow
)

func (k ErrorKind) String() string {
	switch k {
	case MissingIdentifier:
		return "MissingIdentifier"
	case UnsupportedVersion:
		return "UnsupportedVersion"
	case MalformedHeader:
		return "MalformedHeader"
	case Malformed:
		return "Malformed"
	case Underflow:
		return "Underflow"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is the error type returned by every Parse* entry point.
// Label is set when the error occurred while decoding a specific
// frame's body.
type ParseError struct {
	Kind   ErrorKind
	Offset int
	Label  string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("id3: %s at offset %d in frame %q: %s", e.Kind, e.Offset, e.Label, e.Reason)
	}
	return fmt.Sprintf("id3: %s at offset %d: %s", e.Kind, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is lets callers write errors.Is(err, id3.ErrMalformed) and similar
// against the sentinels below, in addition to errors.As(err, &pe) for
// the full ParseError.
func (e *ParseError) Is(target error) bool {
	k, ok := target.(errKind)
	return ok && ErrorKind(k) == e.Kind
}

// errKind lets callers write errors.Is(err, id3.ErrUnderflow) etc.
// without constructing a ParseError themselves.
type errKind ErrorKind

func (k errKind) Error() string { return ErrorKind(k).String() }

// Sentinel kinds for errors.Is comparisons against any ParseError.
var (
	ErrMissingIdentifier = errKind(MissingIdentifier)
	ErrUnsupportedVersion = errKind(UnsupportedVersion)
	ErrMalformedHeader    = errKind(MalformedHeader)
	ErrMalformed          = errKind(Malformed)
	ErrUnderflow          = errKind(Underflow)
)

func newParseError(kind ErrorKind, offset int, label, reason string, cause error) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Label: label, Reason: reason, Err: cause}
}

// mapReaderError turns an internal breader error into a ParseError of
// the appropriate kind, tagging it with the current frame label (if
// any, empty for header-level reads).
func mapReaderError(err error, label string) *ParseError {
	var uerr *breader.UnderflowError
	if errors.As(err, &uerr) {
		return newParseError(Underflow, uerr.Offset, label,
			fmt.Sprintf("requested %d bytes, %d available", uerr.Requested, uerr.Available), err)
	}

	var merr *breader.MalformedError
	if errors.As(err, &merr) {
		return newParseError(Malformed, merr.Offset, label, merr.Reason, err)
	}

	return newParseError(Malformed, -1, label, err.Error(), err)
}
