package terminalcore

import "errors"

// ErrKind classifies the errors this core can produce, per the taxonomy of
// kinds (not concrete types) the interpreter and PTY host report against.
type ErrKind int

const (
	// KindBoundaryOOB: grid/cell coordinates outside current dimensions.
	// The interpreter recovers from this locally (clamp, or a default
	// cell); it is exported only so FFI callers can classify a surfaced
	// negative return value.
	KindBoundaryOOB ErrKind = iota
	// KindPtyNotAttached: an operation requires a PTY but none is bound.
	KindPtyNotAttached
	// KindOsIO: a failure of read, write, openpty, fork, or ioctl.
	KindOsIO
	// KindChildExec: the forked child's exec of the shell failed.
	KindChildExec
)

func (k ErrKind) String() string {
	switch k {
	case KindBoundaryOOB:
		return "boundary-oob"
	case KindPtyNotAttached:
		return "pty-not-attached"
	case KindOsIO:
		return "os-io"
	case KindChildExec:
		return "child-exec"
	default:
		return "unknown"
	}
}

// Error wraps an underlying cause with the kind it belongs to.
type Error struct {
	Kind ErrKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// ErrPtyNotAttached is the error value of kind KindPtyNotAttached. No
// function in this package returns it: SendInput and Resize treat a missing
// PTY as a no-op.
var ErrPtyNotAttached = &Error{Kind: KindPtyNotAttached, Err: errors.New("no pty attached")}

// IsKind reports whether err (or something it wraps) carries the given kind.
func IsKind(err error, kind ErrKind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
