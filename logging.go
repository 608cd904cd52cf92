package terminalcore

import (
	"io"
	"log"
)

// Logger is the minimal logging surface a Terminal writes diagnostics
// through. Its only use is Terminal.Resize reporting a failed PTY resize;
// parsing, printing, and dispatch never log, and the pty package does not
// log.
type Logger interface {
	Printf(format string, args ...any)
}

// defaultLogger wraps the standard library logger so embedders who never
// configure one still see diagnostics on stderr.
var defaultLogger Logger = log.New(log.Writer(), "terminalcore: ", log.LstdFlags)

// DefaultLogger returns the package-wide default Logger.
func DefaultLogger() Logger { return defaultLogger }

// SetLogOutput redirects the default logger's output, mirroring
// log.SetOutput for embedders who want to silence or redirect diagnostics
// without implementing their own Logger.
func SetLogOutput(w io.Writer) {
	if l, ok := defaultLogger.(*log.Logger); ok {
		l.SetOutput(w)
	}
}
