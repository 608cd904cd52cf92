// Package pty hosts a forked shell behind a pseudo-terminal, bridging its
// stdio to a terminalcore.Terminal via the terminalcore.PTYHost interface.
//
// Grounded on creack/pty, the library every PTY-using example in the
// retrieval pack reaches for (danielgatis-go-headless-term/wasm,
// AryaLabsHQ-agentree/internal/multiplex, dcosson-h2/internal/virtualterminal).
// None of those examples need the non-blocking-read/EAGAIN distinction
// spec.md §4.4 requires, so this package augments creack/pty's blocking
// os.File handle with golang.org/x/sys/unix for raw non-blocking reads and
// TIOCSWINSZ resizes, bypassing the os.File/netpoller integration that
// would otherwise mask EAGAIN.
package pty

import (
	"errors"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	terminalcore "github.com/themikethompson/terminal-emulator"
)

// ErrWouldBlock distinguishes a non-blocking read that found no data from
// a genuine I/O failure, per spec.md §4.4's read contract.
var ErrWouldBlock = &terminalcore.Error{Kind: terminalcore.KindOsIO, Err: errors.New("pty read would block (EAGAIN)")}

// Host owns one PTY master/slave pair and the child process bound to the
// slave. It implements terminalcore.PTYHost.
type Host struct {
	master *os.File
	fd     int
	cmd    *exec.Cmd
}

// New opens a PTY sized to (rows, cols), forks the given shell (or, if
// shell is empty, $SHELL, falling back to /bin/sh) into it with
// TERM=xterm-256color, and returns a Host with the master fd already set
// non-blocking. Any failure is an OsIO error.
func New(rows, cols int, shell string) (*Host, error) {
	shellPath := shell
	if shellPath == "" {
		shellPath = os.Getenv("SHELL")
	}
	if shellPath == "" {
		shellPath = "/bin/sh"
	}

	cmd := exec.Command(shellPath)
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")

	master, err := pty.StartWithSize(cmd, &pty.Winsize{
		Rows: uint16(rows),
		Cols: uint16(cols),
	})
	if err != nil {
		return nil, &terminalcore.Error{Kind: terminalcore.KindOsIO, Err: err}
	}

	fd := int(master.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		master.Close()
		_ = cmd.Process.Kill()
		return nil, &terminalcore.Error{Kind: terminalcore.KindOsIO, Err: err}
	}

	return &Host{master: master, fd: fd, cmd: cmd}, nil
}

// Read performs a single non-blocking read of the master fd. A read that
// would block returns (0, ErrWouldBlock) rather than (0, nil) or panicking
// the caller's polling loop, so callers can distinguish "no data yet" from
// a genuine failure.
func (h *Host) Read(buf []byte) (int, error) {
	n, err := unix.Read(h.fd, buf)
	if err != nil {
		if errors.Is(err, unix.EAGAIN) {
			return 0, ErrWouldBlock
		}
		return n, &terminalcore.Error{Kind: terminalcore.KindOsIO, Err: err}
	}
	return n, nil
}

// Write writes to the master fd. Short writes are the caller's
// responsibility, per spec.md §4.4.
func (h *Host) Write(data []byte) (int, error) {
	n, err := unix.Write(h.fd, data)
	if err != nil {
		return n, &terminalcore.Error{Kind: terminalcore.KindOsIO, Err: err}
	}
	return n, nil
}

// Resize pushes a new window size to the master via TIOCSWINSZ.
func (h *Host) Resize(rows, cols int) error {
	ws := &unix.Winsize{Row: uint16(rows), Col: uint16(cols)}
	if err := unix.IoctlSetWinsize(h.fd, unix.TIOCSWINSZ, ws); err != nil {
		return &terminalcore.Error{Kind: terminalcore.KindOsIO, Err: err}
	}
	return nil
}

// MasterFD exposes the master file descriptor for external poll/select/
// epoll/kqueue integration.
func (h *Host) MasterFD() int {
	return h.fd
}

// Close closes the master fd and sends SIGHUP to the child if it is still
// running. Reaping (Wait) is the embedder's responsibility; this core does
// not collect zombies, per spec.md §4.4.
func (h *Host) Close() error {
	err := h.master.Close()
	if h.cmd != nil && h.cmd.Process != nil {
		_ = h.cmd.Process.Signal(unix.SIGHUP)
	}
	if err != nil {
		return &terminalcore.Error{Kind: terminalcore.KindOsIO, Err: err}
	}
	return nil
}

// Wait reaps the child process, returning its exit error (if any). Not
// required by spec.md §4.4 but provided so embedders have somewhere to
// collect the zombie without reaching into cmd directly.
func (h *Host) Wait() error {
	if h.cmd == nil {
		return nil
	}
	return h.cmd.Wait()
}

var _ terminalcore.PTYHost = (*Host)(nil)
