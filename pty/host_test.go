package pty

import (
	"errors"
	"testing"
	"time"
)

// Grounded on original_source/core/src/pty.rs's test_pty_creation: spawn a
// shell, confirm the host is usable, then tear it down cleanly.
func TestNewAndClose(t *testing.T) {
	h, err := New(24, 80, "/bin/sh")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if h.MasterFD() < 0 {
		t.Fatalf("expected a valid master fd, got %d", h.MasterFD())
	}
	if err := h.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestReadWouldBlockWhenIdle(t *testing.T) {
	h, err := New(24, 80, "/bin/sh")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	// Give the shell a moment to print its (possibly empty) startup output
	// and drain it so the next read has nothing pending.
	time.Sleep(50 * time.Millisecond)
	buf := make([]byte, 4096)
	for {
		n, err := h.Read(buf)
		if err != nil {
			break
		}
		if n == 0 {
			break
		}
	}

	_, err = h.Read(buf)
	if err == nil {
		t.Fatal("expected an error on an idle non-blocking read")
	}
	if !errors.Is(err, ErrWouldBlock) {
		t.Fatalf("expected ErrWouldBlock, got %v", err)
	}
}

func TestWriteAndReadEcho(t *testing.T) {
	h, err := New(24, 80, "/bin/sh")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	if _, err := h.Write([]byte("echo hi\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	var collected []byte
	buf := make([]byte, 4096)
	for time.Now().Before(deadline) {
		n, err := h.Read(buf)
		if err != nil {
			if errors.Is(err, ErrWouldBlock) {
				time.Sleep(10 * time.Millisecond)
				continue
			}
			break
		}
		collected = append(collected, buf[:n]...)
		if len(collected) > 0 {
			break
		}
	}
	if len(collected) == 0 {
		t.Fatal("expected some echoed output from the shell, got none")
	}
}

func TestResize(t *testing.T) {
	h, err := New(24, 80, "/bin/sh")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer h.Close()

	if err := h.Resize(30, 100); err != nil {
		t.Fatalf("Resize: %v", err)
	}
}
