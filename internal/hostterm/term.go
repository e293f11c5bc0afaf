// Package hostterm is the Host Facade: it owns the controlling terminal's
// raw-mode state, the nonblocking keyboard-available predicate, and SIGINT
// handling. internal/lc3 consumes it only through the lc3.Host interface;
// nothing here is LC-3-specific.
package hostterm

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is a scoped acquisition of raw terminal mode. Release restores
// the terminal to whatever state it was in before Acquire, and is safe to
// call more than once.
type Terminal struct {
	fd       int
	oldState *term.State
	out      *bufio.Writer
	sigCh    chan os.Signal
}

// Acquire puts stdin into raw mode (no line buffering, no host echo) and
// installs a SIGINT handler that restores the terminal before the process
// exits nonzero. Callers must defer a call to Release on every exit path.
func Acquire() (*Terminal, error) {
	fd := int(os.Stdin.Fd())

	t := &Terminal{
		fd:  fd,
		out: bufio.NewWriter(os.Stdout),
	}

	if term.IsTerminal(fd) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return nil, err
		}
		t.oldState = old
	}

	t.sigCh = make(chan os.Signal, 1)
	signal.Notify(t.sigCh, syscall.SIGINT)
	go t.watchSignals()

	return t, nil
}

// watchSignals is the sole background activity the host facade runs; it
// does nothing but wait for SIGINT to restore the terminal and exit. The
// fetch-execute loop itself stays strictly single-threaded, per spec.
func (t *Terminal) watchSignals() {
	if _, ok := <-t.sigCh; !ok {
		return
	}
	t.Release()
	os.Exit(130)
}

// Release restores the terminal to its pre-Acquire state and stops the
// SIGINT watcher. Idempotent.
func (t *Terminal) Release() {
	if t.sigCh != nil {
		signal.Stop(t.sigCh)
		close(t.sigCh)
		t.sigCh = nil
	}
	if t.oldState != nil {
		_ = term.Restore(t.fd, t.oldState)
		t.oldState = nil
	}
}

// KeyAvailable reports, without blocking, whether a byte is waiting on
// stdin. It implements lc3.Host.
func (t *Terminal) KeyAvailable() bool {
	fds := []unix.PollFd{{Fd: int32(t.fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil || n <= 0 {
		return false
	}
	return fds[0].Revents&unix.POLLIN != 0
}

// ReadByte blocks until one byte is available on stdin and returns it.
// End-of-file is reported as (0xFFFF, nil), not an error: it is the
// widened form of getchar()'s EOF sentinel, and lc3.Machine stores it
// into a register verbatim rather than treating it as a failure.
func (t *Terminal) ReadByte() (uint16, error) {
	var b [1]byte
	if _, err := os.Stdin.Read(b[:]); err != nil {
		if err == io.EOF {
			return 0xFFFF, nil
		}
		return 0, err
	}
	return uint16(b[0]), nil
}

// WriteByte writes a single byte to the buffered stdout writer.
func (t *Terminal) WriteByte(b byte) error {
	return t.out.WriteByte(b)
}

// Flush flushes buffered output to stdout.
func (t *Terminal) Flush() error {
	return t.out.Flush()
}
