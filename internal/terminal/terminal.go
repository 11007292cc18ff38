// Package terminal owns the controlling terminal: raw-mode enable and
// guaranteed restore, size queries, bounded-timeout byte reads, and
// atomic frame writes.
package terminal

import (
	"errors"
	"os"

	"golang.org/x/term"
)

// Injection points for tests.
var (
	termMakeRaw = term.MakeRaw
	termRestore = term.Restore
	termGetSize = term.GetSize
)

// Terminal wraps the tty the editor runs on. The raw-mode state is
// process-global; Restore must run on every exit path.
type Terminal struct {
	input    *os.File
	output   *os.File
	rawState *term.State
}

// Open acquires the controlling terminal, preferring /dev/tty so the
// editor works even when stdin is redirected.
func Open() (*Terminal, error) {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("no tty available")
		}
		return &Terminal{input: os.Stdin, output: os.Stdout}, nil
	}
	return &Terminal{input: tty, output: tty}, nil
}

// EnableRaw puts the terminal into raw mode, remembering the previous
// state for Restore.
func (t *Terminal) EnableRaw() error {
	state, err := termMakeRaw(int(t.input.Fd()))
	if err != nil {
		return err
	}
	t.rawState = state
	return nil
}

// Restore returns the terminal to its original cooked mode. Safe to
// call more than once.
func (t *Terminal) Restore() {
	if t.rawState != nil {
		_ = termRestore(int(t.input.Fd()), t.rawState)
		t.rawState = nil
	}
}

// Close restores the terminal and releases /dev/tty if it was opened.
func (t *Terminal) Close() {
	t.Restore()
	if t.input != nil && t.input.Name() == "/dev/tty" {
		_ = t.input.Close()
	}
}

// Size reports the terminal dimensions as (rows, cols).
func (t *Terminal) Size() (int, int, error) {
	width, height, err := termGetSize(int(t.input.Fd()))
	if err != nil && t.output != nil && t.output != t.input {
		width, height, err = termGetSize(int(t.output.Fd()))
	}
	if err != nil {
		return 0, 0, err
	}
	return height, width, nil
}

// WriteFrame writes one composed frame in a single write so no partial
// frame is ever visible.
func (t *Terminal) WriteFrame(frame []byte) error {
	_, err := t.output.Write(frame)
	return err
}
