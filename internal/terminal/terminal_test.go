package terminal

import (
	"errors"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestSizeFallsBackToOutputFd(t *testing.T) {
	original := termGetSize
	t.Cleanup(func() {
		termGetSize = original
	})

	var seen []int
	termGetSize = func(fd int) (int, int, error) {
		seen = append(seen, fd)
		if fd == 10 {
			return 0, 0, errors.New("no size")
		}
		if fd == 11 {
			return 80, 24, nil
		}
		return 0, 0, errors.New("unexpected fd")
	}

	input := os.NewFile(uintptr(10), "input-fd")
	output := os.NewFile(uintptr(11), "output-fd")
	t.Cleanup(func() {
		_ = input.Close()
		_ = output.Close()
	})

	tm := &Terminal{input: input, output: output}
	rows, cols, err := tm.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if rows != 24 || cols != 80 {
		t.Fatalf("size = %dx%d, want 24x80", rows, cols)
	}
	if len(seen) != 2 {
		t.Fatalf("expected both descriptors to be attempted, got %v", seen)
	}
}

func TestReadByteTimeoutReportsNoData(t *testing.T) {
	origSelect, origRead := unixSelect, unixRead
	t.Cleanup(func() {
		unixSelect, unixRead = origSelect, origRead
	})

	unixSelect = func(nfd int, r, w, e *unix.FdSet, timeout *unix.Timeval) (int, error) {
		return 0, nil
	}
	unixRead = func(fd int, p []byte) (int, error) {
		t.Fatalf("read should not run when select times out")
		return 0, nil
	}

	input := os.NewFile(uintptr(9), "input-fd")
	t.Cleanup(func() { _ = input.Close() })
	tm := &Terminal{input: input}

	b, ok, err := tm.ReadByteTimeout()
	if err != nil {
		t.Fatalf("ReadByteTimeout: %v", err)
	}
	if ok || b != 0 {
		t.Fatalf("timeout returned byte %v ok=%v", b, ok)
	}
}

func TestReadByteTimeoutDeliversByte(t *testing.T) {
	origSelect, origRead := unixSelect, unixRead
	t.Cleanup(func() {
		unixSelect, unixRead = origSelect, origRead
	})

	unixSelect = func(nfd int, r, w, e *unix.FdSet, timeout *unix.Timeval) (int, error) {
		return 1, nil
	}
	unixRead = func(fd int, p []byte) (int, error) {
		p[0] = 'q'
		return 1, nil
	}

	input := os.NewFile(uintptr(9), "input-fd")
	t.Cleanup(func() { _ = input.Close() })
	tm := &Terminal{input: input}

	b, ok, err := tm.ReadByteTimeout()
	if err != nil {
		t.Fatalf("ReadByteTimeout: %v", err)
	}
	if !ok || b != 'q' {
		t.Fatalf("got byte %q ok=%v, want 'q' true", b, ok)
	}
}

func TestReadByteTimeoutPropagatesError(t *testing.T) {
	origSelect := unixSelect
	t.Cleanup(func() { unixSelect = origSelect })

	wantErr := errors.New("terminal gone")
	unixSelect = func(nfd int, r, w, e *unix.FdSet, timeout *unix.Timeval) (int, error) {
		return 0, wantErr
	}

	input := os.NewFile(uintptr(9), "input-fd")
	t.Cleanup(func() { _ = input.Close() })
	tm := &Terminal{input: input}

	if _, _, err := tm.ReadByteTimeout(); !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want %v", err, wantErr)
	}
}
