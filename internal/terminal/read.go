package terminal

import (
	"time"

	"golang.org/x/sys/unix"
)

// readTimeout bounds every raw byte read; expiry means "no data yet",
// not an error. This is the editor's only idle point.
const readTimeout = 100 * time.Millisecond

var (
	unixSelect = unix.Select
	unixRead   = unix.Read
)

// ReadByteTimeout waits up to readTimeout for one byte of input. The
// second return value reports whether a byte arrived; a timeout is not
// an error.
func (t *Terminal) ReadByteTimeout() (byte, bool, error) {
	fd := int(t.input.Fd())
	for {
		var readfds unix.FdSet
		fdSetAdd(&readfds, fd)
		tv := unix.NsecToTimeval(readTimeout.Nanoseconds())
		n, err := unixSelect(fd+1, &readfds, nil, nil, &tv)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, false, err
		}
		if n == 0 || !fdSetHas(&readfds, fd) {
			return 0, false, nil
		}
		break
	}

	var buf [1]byte
	for {
		n, err := unixRead(int(t.input.Fd()), buf[:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, false, err
		}
		if n == 0 {
			return 0, false, nil
		}
		return buf[0], true, nil
	}
}

func fdSetAdd(set *unix.FdSet, fd int) {
	if fd < 0 {
		return
	}
	set.Bits[fd/64] |= 1 << (uint(fd) % 64)
}

func fdSetHas(set *unix.FdSet, fd int) bool {
	if fd < 0 {
		return false
	}
	return set.Bits[fd/64]&(1<<(uint(fd)%64)) != 0
}
