//go:build unix

package jpeg

import (
	"os"

	"golang.org/x/sys/unix"
)

// writeAll writes every buffer in order with writev, looping until all bytes
// are transferred. A single call may stop partway through any buffer, so
// consumed prefixes are trimmed between rounds.
func writeAll(f *os.File, bufs [][]byte) error {
	fd := int(f.Fd())
	bufs = advance(bufs, 0)
	for len(bufs) > 0 {
		n, err := unix.Writev(fd, bufs)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrShortWrite
		}
		bufs = advance(bufs, n)
	}
	return nil
}
