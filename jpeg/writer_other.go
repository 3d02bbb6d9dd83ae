//go:build !unix

package jpeg

import "os"

// writeAll writes every buffer in order, looping on partial progress.
func writeAll(f *os.File, bufs [][]byte) error {
	bufs = advance(bufs, 0)
	for len(bufs) > 0 {
		n, err := f.Write(bufs[0])
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
