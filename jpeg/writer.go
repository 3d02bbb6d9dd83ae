package jpeg

import (
	"errors"
	"fmt"
	"os"
)

// ErrShortWrite means a write call transferred zero bytes while data was
// still pending.
var ErrShortWrite = errors.New("short write")

// advance trims the first n bytes from bufs, which a write call has already
// transferred, and drops any buffers left empty. n may stop anywhere,
// including mid-buffer or exactly on a buffer boundary.
func advance(bufs [][]byte, n int) [][]byte {
	for len(bufs) > 0 && n >= len(bufs[0]) {
		n -= len(bufs[0])
		bufs = bufs[1:]
	}
	if len(bufs) > 0 {
		bufs[0] = bufs[0][n:]
	}
	return bufs
}

// WriteFile creates (or truncates) path and writes the synthesized
// orientation header followed by body with its own leading SOI marker
// stripped, so the output carries exactly one SOI. Header and body are
// handed to the kernel as one vectored write where the platform supports it,
// avoiding a concatenated copy of the preview.
func WriteFile(path string, body []byte, orientation uint16) error {
	if len(body) < 2 || body[0] != 0xFF || body[1] != 0xD8 {
		return fmt.Errorf("embedded JPEG does not start with an SOI marker")
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeAll(f, [][]byte{OrientationHeader(orientation), body[2:]}); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
