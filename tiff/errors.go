package tiff

import "errors"

var (
	// ErrNotTiff means the buffer does not start with a recognized TIFF header.
	ErrNotTiff = errors.New("not a valid TIFF")
	// ErrNoPreview means no IFD carried a complete embedded JPEG descriptor.
	ErrNoPreview = errors.New("no JPEG data found")
	// ErrTruncated means an IFD offset, entry table or next-IFD pointer falls
	// outside the buffer.
	ErrTruncated = errors.New("truncated IFD")
	// ErrIfdLoop means the next-IFD pointers revisit an already-walked
	// directory, which would never terminate.
	ErrIfdLoop = errors.New("IFD chain loops")
	// ErrBounds means the located JPEG range extends past the end of the buffer.
	ErrBounds = errors.New("JPEG data exceeds file size")
)
