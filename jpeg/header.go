// Package jpeg writes extracted preview bytes out as standalone JPEG files,
// prepending a synthesized EXIF orientation header.
package jpeg

import "encoding/binary"

// HeaderSize is the size of the synthesized SOI + APP1 block, in bytes.
const HeaderSize = 34

// OrientationHeader builds the JPEG SOI marker followed by a minimal APP1
// block whose single IFD entry encodes the given orientation. Embedded
// previews carry no EXIF segment of their own, so the block is always
// emitted; 0 (no orientation seen in the source) encodes as 1, the EXIF
// "normal" orientation.
func OrientationHeader(orientation uint16) []byte {
	if orientation == 0 {
		orientation = 1
	}

	header := []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xE1, 0x00, 0x1E, // APP1, length 30 (includes the length bytes)
		'E', 'x', 'i', 'f', 0x00, 0x00,
		0x49, 0x49, 0x2A, 0x00, // inner TIFF header, little-endian
		0x08, 0x00, 0x00, 0x00, // offset to inner IFD
		0x01, 0x00, // one entry
		0x12, 0x01, // Orientation
		0x03, 0x00, // SHORT
		0x01, 0x00, 0x00, 0x00, // count
		0x00, 0x00, // value, patched below
		0x00, 0x00,
	}
	binary.LittleEndian.PutUint16(header[30:32], orientation)

	return header
}
