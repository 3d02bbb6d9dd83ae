// Package tiff locates the embedded JPEG previews of TIFF-based camera RAW
// files (e.g. CR2, NEF, ARW, ORF) without copying file contents.
package tiff

import (
	"encoding/binary"
	"fmt"
)

// Preview describes an embedded JPEG located inside a RAW file. The zero
// value (Length == 0) means "nothing found". Orientation is 0 when the IFD
// carried no Orientation entry.
type Preview struct {
	Offset      uint32
	Length      uint32
	Orientation uint16
}

// FindLargestPreview walks the IFD chain of a whole RAW file held in data and
// returns the descriptor of the largest embedded JPEG. It never copies file
// contents: every length and offset is validated against the buffer before it
// is dereferenced, and a malformed directory fails the whole file.
func FindLargestPreview(data []byte) (Preview, error) {
	if len(data) < 8 {
		return Preview{}, fmt.Errorf("%w: not enough data (%d bytes)", ErrNotTiff, len(data))
	}

	byteOrder, err := readEndianness(data[0:2])
	if err != nil {
		return Preview{}, err
	}
	if err := validateMagicNumber(byteOrder, data[2:4]); err != nil {
		return Preview{}, err
	}

	size := uint64(len(data))
	offset := uint64(byteOrder.Uint32(data[4:8]))

	var best Preview
	visited := make(map[uint64]struct{})
	for offset != 0 {
		if _, ok := visited[offset]; ok {
			return Preview{}, fmt.Errorf("%w: offset 0x%x seen twice", ErrIfdLoop, offset)
		}
		visited[offset] = struct{}{}

		if offset+2 > size {
			return Preview{}, fmt.Errorf("%w: invalid IFD offset 0x%x", ErrTruncated, offset)
		}
		numEntries := uint64(byteOrder.Uint16(data[offset : offset+2]))
		tableEnd := offset + 2 + numEntries*EntryLength
		if tableEnd > size {
			return Preview{}, fmt.Errorf("%w: invalid entry count %d at offset 0x%x", ErrTruncated, numEntries, offset)
		}

		var (
			current              Preview
			hasOffset, hasLength bool
		)
		for i := uint64(0); i < numEntries; i++ {
			entry := data[offset+2+i*EntryLength:][:EntryLength]
			switch byteOrder.Uint16(entry[0:2]) {
			case Orientation:
				// SHORT values occupy the first 2 bytes of the value field
				current.Orientation = byteOrder.Uint16(entry[8:10])
			case PreviewOffset:
				current.Offset = byteOrder.Uint32(entry[8:12])
				hasOffset = true
			case PreviewLength:
				current.Length = byteOrder.Uint32(entry[8:12])
				hasLength = true
			}
			// No point in scanning the IFD further: cameras write Orientation
			// before the preview pointer tags.
			if hasOffset && hasLength {
				break
			}
		}
		if hasOffset && hasLength && current.Length > best.Length {
			best = current
		}

		if tableEnd+4 > size {
			return Preview{}, fmt.Errorf("%w: invalid next IFD offset at 0x%x", ErrTruncated, tableEnd)
		}
		offset = uint64(byteOrder.Uint32(data[tableEnd : tableEnd+4]))
	}

	if best.Length == 0 {
		return Preview{}, ErrNoPreview
	}
	if uint64(best.Offset)+uint64(best.Length) > size {
		return Preview{}, fmt.Errorf("%w: [0x%x, 0x%x) > 0x%x", ErrBounds, best.Offset, uint64(best.Offset)+uint64(best.Length), size)
	}

	return best, nil
}

// readEndianness reads and returns the endianness of the metadata.
func readEndianness(buffer []byte) (binary.ByteOrder, error) {
	// Note: the value of these 2 bytes is endianness-independent, so I can use any byte order to read them.
	value := binary.LittleEndian.Uint16(buffer)
	switch value {
	case IntelByteOrder:
		return binary.LittleEndian, nil
	case MotorolaByteOrder:
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: unknown endianness: 0x%X", ErrNotTiff, value)
	}
}

// validateMagicNumber validates the file type by checking that the magic,
// read in the byte order the header declares, is the TIFF or ORF value. A
// magic stored in the opposite order is rejected: the header contradicts
// itself.
func validateMagicNumber(byteOrder binary.ByteOrder, buffer []byte) error {
	magicNumber := byteOrder.Uint16(buffer)
	if magicNumber != MagicNumber && magicNumber != OrfMagicNumber {
		return fmt.Errorf("%w: unknown magic number: 0x%X", ErrNotTiff, magicNumber)
	}
	return nil
}
