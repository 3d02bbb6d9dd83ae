package tiff

const (
	// EntryLength is the length of an IFD entry, in bytes
	EntryLength = 12

	// IntelByteOrder is the TIFF standard value to indicate Intel byte ordering (aka little-endian)
	IntelByteOrder = 0x4949
	// MotorolaByteOrder is the TIFF standard value to indicate Motorola byte ordering (aka big-endian)
	MotorolaByteOrder = 0x4D4D

	// MagicNumber is the TIFF standard magic (42), as read in the byte order
	// the header declares
	MagicNumber = 0x002A
	// OrfMagicNumber is the ORF-specific magic, as read in the byte order
	// the header declares
	OrfMagicNumber = 0x4F52

	// Orientation is the tag indicating the rotation/mirroring needed for correct display
	Orientation uint16 = 0x0112
	// PreviewOffset is the tag holding the byte offset of an embedded JPEG from the start
	// of the file (aka ThumbnailOffset when it appears in IFD#1)
	PreviewOffset uint16 = 0x0201
	// PreviewLength is the tag holding the byte length of an embedded JPEG (aka
	// ThumbnailLength when it appears in IFD#1)
	PreviewLength uint16 = 0x0202
)
