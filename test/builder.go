// Package test provides a chainable byte-buffer builder used to compose
// synthetic TIFF containers in tests.
package test

import "encoding/binary"

type endianness interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type BytesBuilder struct {
	byteOrder endianness
	buffer    []byte
}

func NewBytesBuilder() *BytesBuilder {
	return &BytesBuilder{
		byteOrder: binary.LittleEndian,
		buffer:    make([]byte, 0),
	}
}

func NewBigEndianBytesBuilder() *BytesBuilder {
	return &BytesBuilder{
		byteOrder: binary.BigEndian,
		buffer:    make([]byte, 0),
	}
}

func (bb *BytesBuilder) WithBytes(values ...byte) *BytesBuilder {
	bb.buffer = append(bb.buffer, values...)

	return bb
}

func (bb *BytesBuilder) WithString(value string) *BytesBuilder {
	bb.buffer = append(bb.buffer, []byte(value)...)

	return bb
}

func (bb *BytesBuilder) WithUints16(values ...uint16) *BytesBuilder {
	for _, value := range values {
		bb.buffer = bb.byteOrder.AppendUint16(bb.buffer, value)
	}

	return bb
}

func (bb *BytesBuilder) WithUints32(values ...uint32) *BytesBuilder {
	for _, value := range values {
		bb.buffer = bb.byteOrder.AppendUint32(bb.buffer, value)
	}

	return bb
}

// WithEntry appends a 12-byte IFD entry whose value field holds a 32-bit value.
func (bb *BytesBuilder) WithEntry(tag, dataType uint16, count, value uint32) *BytesBuilder {
	return bb.WithUints16(tag, dataType).WithUints32(count, value)
}

// WithShortEntry appends a 12-byte IFD entry whose value field holds a single
// SHORT in its first 2 bytes.
func (bb *BytesBuilder) WithShortEntry(tag uint16, value uint16) *BytesBuilder {
	return bb.WithUints16(tag, 3).WithUints32(1).WithUints16(value, 0)
}

// Pad grows the buffer with zero bytes until it is size bytes long.
func (bb *BytesBuilder) Pad(size int) *BytesBuilder {
	for len(bb.buffer) < size {
		bb.buffer = append(bb.buffer, 0x0)
	}

	return bb
}

func (bb *BytesBuilder) Bytes() []byte {
	return bb.buffer
}
