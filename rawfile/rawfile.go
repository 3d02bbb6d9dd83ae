// Package rawfile maps RAW files into memory and exposes their contents as
// read-only byte slices.
package rawfile

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// File is an owning handle over a memory-mapped, read-only file. Views
// returned by Bytes borrow from the mapping and must not be used after Close.
type File struct {
	f    *os.File
	data mmap.MMap
}

// Open maps path into memory, sized to the file length at open time, and
// hints the kernel that access will be random (the IFD chain visits
// non-sequential regions).
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}

	rf := &File{f: f, data: data}
	rf.adviseRandom()

	return rf, nil
}

// Bytes returns the mapped contents. The slice is only valid until Close.
func (rf *File) Bytes() []byte {
	return rf.data
}

// Close unmaps the file and closes the underlying handle. The File and any
// slice obtained from Bytes must not be used afterwards.
func (rf *File) Close() error {
	err := rf.data.Unmap()
	if cerr := rf.f.Close(); err == nil {
		err = cerr
	}
	return err
}
