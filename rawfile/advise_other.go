//go:build !unix

package rawfile

// Access hints are not available outside unix; reads work without them.

func (rf *File) adviseRandom() {}

// Prefetch is a no-op on platforms without madvise.
func (rf *File) Prefetch(offset, length int) {}
