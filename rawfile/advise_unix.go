//go:build unix

package rawfile

import (
	"os"

	"golang.org/x/sys/unix"
)

// Advise calls are hints: when the kernel refuses one, reads still work, only
// slower, so errors are discarded.

func (rf *File) adviseRandom() {
	if len(rf.data) == 0 {
		return
	}
	_ = unix.Madvise(rf.data, unix.MADV_RANDOM)
}

// Prefetch hints that the byte range [offset, offset+length) is needed
// immediately. The range is widened down to a page boundary, as madvise
// rejects unaligned addresses.
func (rf *File) Prefetch(offset, length int) {
	if length <= 0 || offset < 0 || offset >= len(rf.data) {
		return
	}
	start := offset &^ (os.Getpagesize() - 1)
	end := offset + length
	if end > len(rf.data) {
		end = len(rf.data)
	}
	_ = unix.Madvise(rf.data[start:end], unix.MADV_WILLNEED)
}
