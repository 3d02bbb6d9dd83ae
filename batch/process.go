package batch

import (
	"github.com/fedragon/rawpreview/jpeg"
	"github.com/fedragon/rawpreview/rawfile"
	"github.com/fedragon/rawpreview/tiff"
)

// processFile extracts the largest embedded JPEG of one RAW file. The mapped
// source buffer lives exactly as long as this call; the preview slice
// borrows from it and is fully written out before the unmap.
func processFile(src, dst string) error {
	f, err := rawfile.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	data := f.Bytes()
	preview, err := tiff.FindLargestPreview(data)
	if err != nil {
		return err
	}

	// the bulk copy that follows reads this range front to back
	offset := int(preview.Offset)
	f.Prefetch(offset, int(preview.Length))

	return jpeg.WriteFile(dst, data[offset:offset+int(preview.Length)], preview.Orientation)
}
