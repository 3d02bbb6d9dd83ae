package batch

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultExtensions lists the RAW file extensions recognized out of the box,
// matched case-insensitively.
var DefaultExtensions = []string{
	"arw", "cr2", "crw", "dng", "erf", "kdc", "mef", "mrw", "nef", "nrw",
	"orf", "pef", "raf", "raw", "rw2", "rwl", "sr2", "srf", "srw", "x3f",
}

// workItem pairs a discovered RAW file with its destination path.
type workItem struct {
	src string
	dst string
}

func extensionSet(extra string) map[string]struct{} {
	set := make(map[string]struct{}, len(DefaultExtensions)+1)
	for _, ext := range DefaultExtensions {
		set[ext] = struct{}{}
	}
	if extra != "" {
		set[strings.TrimPrefix(extra, ".")] = struct{}{}
	}
	return set
}

// scanTree enumerates every file beneath inputDir whose extension is in exts
// and mirrors, under outputDir, each subdirectory that holds at least one
// match, so extraction tasks never create directories. Traversal keeps an
// explicit queue of pending directories: depth is unbounded without stack
// risk. Destinations re-root the source path under outputDir with a .jpg
// extension.
func scanTree(inputDir, outputDir string, exts map[string]struct{}) ([]workItem, error) {
	var items []workItem

	pending := []string{""}
	for len(pending) > 0 {
		rel := pending[0]
		pending = pending[1:]

		entries, err := os.ReadDir(filepath.Join(inputDir, rel))
		if err != nil {
			return nil, err
		}

		mirrored := false
		for _, entry := range entries {
			if entry.IsDir() {
				pending = append(pending, filepath.Join(rel, entry.Name()))
				continue
			}
			if !entry.Type().IsRegular() {
				continue
			}

			name := entry.Name()
			ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
			if _, ok := exts[ext]; !ok {
				continue
			}

			if !mirrored {
				if err := os.MkdirAll(filepath.Join(outputDir, rel), 0o755); err != nil {
					return nil, err
				}
				mirrored = true
			}

			items = append(items, workItem{
				src: filepath.Join(inputDir, rel, name),
				dst: filepath.Join(outputDir, rel, strings.TrimSuffix(name, filepath.Ext(name))+".jpg"),
			})
		}
	}

	return items, nil
}
