package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"

	"github.com/fedragon/rawpreview/jpeg"
	"github.com/fedragon/rawpreview/test"
	"github.com/fedragon/rawpreview/tiff"
)

// rawWithPreview builds a minimal little-endian RAW container embedding
// payload at offset 50, announced by a single 3-entry IFD.
func rawWithPreview(orientation uint16, payload []byte) []byte {
	return test.NewBytesBuilder().
		WithBytes(0x49, 0x49, 0x2A, 0x00).
		WithUints32(8).
		WithUints16(3).
		WithShortEntry(tiff.Orientation, orientation).
		WithEntry(tiff.PreviewOffset, 4, 1, 50).
		WithEntry(tiff.PreviewLength, 4, 1, uint32(len(payload))).
		WithUints32(0).
		WithBytes(payload...).
		Bytes()
}

var jpegPayload = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x10, 0x20, 0x30, 0xFF, 0xD9}

func TestScanTree(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writeEmpty := func(rel string) {
		path := filepath.Join(inputDir, rel)
		assert.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		assert.NoError(t, os.WriteFile(path, nil, 0o644))
	}
	writeEmpty("one.ARW")
	writeEmpty("notes.txt")
	writeEmpty(filepath.Join("a", "two.nef"))
	writeEmpty(filepath.Join("a", "b", "three.Rw2"))
	writeEmpty(filepath.Join("a", "b", "skip.jpeg"))
	writeEmpty(filepath.Join("empty", "nothing.txt"))
	writeEmpty("four.xyz")

	items, err := scanTree(inputDir, outputDir, extensionSet("xyz"))
	assert.NoError(t, err)

	var dsts []string
	for _, item := range items {
		dsts = append(dsts, item.dst)
	}
	assert.ElementsMatch(t, []string{
		filepath.Join(outputDir, "one.jpg"),
		filepath.Join(outputDir, "four.jpg"),
		filepath.Join(outputDir, "a", "two.jpg"),
		filepath.Join(outputDir, "a", "b", "three.jpg"),
	}, dsts)

	// only directories holding matches are mirrored
	assert.DirExists(t, filepath.Join(outputDir, "a", "b"))
	assert.NoDirExists(t, filepath.Join(outputDir, "empty"))
}

func TestScanTree_ExtraExtensionIsVerbatim(t *testing.T) {
	inputDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(inputDir, "one.xyz"), nil, 0o644))

	// lookups lowercase the file's extension, so an upper-case extra never matches
	items, err := scanTree(inputDir, t.TempDir(), extensionSet("XYZ"))
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestRun_MixedFailures(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("good%d.arw", i)
		assert.NoError(t, os.WriteFile(filepath.Join(inputDir, name), rawWithPreview(6, jpegPayload), 0o644))
	}
	corrupt := []byte{0x12, 0x34, 0x56, 0x78, 0x00, 0x00, 0x00, 0x00}
	assert.NoError(t, os.WriteFile(filepath.Join(inputDir, "bad0.arw"), corrupt, 0o644))
	assert.NoError(t, os.WriteFile(filepath.Join(inputDir, "bad1.arw"), corrupt, 0o644))

	var errOut bytes.Buffer
	err := Run(context.Background(), Config{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Transfers: 4,
		ErrOut:    &errOut,
	})

	assert.EqualError(t, err, "2 files failed to process")

	var merr *multierror.Error
	assert.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)

	assert.Contains(t, errOut.String(), "Error processing file")
	assert.Contains(t, errOut.String(), "bad0.arw")

	expected := append(jpeg.OrientationHeader(6), jpegPayload[2:]...)
	for i := 0; i < 8; i++ {
		written, err := os.ReadFile(filepath.Join(outputDir, fmt.Sprintf("good%d.jpg", i)))
		assert.NoError(t, err)
		assert.Equal(t, expected, written)
	}
	assert.NoFileExists(t, filepath.Join(outputDir, "bad0.jpg"))
}

func TestRun_Idempotent(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	assert.NoError(t, os.WriteFile(filepath.Join(inputDir, "one.nef"), rawWithPreview(0, jpegPayload), 0o644))

	cfg := Config{InputDir: inputDir, OutputDir: outputDir, ErrOut: io.Discard}
	assert.NoError(t, Run(context.Background(), cfg))
	first, err := os.ReadFile(filepath.Join(outputDir, "one.jpg"))
	assert.NoError(t, err)

	assert.NoError(t, Run(context.Background(), cfg))
	second, err := os.ReadFile(filepath.Join(outputDir, "one.jpg"))
	assert.NoError(t, err)

	assert.Equal(t, first, second)
	// no orientation in the source still yields the default APP1 block
	assert.Equal(t, append(jpeg.OrientationHeader(1), jpegPayload[2:]...), first)
}

func TestRun_ConcurrencyBound(t *testing.T) {
	items := make([]workItem, 30)
	for i := range items {
		items[i] = workItem{src: fmt.Sprintf("file%d", i)}
	}

	var current, peak atomic.Int32
	process := func(src, dst string) error {
		c := current.Add(1)
		defer current.Add(-1)
		for {
			p := peak.Load()
			if c <= p || peak.CompareAndSwap(p, c) {
				break
			}
		}
		time.Sleep(time.Millisecond)
		return nil
	}

	cfg := Config{Transfers: 2, ErrOut: io.Discard}
	assert.NoError(t, run(context.Background(), cfg, items, process))
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRun_ConcurrentFailureReporting(t *testing.T) {
	// every task fails at once into one shared writer; reporting must stay
	// serialized (run under -race) and lose no lines
	const n = 256
	items := make([]workItem, n)
	for i := range items {
		items[i] = workItem{src: fmt.Sprintf("file%d", i)}
	}

	var errOut bytes.Buffer
	cfg := Config{Transfers: 64, ErrOut: &errOut}
	err := run(context.Background(), cfg, items, func(src, dst string) error {
		return errors.New("boom")
	})

	assert.EqualError(t, err, fmt.Sprintf("%d files failed to process", n))

	var merr *multierror.Error
	assert.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, n)

	lines := strings.Split(strings.TrimSuffix(errOut.String(), "\n"), "\n")
	assert.Len(t, lines, n)
	for _, line := range lines {
		assert.Regexp(t, `^Error processing file file\d+: boom$`, line)
	}
}

func TestRun_ProgressReportsEveryCompletion(t *testing.T) {
	items := make([]workItem, 10)
	for i := range items {
		items[i] = workItem{src: fmt.Sprintf("file%d", i)}
	}

	counter := &countingProgress{}
	process := func(src, dst string) error {
		if src == "file3" || src == "file7" {
			return errors.New("boom")
		}
		return nil
	}

	cfg := Config{
		Transfers:   4,
		ErrOut:      io.Discard,
		NewProgress: func(total int) Progress { counter.total = total; return counter },
	}
	err := run(context.Background(), cfg, items, process)

	assert.EqualError(t, err, "2 files failed to process")
	assert.Equal(t, 10, counter.total)
	assert.EqualValues(t, 10, counter.added.Load())
	assert.True(t, counter.finished)
}

type countingProgress struct {
	total    int
	added    atomic.Int32
	finished bool
}

func (p *countingProgress) Add(n int) { p.added.Add(int32(n)) }
func (p *countingProgress) Finish()   { p.finished = true }
