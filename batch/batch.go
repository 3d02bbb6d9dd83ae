// Package batch discovers RAW files under a directory tree and extracts
// their embedded JPEG previews under a bounded concurrency cap.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/semaphore"
)

// DefaultTransfers is the number of files processed at once when Config does
// not say otherwise.
const DefaultTransfers = 8

// Progress receives one Add per completed file, success or not, and a final
// Finish once the batch has drained.
type Progress interface {
	Add(n int)
	Finish()
}

// Config drives one batch run.
type Config struct {
	// InputDir is the root to scan for RAW files.
	InputDir string
	// OutputDir is the root the extracted JPEGs are written under,
	// mirroring InputDir's layout. Defaults to the current directory.
	OutputDir string
	// Transfers caps how many files are processed simultaneously.
	Transfers int
	// ExtraExtension is matched in addition to the built-in extension list.
	ExtraExtension string
	// NewProgress, when set, builds the progress sink once the number of
	// discovered files is known.
	NewProgress func(total int) Progress
	// ErrOut receives per-file failure lines. Defaults to os.Stderr.
	ErrOut io.Writer
}

// Run scans cfg.InputDir, mirrors the output tree, and extracts the embedded
// JPEG of every discovered file. Per-file failures are reported on
// cfg.ErrOut and aggregated; they never stop the remaining files. The
// returned error is nil only if every file succeeded; scan failures are
// fatal and returned as-is.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transfers <= 0 {
		cfg.Transfers = DefaultTransfers
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.ErrOut == nil {
		cfg.ErrOut = os.Stderr
	}

	items, err := scanTree(cfg.InputDir, cfg.OutputDir, extensionSet(cfg.ExtraExtension))
	if err != nil {
		return err
	}

	return run(ctx, cfg, items, processFile)
}

func run(ctx context.Context, cfg Config, items []workItem, process func(src, dst string) error) error {
	var progress Progress = noopProgress{}
	if cfg.NewProgress != nil {
		progress = cfg.NewProgress(len(items))
	}

	sem := semaphore.NewWeighted(int64(cfg.Transfers))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		failures *multierror.Error
	)
	// mu also serializes writes to cfg.ErrOut: injected writers need not be
	// safe for concurrent use
	fail := func(src string, err error) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintf(cfg.ErrOut, "Error processing file %s: %v\n", src, err)
		failures = multierror.Append(failures, fmt.Errorf("%s: %w", src, err))
	}

	for _, item := range items {
		item := item
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer progress.Add(1)

			if err := sem.Acquire(ctx, 1); err != nil {
				fail(item.src, err)
				return
			}
			defer sem.Release(1)

			if err := process(item.src, item.dst); err != nil {
				fail(item.src, err)
			}
		}()
	}
	wg.Wait()
	progress.Finish()

	if failures != nil {
		failures.ErrorFormat = func(errs []error) string {
			if len(errs) == 1 {
				return "1 file failed to process"
			}
			return fmt.Sprintf("%d files failed to process", len(errs))
		}
	}
	return failures.ErrorOrNil()
}

type noopProgress struct{}

func (noopProgress) Add(int) {}
func (noopProgress) Finish() {}
