package main

import (
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/fedragon/rawpreview/batch"
)

var (
	transfers int
	extension string
)

var rootCmd = &cobra.Command{
	Use:          "rawpreview",
	Short:        "Extract embedded JPEG previews from RAW camera files",
	SilenceUsage: true,
}

var extractCmd = &cobra.Command{
	Use:   "extract INPUT_DIR [OUTPUT_DIR]",
	Short: "Extract the largest embedded JPEG of every RAW file under a directory",
	Long: `Extract recursively scans INPUT_DIR for RAW files, locates the largest
embedded JPEG preview of each, and writes it under OUTPUT_DIR (default:
current directory), mirroring the input layout with a .jpg extension.

Recognized extensions: ` + strings.Join(batch.DefaultExtensions, ", ") + `.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := batch.Config{
			InputDir:       args[0],
			OutputDir:      ".",
			Transfers:      transfers,
			ExtraExtension: extension,
			NewProgress:    newProgressBar,
		}
		if len(args) == 2 {
			cfg.OutputDir = args[1]
		}
		return batch.Run(cmd.Context(), cfg)
	},
}

func newProgressBar(total int) batch.Progress {
	return &barProgress{bar: progressbar.Default(int64(total), "extracting")}
}

type barProgress struct {
	bar *progressbar.ProgressBar
}

func (p *barProgress) Add(n int) { _ = p.bar.Add(n) }
func (p *barProgress) Finish()   { _ = p.bar.Finish() }

func init() {
	extractCmd.Flags().IntVarP(&transfers, "transfers", "t", batch.DefaultTransfers, "how many files to process at once")
	extractCmd.Flags().StringVarP(&extension, "extension", "e", "", "look for this extension in addition to the default list")
	rootCmd.AddCommand(extractCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
