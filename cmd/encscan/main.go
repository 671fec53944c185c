// encscan - Charset detection for text files
// Guesses the character encoding of files from byte statistics.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/encscan/encscan/pkg/config"
	"github.com/encscan/encscan/pkg/report"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

// CLI flags
var (
	verbose    bool
	sampleSize int

	// Scan flags
	scanWorkers int
	noProgress  bool
	rawGzip     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "encscan [-v] <file>",
	Short: "encscan - Guess the character encoding of a file",
	Long: `encscan guesses the character encoding of a file by statistical and
structural analysis of its leading bytes. It recognizes BOM-tagged Unicode
variants, UTF-8, ASCII, Latin-1, GB2312, GBK, Big5, UTF-16 (inferred from
NUL placement), and raw binary; anything else is reported as "unknown".

Examples:
  encscan notes.txt
  encscan -v page.html
  encscan logs.txt.gz
  encscan scan ./corpus
  encscan watch config.ini`,
	Version: fmt.Sprintf("%s (%s)", version, commit),
	Args:    cobra.ExactArgs(1),
	RunE:    runDetect,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"print byte and double-byte statistics before the label")
	rootCmd.PersistentFlags().IntVar(&sampleSize, "sample-size", 0,
		"leading bytes to analyze per file (0 = config default)")

	scanCmd.Flags().IntVar(&scanWorkers, "workers", 0,
		"concurrent detection workers (0 = config default)")
	scanCmd.Flags().BoolVar(&noProgress, "no-progress", false,
		"disable the progress bar")
	scanCmd.Flags().BoolVar(&rawGzip, "raw-gzip", false,
		"analyze .gz files as raw streams instead of decompressing")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfig loads file configuration and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if sampleSize > 0 {
		cfg.Detect.SampleSize = sampleSize
	}
	if scanWorkers > 0 {
		cfg.Scan.Workers = scanWorkers
	}
	if rawGzip {
		cfg.Scan.FollowGzip = false
	}
	return cfg, nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sample, err := readSample(cfg, args[0])
	if err != nil {
		return err
	}

	analysis := cfg.NewDetector().Analyze(sample)
	if verbose {
		report.WriteAnalysis(cmd.OutOrStdout(), analysis)
	}
	report.WriteLabel(cmd.OutOrStdout(), analysis.Encoding)
	return nil
}
