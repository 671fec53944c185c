package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/encscan/encscan/pkg/config"
	"github.com/encscan/encscan/pkg/detect"
	"github.com/encscan/encscan/pkg/report"
	"github.com/encscan/encscan/pkg/scan"
	"github.com/encscan/encscan/pkg/util"
	"github.com/encscan/encscan/pkg/watch"
)

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Detect the encoding of every file under a directory",
	Long: `Walk a directory tree and detect the encoding of every regular file.
Unreadable files are reported as errors in the summary without aborting
the scan.

Examples:
  encscan scan ./corpus
  encscan scan --workers 8 /var/log
  encscan scan --raw-gzip ./archives`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>...",
	Short: "Re-detect files whenever they change",
	Long: `Watch one or more files and re-run detection on every write,
printing label transitions. Stop with Ctrl-C.

Examples:
  encscan watch upload.csv
  encscan watch a.txt b.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := args[0]
	opts := scan.Options{
		Workers:    cfg.Scan.Workers,
		SampleSize: cfg.Detect.SampleSize,
		FollowGzip: cfg.Scan.FollowGzip,
	}

	if !noProgress {
		total, err := scan.CountFiles(root)
		if err != nil {
			return err
		}
		opts.Progress = progressbar.NewOptions(total,
			progressbar.OptionSetDescription("scanning"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionClearOnFinish(),
		)
	}

	scanner := scan.NewScanner(cfg.NewDetector(), opts)
	rep, err := scanner.Run(cmd.Context(), root)
	if err != nil {
		return err
	}

	report.WriteScanReport(cmd.OutOrStdout(), rep)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	w, err := watch.NewWatcher(cfg.NewDetector(), cfg.Detect.SampleSize, cfg.Watch.Debounce)
	if err != nil {
		return err
	}
	defer w.Close()

	out := cmd.OutOrStdout()
	w.OnChange = func(c watch.Change) {
		if c.Previous == detect.EncodingUnknown && c.Previous != c.Current {
			fmt.Fprintf(out, "%s: %s\n", c.Path, c.Current)
			return
		}
		if c.Previous != c.Current {
			fmt.Fprintf(out, "%s: %s → %s\n", c.Path, c.Previous, c.Current)
			return
		}
		if verbose {
			fmt.Fprintf(out, "%s: %s (unchanged)\n", c.Path, c.Current)
		}
	}
	w.OnError = func(path string, err error) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
	}

	for _, path := range args {
		if err := w.Watch(path); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// readSample reads the leading sample of one file for single-file mode.
func readSample(cfg *config.Config, path string) ([]byte, error) {
	return util.ReadSample(path, cfg.Detect.SampleSize)
}
