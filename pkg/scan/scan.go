// Package scan provides batch detection over directory trees.
package scan

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/encscan/encscan/internal/pool"
	"github.com/encscan/encscan/pkg/detect"
	"github.com/encscan/encscan/pkg/errors"
	"github.com/encscan/encscan/pkg/util"
)

// Result is the detection outcome for one file. Err and Encoding are
// mutually exclusive: unreadable files carry an error, not a label.
type Result struct {
	Path     string
	Size     int64
	Encoding detect.Encoding
	Err      error
}

// Report aggregates one scan session.
type Report struct {
	SessionID string
	Root      string
	Started   time.Time
	Elapsed   time.Duration
	Results   []Result

	// Tally counts files per label, errors excluded.
	Tally map[detect.Encoding]int

	Errors int
}

// Options configures a scan.
type Options struct {
	// Workers bounds detection concurrency; values below 1 mean 1. The
	// config layer defaults this to NumCPU.
	Workers int

	// SampleSize is the number of leading bytes read per file.
	SampleSize int

	// FollowGzip enables transparent decompression of .gz files.
	FollowGzip bool

	// Progress, when non-nil, receives one increment per finished file.
	Progress *progressbar.ProgressBar
}

// Scanner walks a directory tree and detects every regular file.
type Scanner struct {
	detector *detect.Detector
	opts     Options
	buffers  *pool.SamplePool
}

// NewScanner creates a scanner using the given detector.
func NewScanner(detector *detect.Detector, opts Options) *Scanner {
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.SampleSize <= 0 {
		opts.SampleSize = detect.DefaultSampleSize
	}
	return &Scanner{
		detector: detector,
		opts:     opts,
		buffers:  pool.NewSamplePool(opts.SampleSize),
	}
}

// CountFiles returns the number of regular files under root, for sizing a
// progress bar before Run.
func CountFiles(root string) (int, error) {
	n := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // counted as an error result during Run
		}
		if d.Type().IsRegular() {
			n++
		}
		return nil
	})
	return n, err
}

// Run scans root and returns the aggregated report. Individual file failures
// are recorded in the report; only walk-level failures and context
// cancellation abort the scan.
func (s *Scanner) Run(ctx context.Context, root string) (*Report, error) {
	started := time.Now()

	var paths []Result
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			paths = append(paths, Result{Path: path, Err: errors.ReadFailed(path, err)})
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		var size int64
		if info, err := d.Info(); err == nil {
			size = info.Size()
		}
		paths = append(paths, Result{Path: path, Size: size})
		return nil
	})
	if walkErr != nil {
		return nil, errors.Wrap(walkErr, errors.CodeFileRead, "walk failed").
			WithContext("root", root)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)

	results := make([]Result, len(paths))
	for i, r := range paths {
		i, r := i, r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return errors.Wrap(err, errors.CodeContextCanceled, "scan canceled")
			}
			if r.Err != nil {
				results[i] = r
			} else {
				results[i] = s.detectOne(r)
			}
			if s.opts.Progress != nil {
				s.opts.Progress.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})

	rep := &Report{
		SessionID: uuid.NewString(),
		Root:      root,
		Started:   started,
		Elapsed:   time.Since(started),
		Results:   results,
		Tally:     make(map[detect.Encoding]int),
	}
	for _, r := range results {
		if r.Err != nil {
			rep.Errors++
			continue
		}
		rep.Tally[r.Encoding]++
	}
	return rep, nil
}

func (s *Scanner) detectOne(r Result) Result {
	buf := s.buffers.Get()
	defer s.buffers.Put(buf)

	if !s.opts.FollowGzip && util.IsGzipFile(r.Path) {
		// Detect the raw stream instead of the decompressed content.
		f, err := os.Open(r.Path)
		if err != nil {
			r.Err = errors.ReadFailed(r.Path, err)
			return r
		}
		defer f.Close()
		n, _ := f.Read(buf)
		r.Encoding = s.detector.Detect(buf[:n])
		return r
	}

	n, err := util.ReadSampleInto(r.Path, buf)
	if err != nil {
		r.Err = err
		return r
	}
	r.Encoding = s.detector.Detect(buf[:n])
	return r
}
