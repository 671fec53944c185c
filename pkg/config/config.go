// Package config provides hierarchical configuration management.
// Priority: defaults < user < project < flags
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/encscan/encscan/pkg/detect"
	"github.com/encscan/encscan/pkg/errors"
)

// Config holds all encscan configuration.
type Config struct {
	Version int `yaml:"version"`

	Detect DetectConfig `yaml:"detect"`
	Scan   ScanConfig   `yaml:"scan"`
	Watch  WatchConfig  `yaml:"watch"`
}

// DetectConfig controls the detector.
type DetectConfig struct {
	// SampleSize is the number of leading bytes read per file.
	SampleSize int `yaml:"sample_size"`

	// ExtraPairs extends the built-in double-byte frequency table.
	ExtraPairs []PairEntry `yaml:"extra_pairs"`
}

// PairEntry is one user-supplied frequency-table entry.
type PairEntry struct {
	// Pair is the 16-bit double-byte value, e.g. 0xb5c4 or "b5c4".
	Pair uint16 `yaml:"pair"`

	// Encoding is the label the pair is characteristic of ("gbk", "big5").
	Encoding string `yaml:"encoding"`
}

// ScanConfig controls batch scanning.
type ScanConfig struct {
	// Workers is the number of concurrent detection workers. 0 = NumCPU.
	Workers int `yaml:"workers"`

	// FollowGzip enables transparent decompression of .gz inputs.
	FollowGzip bool `yaml:"follow_gzip"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: 1,
		Detect: DetectConfig{
			SampleSize: detect.DefaultSampleSize,
		},
		Scan: ScanConfig{
			Workers:    runtime.NumCPU(),
			FollowGzip: true,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
	}
}

// Load loads configuration from all file sources in priority order, starting
// from defaults. Missing files are skipped; malformed files are errors.
func Load() (*Config, error) {
	cfg := Default()
	for _, path := range configPaths() {
		if err := cfg.loadFile(path); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errors.Wrap(err, errors.CodeConfigParse, "load config").
				WithContext("path", path)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configPaths returns config file paths in priority order.
func configPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".encscan", "config.yaml"))
	}
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, ".encscan.yaml"))
	}
	return paths
}

// loadFile loads a single config file and merges its non-zero values.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var partial Config
	if err := yaml.Unmarshal(data, &partial); err != nil {
		return err
	}

	c.merge(&partial)
	return nil
}

// merge merges non-zero values from src.
func (c *Config) merge(src *Config) {
	if src.Detect.SampleSize != 0 {
		c.Detect.SampleSize = src.Detect.SampleSize
	}
	if len(src.Detect.ExtraPairs) > 0 {
		c.Detect.ExtraPairs = append(c.Detect.ExtraPairs, src.Detect.ExtraPairs...)
	}
	if src.Scan.Workers != 0 {
		c.Scan.Workers = src.Scan.Workers
	}
	if src.Watch.Debounce != 0 {
		c.Watch.Debounce = src.Watch.Debounce
	}
}

// Validate checks configuration consistency.
func (c *Config) Validate() error {
	if c.Detect.SampleSize <= 0 {
		return errors.New(errors.CodeConfigInvalid,
			fmt.Sprintf("detect.sample_size must be positive, got %d", c.Detect.SampleSize))
	}
	if c.Scan.Workers < 0 {
		return errors.New(errors.CodeConfigInvalid,
			fmt.Sprintf("scan.workers must not be negative, got %d", c.Scan.Workers))
	}
	for _, p := range c.Detect.ExtraPairs {
		if detect.ParseEncoding(p.Encoding) == detect.EncodingUnknown {
			return errors.New(errors.CodeConfigInvalid,
				fmt.Sprintf("detect.extra_pairs: unrecognized encoding %q", p.Encoding))
		}
	}
	return nil
}

// FreqEntries converts the configured extra pairs into detector entries.
// Validate must have passed first.
func (c *Config) FreqEntries() []detect.FreqEntry {
	entries := make([]detect.FreqEntry, 0, len(c.Detect.ExtraPairs))
	for _, p := range c.Detect.ExtraPairs {
		entries = append(entries, detect.FreqEntry{
			Pair:     p.Pair,
			Encoding: detect.ParseEncoding(p.Encoding),
		})
	}
	return entries
}

// NewDetector builds a detector from this configuration.
func (c *Config) NewDetector() *detect.Detector {
	return detect.NewDetector(c.FreqEntries()...)
}
