package icon

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// Target describes one icon file to emit.
type Target struct {
	File     string // File name inside the output directory
	Size     int    // Width and height in pixels
	Maskable bool   // Shrink the badge to fit the maskable safe zone
}

// DefaultTargets are the icons the web manifest references.
func DefaultTargets() []Target {
	return []Target{
		{File: "pwa-192.png", Size: 192},
		{File: "pwa-512.png", Size: 512},
		{File: "pwa-512-maskable.png", Size: 512, Maskable: true},
	}
}

// Result reports a written icon.
type Result struct {
	Target Target
	Path   string
	Bytes  int
	CRC    uint32 // Checksum of the whole file, handy for spotting drift
}

type options struct {
	compressor Compressor
	logger     *log.Logger
}

// Option customises Generate.
type Option func(*options)

// WithCompressor selects the IDAT compressor (default: best zlib).
func WithCompressor(c Compressor) Option {
	return func(o *options) {
		o.compressor = c
	}
}

// WithLogger reports each written file at debug level.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// Generate writes every target into dir, creating dir if needed.
// Targets are processed in order; the first failure aborts the run
// and files already written are left in place.
func Generate(dir string, targets []Target, opts ...Option) ([]Result, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.compressor == nil {
		c, err := CompressorFor(CompressionBest)
		if err != nil {
			return nil, err
		}
		o.compressor = c
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("icon: cannot create directory %s: %w", dir, err)
	}

	results := make([]Result, 0, len(targets))
	for _, t := range targets {
		if t.Size <= 0 {
			return results, fmt.Errorf("icon: %s: invalid size %d", t.File, t.Size)
		}

		data, err := Render(t.Size, t.Maskable, o.compressor)
		if err != nil {
			return results, fmt.Errorf("icon: %s: %w", t.File, err)
		}

		path := filepath.Join(dir, t.File)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return results, fmt.Errorf("icon: cannot write %s: %w", path, err)
		}

		r := Result{Target: t, Path: path, Bytes: len(data), CRC: Checksum(data)}
		results = append(results, r)

		if o.logger != nil {
			o.logger.Debug("wrote icon",
				"path", path,
				"size", t.Size,
				"maskable", t.Maskable,
				"bytes", r.Bytes,
				"crc", fmt.Sprintf("%08x", r.CRC),
			)
		}
	}

	return results, nil
}
