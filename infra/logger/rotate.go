package logger

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// RotateOptions configures a log file rotated by size.
type RotateOptions struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// NewRotatingWriter returns a writer appending to o.Path. The file is rotated
// once it exceeds MaxSizeMB; old files are pruned by count and age.
func NewRotatingWriter(o RotateOptions) (io.WriteCloser, error) {
	if o.Path == "" {
		return nil, errors.New("log file path is required")
	}
	// ensure directory exists
	if dir := filepath.Dir(o.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return &lumberjack.Logger{
		Filename:   o.Path,
		MaxSize:    o.MaxSizeMB,
		MaxBackups: o.MaxBackups,
		MaxAge:     o.MaxAgeDays,
		Compress:   false,
	}, nil
}
