// Package validate checks input files before any media work is attempted.
package validate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// MaxFileSize is the default input size ceiling (5 GiB).
const MaxFileSize int64 = 5 * 1024 * 1024 * 1024

// NotFoundError reports an input path that does not exist or is not a file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("video file '%s' not found", e.Path)
}

// TooLargeError reports an input file above the size ceiling.
type TooLargeError struct {
	Path string
	Size int64
	Max  int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file '%s' is %s, exceeds %s limit",
		e.Path, humanize.IBytes(uint64(e.Size)), humanize.IBytes(uint64(e.Max)))
}

// Validator checks that input files exist and fit under the size ceiling.
type Validator struct {
	// MaxSize is the per-file size ceiling in bytes. Zero means MaxFileSize.
	MaxSize int64
	// Quiet suppresses the per-file status line.
	Quiet bool
}

// CheckFile validates a single input path.
func (v *Validator) CheckFile(path string) error {
	maxSize := v.MaxSize
	if maxSize <= 0 {
		maxSize = MaxFileSize
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return &NotFoundError{Path: path}
	}
	if err != nil {
		return fmt.Errorf("failed to access '%s': %w", path, err)
	}
	if info.IsDir() {
		return &NotFoundError{Path: path}
	}

	if info.Size() > maxSize {
		return &TooLargeError{Path: path, Size: info.Size(), Max: maxSize}
	}

	if !v.Quiet {
		fmt.Printf("File validated: %s (%s)\n", filepath.Base(path), humanize.IBytes(uint64(info.Size())))
	}
	return nil
}

// CheckFiles validates every path in order, stopping at the first failure.
func (v *Validator) CheckFiles(paths []string) error {
	for _, path := range paths {
		if err := v.CheckFile(path); err != nil {
			return err
		}
	}
	return nil
}
