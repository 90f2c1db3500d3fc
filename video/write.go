package video

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Write renders the clip to outPath with the given re-encode profile. A
// single-segment plan is encoded straight to the output; a multi-segment plan
// encodes each part into a temp directory and joins them with the concat
// demuxer. The temp directory is removed on every exit path. Progress is
// reported as a fraction of the total output duration and reaches 1 on
// success.
func (c *Clip) Write(ctx context.Context, outPath string, opts Options, progress ProgressFunc) error {
	if c.closed {
		return &EncodeError{Stage: "encode", Detail: "clip is closed"}
	}
	if len(c.segments) == 0 || c.duration <= 0 {
		return &EncodeError{Stage: "encode", Detail: "nothing to write: empty render plan"}
	}
	opts = opts.withDefaults()
	if progress == nil {
		progress = func(float64) {}
	}

	if len(c.segments) == 1 {
		if err := c.runEncode(ctx, c.segments[0], outPath, opts, 0, progress); err != nil {
			return err
		}
		progress(1)
		return nil
	}

	tempDir, err := os.MkdirTemp("", "mp4edit-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	parts := make([]string, len(c.segments))
	rendered := 0.0
	for i, seg := range c.segments {
		parts[i] = filepath.Join(tempDir, fmt.Sprintf("part_%03d.mp4", i))
		if err := c.runEncode(ctx, seg, parts[i], opts, rendered, progress); err != nil {
			return err
		}
		rendered += seg.duration()
	}

	listPath, err := writeConcatList(tempDir, parts)
	if err != nil {
		return err
	}

	if err := runConcat(ctx, listPath, outPath); err != nil {
		return err
	}
	progress(1)
	return nil
}

// runEncode encodes one segment, streaming progress from ffmpeg's stdout.
// offset is the output time already rendered by earlier segments.
func (c *Clip) runEncode(ctx context.Context, seg Segment, outPath string, opts Options, offset float64, progress ProgressFunc) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", encodeArgs(seg, outPath, opts)...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open ffmpeg stdout: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return &EncodeError{Stage: "encode", Err: err}
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanProgress(stdout, func(seconds float64) {
			frac := (offset + math.Min(seconds, seg.duration())) / c.duration
			progress(math.Min(frac, 1))
		})
	}()

	// The reader hits EOF when ffmpeg exits; drain it before Wait closes
	// the pipe.
	<-done
	waitErr := cmd.Wait()

	if waitErr != nil {
		// An interrupt kills ffmpeg; surface the cancellation, not the kill.
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &EncodeError{Stage: "encode", Detail: strings.TrimSpace(stderr.String()), Err: waitErr}
	}
	return nil
}

// writeConcatList writes the concat-demuxer list file into dir.
// Format: one `file '/abs/path'` line per part, single quotes escaped.
func writeConcatList(dir string, parts []string) (string, error) {
	var sb strings.Builder
	for _, part := range parts {
		absPath, err := filepath.Abs(part)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path for %s: %w", part, err)
		}
		escaped := strings.ReplaceAll(absPath, "'", `'\''`)
		fmt.Fprintf(&sb, "file '%s'\n", escaped)
	}

	listPath := filepath.Join(dir, "concat.txt")
	if err := os.WriteFile(listPath, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write concat list: %w", err)
	}
	return listPath, nil
}

// runConcat joins the rendered parts with stream copy.
func runConcat(ctx context.Context, listPath, outPath string) error {
	cmd := exec.CommandContext(ctx, "ffmpeg", concatArgs(listPath, outPath)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &EncodeError{Stage: "concat", Detail: strings.TrimSpace(string(output)), Err: err}
	}

	if _, err := os.Stat(outPath); err != nil {
		return &EncodeError{Stage: "concat", Detail: "output file not created", Err: err}
	}
	return nil
}
