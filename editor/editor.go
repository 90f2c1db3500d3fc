// Package editor sequences clip operations: open, validate time bounds,
// transform, write, release. All clip handles are closed on every exit path.
package editor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/user/mp4edit-cli/console"
	"github.com/user/mp4edit-cli/pkg/timeutil"
	"github.com/user/mp4edit-cli/video"
)

// MergeRequest joins the inputs in order into a single output.
type MergeRequest struct {
	Inputs []string
	Output string
}

// TrimRequest extracts [Start, End) from the input.
type TrimRequest struct {
	Input  string
	Output string
	Start  float64
	End    float64
}

// RemoveRequest cuts [Start, End) out of the input, keeping the rest.
type RemoveRequest struct {
	Input  string
	Output string
	Start  float64
	End    float64
}

// Result summarises a completed operation.
type Result struct {
	OutputPath string
	Size       int64
	Duration   float64
	Elapsed    time.Duration
}

// Editor runs operations against an Engine.
type Editor struct {
	Engine  Engine
	Options video.Options
	// Confirm is invoked before overwriting an existing merge output.
	// Nil means overwrite without asking.
	Confirm func(path string) (bool, error)
	// Progress receives write-phase progress as a fraction in [0, 1].
	Progress video.ProgressFunc
}

// New returns an editor backed by the given engine.
func New(engine Engine) *Editor {
	return &Editor{Engine: engine}
}

// Merge opens every input in order, concatenates them, and writes the result.
func (e *Editor) Merge(ctx context.Context, req MergeRequest) (*Result, error) {
	started := time.Now()

	if _, err := os.Stat(req.Output); err == nil && e.Confirm != nil {
		ok, err := e.Confirm(req.Output)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrCancelled
		}
	}

	console.Header("Merging videos")

	clips := make([]Clip, 0, len(req.Inputs))
	defer func() {
		for _, c := range clips {
			_ = c.Close()
		}
	}()

	total := 0.0
	for i, path := range req.Inputs {
		fmt.Printf("Loading video %d/%d: %s\n", i+1, len(req.Inputs), filepath.Base(path))
		clip, err := e.Engine.Open(path)
		if err != nil {
			return nil, err
		}
		clips = append(clips, clip)
		total += clip.Duration()
		fmt.Printf("  Duration: %.2f seconds\n", clip.Duration())
	}

	fmt.Printf("Total duration after merge: %.2f seconds (%s)\n", total, timeutil.FormatSeconds(total))

	joined := e.Engine.Concatenate(clips...)
	defer joined.Close()

	return e.write(ctx, started, joined, req.Output)
}

// Trim extracts [Start, End) from the input. An end beyond the clip duration
// is clamped with a warning; a start at or past the duration, or at or past
// the post-clamp end, is a range error.
func (e *Editor) Trim(ctx context.Context, req TrimRequest) (*Result, error) {
	started := time.Now()

	console.Header("Trimming video")
	fmt.Printf("Input:  %s\n", req.Input)
	fmt.Printf("Output: %s\n", req.Output)
	fmt.Printf("Trim from %.2fs to %.2fs\n", req.Start, req.End)

	clip, err := e.Engine.Open(req.Input)
	if err != nil {
		return nil, err
	}
	defer clip.Close()

	duration := clip.Duration()
	fmt.Printf("Original duration: %.2f seconds\n", duration)

	if req.Start >= duration {
		return nil, &RangeError{Start: req.Start, End: req.End, Duration: duration,
			Reason: "start time is beyond video duration"}
	}

	end := req.End
	if end > duration {
		console.Warnf("end time adjusted from %.2fs to %.2fs", end, duration)
		end = duration
	}
	if req.Start >= end {
		return nil, &RangeError{Start: req.Start, End: end, Duration: duration,
			Reason: "start time must be less than end time"}
	}

	sub := clip.SubClip(req.Start, end)
	defer sub.Close()
	fmt.Printf("Trimmed duration: %.2f seconds\n", sub.Duration())

	return e.write(ctx, started, sub, req.Output)
}

// Remove cuts [Start, End) out of the input and joins the retained ranges.
func (e *Editor) Remove(ctx context.Context, req RemoveRequest) (*Result, error) {
	started := time.Now()

	console.Header("Removing segment")
	fmt.Printf("Input:  %s\n", req.Input)
	fmt.Printf("Output: %s\n", req.Output)
	fmt.Printf("Removing segment from %.2fs to %.2fs\n", req.Start, req.End)

	clip, err := e.Engine.Open(req.Input)
	if err != nil {
		return nil, err
	}
	defer clip.Close()

	duration := clip.Duration()
	fmt.Printf("Original duration: %.2f seconds\n", duration)

	if req.Start >= duration || req.End > duration {
		return nil, &RangeError{Start: req.Start, End: req.End, Duration: duration,
			Reason: "removal times are beyond video duration"}
	}
	if req.Start >= req.End {
		return nil, &RangeError{Start: req.Start, End: req.End, Duration: duration,
			Reason: "start time must be less than end time"}
	}

	var kept []Clip
	defer func() {
		for _, c := range kept {
			_ = c.Close()
		}
	}()

	if req.Start > 0 {
		fmt.Printf("Keeping segment: 0.00s to %.2fs\n", req.Start)
		kept = append(kept, clip.SubClip(0, req.Start))
	}
	if req.End < duration {
		fmt.Printf("Keeping segment: %.2fs to %.2fs\n", req.End, duration)
		kept = append(kept, clip.SubClip(req.End, duration))
	}
	if len(kept) == 0 {
		return nil, &EmptyResultError{}
	}

	final := kept[0]
	if len(kept) > 1 {
		final = e.Engine.Concatenate(kept...)
		defer final.Close()
	}

	fmt.Printf("Final duration: %.2f seconds (removed %.2fs)\n", final.Duration(), req.End-req.Start)

	return e.write(ctx, started, final, req.Output)
}

// write runs the write phase and builds the result summary.
func (e *Editor) write(ctx context.Context, started time.Time, clip Clip, outPath string) (*Result, error) {
	fmt.Printf("Writing output to: %s\n", outPath)

	if err := clip.Write(ctx, outPath, e.Options, e.Progress); err != nil {
		return nil, err
	}

	res := &Result{
		OutputPath: outPath,
		Duration:   clip.Duration(),
		Elapsed:    time.Since(started),
	}
	if info, err := os.Stat(outPath); err == nil {
		res.Size = info.Size()
	}
	return res, nil
}
