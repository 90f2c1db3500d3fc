package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/user/mp4edit-cli/console"
	"github.com/user/mp4edit-cli/editor"
	"github.com/user/mp4edit-cli/history"
	"github.com/user/mp4edit-cli/pkg/timeutil"
	"github.com/user/mp4edit-cli/video"
)

// addEncodeFlags registers the re-encode profile flags shared by merge,
// trim, and remove.
func addEncodeFlags(cmd *cobra.Command) {
	cmd.Flags().String("codec", video.DefaultOptions.VideoCodec, "Video codec for re-encoding")
	cmd.Flags().String("audio-codec", video.DefaultOptions.AudioCodec, "Audio codec for re-encoding")
	cmd.Flags().String("preset", video.DefaultOptions.Preset, "Encoder preset")
}

func encodeOptions(cmd *cobra.Command) video.Options {
	codec, _ := cmd.Flags().GetString("codec")
	audioCodec, _ := cmd.Flags().GetString("audio-codec")
	preset, _ := cmd.Flags().GetString("preset")
	return video.Options{VideoCodec: codec, AudioCodec: audioCodec, Preset: preset}
}

// newEditor builds an ffmpeg-backed editor with a console progress bar for
// the write phase. The returned finish func drives the bar to 100.
func newEditor(cmd *cobra.Command) (*editor.Editor, func()) {
	ed := editor.New(editor.FFmpegEngine{})
	ed.Options = encodeOptions(cmd)

	var bar *progressbar.ProgressBar
	ed.Progress = func(fraction float64) {
		if bar == nil {
			bar = progressbar.NewOptions(100,
				progressbar.OptionSetDescription("Processing"),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetRenderBlankState(true),
			)
		}
		pct := int(fraction * 100)
		if pct > 100 {
			pct = 100
		}
		_ = bar.Set(pct)
	}

	finish := func() {
		if bar != nil {
			_ = bar.Set(100)
			_ = bar.Finish()
			fmt.Println()
		}
	}
	return ed, finish
}

// confirmOverwrite asks whether an existing output file may be replaced.
func confirmOverwrite(path string) (bool, error) {
	overwrite := false
	confirm := huh.NewConfirm().
		Title(fmt.Sprintf("Output file '%s' already exists. Overwrite?", path)).
		Affirmative("Yes").
		Negative("No").
		Value(&overwrite)

	if err := confirm.Run(); err != nil {
		return false, err
	}
	return overwrite, nil
}

// parseRange parses the start and end time arguments.
func parseRange(startArg, endArg string) (start, end float64, err error) {
	start, err = timeutil.ParseSeconds(startArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start time: %w", err)
	}
	end, err = timeutil.ParseSeconds(endArg)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid end time: %w", err)
	}
	return start, end, nil
}

// reportResult prints the success summary for a completed operation.
func reportResult(res *editor.Result) {
	fmt.Println()
	fmt.Printf("Output file: %s\n", res.OutputPath)
	fmt.Printf("Output size: %s\n", humanize.IBytes(uint64(res.Size)))
	fmt.Printf("Duration:    %s (%.2f seconds)\n", timeutil.FormatSeconds(res.Duration), res.Duration)
	fmt.Printf("Total processing time: %.2f seconds\n", res.Elapsed.Seconds())
	console.Successf("Operation completed successfully")
}

// recordHistory stores the result in the history database. Best-effort: a
// history failure never fails the operation.
func recordHistory(kind string, inputs []string, res *editor.Result) {
	db, err := history.Open()
	if err != nil {
		console.Warnf("could not open history database: %v", err)
		return
	}
	defer db.Close()

	_, err = history.Record(db, history.Entry{
		Kind:      kind,
		Inputs:    strings.Join(inputs, "; "),
		Output:    res.OutputPath,
		SizeBytes: res.Size,
		Duration:  res.Duration,
		Elapsed:   res.Elapsed.Seconds(),
	})
	if err != nil {
		console.Warnf("could not record history: %v", err)
	}
}
