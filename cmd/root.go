package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user/mp4edit-cli/console"
	"github.com/user/mp4edit-cli/deps"
	"github.com/user/mp4edit-cli/editor"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "mp4edit",
	Short: "A CLI tool for editing MP4 videos",
	Long: `mp4edit merges, trims, and removes segments from MP4 videos.
All decoding, encoding, and muxing is delegated to ffmpeg.

Features:
  - Merge multiple videos into a single file
  - Trim a video to a time range
  - Remove a segment from the middle of a video
  - Review past operations with 'history'`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("mp4edit version %s\n", Version)
	},
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system dependencies",
	Long:  `Check that all required system dependencies (ffmpeg, ffprobe) are installed and available.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Checking dependencies...")
		fmt.Println()

		allGood := true

		if err := deps.CheckFfmpeg(); err != nil {
			fmt.Println("✗ ffmpeg: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ ffmpeg: OK")
		}

		if err := deps.CheckFfprobe(); err != nil {
			fmt.Println("✗ ffprobe: NOT FOUND")
			fmt.Printf("  Install from: %s\n", deps.FfmpegInstallURL)
			allGood = false
		} else {
			fmt.Println("✓ ffprobe: OK")
		}

		fmt.Println()
		if allGood {
			fmt.Println("All dependencies are installed!")
		} else {
			fmt.Println("Some dependencies are missing. Please install them to use all features.")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

// Execute runs the root command and maps the outcome to an exit code:
// 0 for success and declined overwrite, 1 for everything else.
func Execute(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, editor.ErrCancelled):
		fmt.Println("Operation cancelled.")
	case errors.Is(err, context.Canceled):
		console.Warnf("Operation cancelled by user")
		os.Exit(1)
	default:
		console.Errorf("%v", err)
		os.Exit(1)
	}
}
