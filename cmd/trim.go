package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/mp4edit-cli/editor"
	"github.com/user/mp4edit-cli/pkg/validate"
)

var trimCmd = &cobra.Command{
	Use:   "trim <input> <output> <start> <end>",
	Short: "Trim a video to a time range",
	Long: `Extract the range [start, end) from the input video.
Times can be given as seconds, MM:SS, or HH:MM:SS. An end time past the
video duration is clamped with a warning.`,
	Args: cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, output := args[0], args[1]

		v := &validate.Validator{}
		if err := v.CheckFile(input); err != nil {
			return err
		}

		start, end, err := parseRange(args[2], args[3])
		if err != nil {
			return err
		}

		ed, finish := newEditor(cmd)
		res, err := ed.Trim(cmd.Context(), editor.TrimRequest{
			Input:  input,
			Output: output,
			Start:  start,
			End:    end,
		})
		if err != nil {
			return err
		}

		finish()
		reportResult(res)
		recordHistory("trim", []string{input}, res)
		return nil
	},
}

func init() {
	addEncodeFlags(trimCmd)
	rootCmd.AddCommand(trimCmd)
}
