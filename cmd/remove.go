package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/mp4edit-cli/editor"
	"github.com/user/mp4edit-cli/pkg/validate"
)

var removeCmd = &cobra.Command{
	Use:   "remove <input> <output> <start> <end>",
	Short: "Remove a segment from a video",
	Long: `Cut the range [start, end) out of the input video and join the
remaining parts. Times can be given as seconds, MM:SS, or HH:MM:SS.
Removing the entire video is an error.`,
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
		res, err := ed.Remove(cmd.Context(), editor.RemoveRequest{
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
		recordHistory("remove", []string{input}, res)
		return nil
	},
}

func init() {
	addEncodeFlags(removeCmd)
	rootCmd.AddCommand(removeCmd)
}
