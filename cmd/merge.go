package cmd

import (
	"github.com/spf13/cobra"
	"github.com/user/mp4edit-cli/editor"
	"github.com/user/mp4edit-cli/pkg/validate"
)

var mergeCmd = &cobra.Command{
	Use:   "merge --in <file> [--in <file>...] --out <file>",
	Short: "Merge multiple videos into one",
	Long: `Merge one or more videos end-to-end into a single output file,
preserving the given order. If the output file already exists you are
asked before it is overwritten; declining leaves it untouched.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs, _ := cmd.Flags().GetStringArray("in")
		output, _ := cmd.Flags().GetString("out")

		v := &validate.Validator{}
		if err := v.CheckFiles(inputs); err != nil {
			return err
		}

		ed, finish := newEditor(cmd)
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			ed.Confirm = confirmOverwrite
		}

		res, err := ed.Merge(cmd.Context(), editor.MergeRequest{Inputs: inputs, Output: output})
		if err != nil {
			return err
		}

		finish()
		reportResult(res)
		recordHistory("merge", inputs, res)
		return nil
	},
}

func init() {
	mergeCmd.Flags().StringArray("in", nil, "Input video file (repeatable)")
	mergeCmd.Flags().String("out", "", "Output video file")
	mergeCmd.Flags().BoolP("yes", "y", false, "Overwrite the output file without asking")
	mergeCmd.MarkFlagRequired("in")
	mergeCmd.MarkFlagRequired("out")
	addEncodeFlags(mergeCmd)
	rootCmd.AddCommand(mergeCmd)
}
