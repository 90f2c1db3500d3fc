package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/user/mp4edit-cli/history"
	"github.com/user/mp4edit-cli/pkg/timeutil"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past operations",
	Long:  `Display recent merge, trim, and remove operations as a table, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		db, err := history.Open()
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer db.Close()

		entries, err := history.List(db, limit)
		if err != nil {
			return err
		}

		if len(entries) == 0 {
			fmt.Println("No operations recorded yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWhen\tKind\tDuration\tSize\tOutput")
		fmt.Fprintln(w, "--\t----\t----\t--------\t----\t------")

		for _, e := range entries {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				e.ID,
				e.CreatedAt.Local().Format("2006-01-02 15:04"),
				e.Kind,
				timeutil.FormatSeconds(e.Duration),
				humanize.IBytes(uint64(e.SizeBytes)),
				e.Output,
			)
		}
		w.Flush()

		fmt.Printf("\n%d operation(s) shown.\n", len(entries))
		return nil
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "Maximum number of operations to show")
	rootCmd.AddCommand(historyCmd)
}
