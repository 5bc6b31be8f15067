package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/NBISweden/redmine-spent-time/internal/app"
)

var (
	deleteFrom string
	deleteTo   string
)

var deleteCmd = &cobra.Command{
	Use:   "delete <entry-id>",
	Short: "Delete a time entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entryID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid entry id %q", args[0])
		}

		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.close()

		ctx := cmd.Context()
		actor, err := rt.actor(ctx)
		if err != nil {
			return err
		}

		rng, err := rangeFromFlags(rt, deleteFrom, deleteTo)
		if err != nil {
			return err
		}

		outcome, err := rt.app.DeleteEntry(ctx, actor, entryID, rng)
		if errors.Is(err, app.ErrReportRefresh) {
			// The entry is gone; show the default view instead of the report.
			fmt.Printf("Deleted entry %d; report unavailable, showing initial view\n", entryID)
			view, verr := rt.app.Initial(ctx, actor)
			if verr != nil {
				return verr
			}
			printReport(view.Report)
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Printf("Deleted entry %d\n", entryID)
		printReport(outcome.Report)
		return nil
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteFrom, "from", "", "current report start date")
	deleteCmd.Flags().StringVar(&deleteTo, "to", "", "current report end date")
}
