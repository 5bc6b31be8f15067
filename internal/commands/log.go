package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
)

var (
	logProject  int64
	logIssue    int64
	logDate     string
	logHours    string
	logComments string
	logActivity string
	logFrom     string
	logTo       string
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log time against an issue",
	Long: `Log spent time. The issue is mandatory; a negative project id takes
the project from the issue.

Examples:
  spenttime --user jdoe log --project 7 --issue 42 --date 2024-01-10 --hours 2.5
  spenttime --user jdoe log --project -1 --issue 42 --date 2024-01-10 --hours 2.5 --comments "code review"`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		rng, err := rangeFromFlags(rt, logFrom, logTo)
		if err != nil {
			return err
		}

		outcome, err := rt.app.CreateEntry(ctx, actor, timeentry.CreateRequest{
			ProjectID: logProject,
			IssueID:   logIssue,
			SpentOn:   logDate,
			Hours:     logHours,
			Comments:  logComments,
			Activity:  logActivity,
		}, rng)
		if err != nil {
			return err
		}

		fmt.Printf("Logged %.2f h as entry %d\n", outcome.Entry.Hours, outcome.Entry.ID)
		printReport(outcome.Report)
		return nil
	},
}

func init() {
	logCmd.Flags().Int64Var(&logProject, "project", 0, "project id (negative: take from issue)")
	logCmd.Flags().Int64Var(&logIssue, "issue", 0, "issue id")
	logCmd.Flags().StringVar(&logDate, "date", "", "spent-on date (YYYY-MM-DD)")
	logCmd.Flags().StringVar(&logHours, "hours", "", "hours spent, plain decimal")
	logCmd.Flags().StringVar(&logComments, "comments", "", "entry comments")
	logCmd.Flags().StringVar(&logActivity, "activity", "", "activity name")
	logCmd.Flags().StringVar(&logFrom, "from", "", "current report start date")
	logCmd.Flags().StringVar(&logTo, "to", "", "current report end date")
}
