package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/NBISweden/redmine-spent-time/internal/domain/report"
	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
	"github.com/NBISweden/redmine-spent-time/internal/domain/visibility"
)

var (
	reportFor  string
	reportFrom string
	reportTo   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show a spent-time report",
	Long: `Show the spent-time report for the acting user, or for another
user inside the acting user's visibility scope.

Examples:
  spenttime --user jdoe report
  spenttime --user jdoe report --for asmith --from 2024-01-01 --to 2024-01-31`,
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

		if reportFor == "" && reportFrom == "" && reportTo == "" {
			view, err := rt.app.Initial(ctx, actor)
			if err != nil {
				return err
			}
			fmt.Printf("Visible users: %d, visible projects: %s\n",
				len(view.Scope.Users), describeProjects(view.Scope))
			printReport(view.Report)
			if len(view.AssignedIssues) > 0 {
				fmt.Println("\nAssigned issues:")
				for _, iss := range view.AssignedIssues {
					fmt.Printf("  #%d %s\n", iss.ID, iss.Subject)
				}
			}
			return nil
		}

		targetLogin := reportFor
		if targetLogin == "" {
			targetLogin = actor.Login
		}
		target, err := rt.users.GetByLogin(ctx, targetLogin)
		if err != nil {
			return fmt.Errorf("unknown user %q", targetLogin)
		}

		from, err := parseDateFlag(reportFrom)
		if err != nil {
			return err
		}
		to, err := parseDateFlag(reportTo)
		if err != nil {
			return err
		}

		view, err := rt.app.Report(ctx, actor, target.ID, from, to)
		if err != nil {
			return err
		}
		if !view.SameUser {
			fmt.Printf("Report for %s\n", target.Name())
		}
		printReport(view.Report)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFor, "for", "", "login of the user to report on (default: acting user)")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "start date (YYYY-MM-DD)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "end date (YYYY-MM-DD)")
}

func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	d, err := time.Parse(timeentry.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return &d, nil
}

func printReport(result report.Result) {
	fmt.Printf("Report %s .. %s\n",
		result.Range.From.Format(timeentry.DateLayout),
		result.Range.To.Format(timeentry.DateLayout))
	if len(result.Days) == 0 {
		fmt.Println("  no time entries")
		return
	}
	for _, day := range result.Days {
		fmt.Printf("%s (%.2f h)\n", day.Date.Format(timeentry.DateLayout), day.Hours)
		for _, e := range day.Entries {
			issueRef := ""
			if e.IssueID != nil {
				issueRef = fmt.Sprintf(" issue #%d", *e.IssueID)
			}
			fmt.Printf("  [%d] project %d%s: %.2f h %s\n", e.ID, e.ProjectID, issueRef, e.Hours, e.Comments)
		}
	}
	fmt.Printf("Total: %.2f h\n", result.TotalHours)
}

func describeProjects(scope visibility.Scope) string {
	if scope.Projects == nil {
		return "own entries only"
	}
	return fmt.Sprintf("%d", len(scope.Projects))
}
