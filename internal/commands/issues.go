package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	issuesFrom string
	issuesTo   string
)

var issuesCmd = &cobra.Command{
	Use:   "issues <project-id>",
	Short: "List the candidate issues for a project",
	Long: `List the issues a new time entry on the project may reference. An
unknown project yields an empty list. The report window is preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid project id %q", args[0])
		}

		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.close()

		rng, err := rangeFromFlags(rt, issuesFrom, issuesTo)
		if err != nil {
			return err
		}

		view, err := rt.app.RefreshIssues(cmd.Context(), projectID, rng)
		if err != nil {
			return err
		}

		if len(view.Issues) == 0 {
			fmt.Println("no issues")
			return nil
		}
		for _, iss := range view.Issues {
			fmt.Printf("#%d %s\n", iss.ID, iss.Subject)
		}
		return nil
	},
}

func init() {
	issuesCmd.Flags().StringVar(&issuesFrom, "from", "", "current report start date")
	issuesCmd.Flags().StringVar(&issuesTo, "to", "", "current report end date")
}
