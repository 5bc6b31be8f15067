package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NBISweden/redmine-spent-time/internal/domain/auth"
	"github.com/NBISweden/redmine-spent-time/internal/domain/issue"
	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a demo dataset",
	Long: `Create a small demo dataset: three users with different visibility
capabilities, two projects, and a handful of issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup()
		if err != nil {
			return err
		}
		defer rt.close()

		if err := seed(cmd.Context(), rt); err != nil {
			return err
		}
		fmt.Println("seeded demo data")
		return nil
	},
}

func seed(ctx context.Context, rt *runtime) error {
	admin := &user.User{Login: "admin", Firstname: "Ann", Lastname: "Admin", Admin: true, Status: user.StatusActive}
	lead := &user.User{Login: "lead", Firstname: "Lars", Lastname: "Lead", Status: user.StatusActive}
	dev := &user.User{Login: "dev", Firstname: "Dana", Lastname: "Dev", Status: user.StatusActive}
	for _, u := range []*user.User{admin, lead, dev} {
		if err := rt.users.Create(ctx, u); err != nil {
			return err
		}
	}

	core := &project.Project{Identifier: "core", Name: "Core Platform", Status: project.StatusActive, TimeLoggingEnabled: true}
	docs := &project.Project{Identifier: "docs", Name: "Documentation", Status: project.StatusActive, TimeLoggingEnabled: true}
	for _, p := range []*project.Project{core, docs} {
		if err := rt.projects.Create(ctx, p); err != nil {
			return err
		}
	}

	for _, m := range []struct{ projectID, userID int64 }{
		{core.ID, lead.ID},
		{core.ID, dev.ID},
		{docs.ID, lead.ID},
	} {
		if err := rt.projects.AddMember(ctx, m.projectID, m.userID); err != nil {
			return err
		}
	}

	// lead sees team mates' time, everyone logs and edits their own time.
	if err := rt.perms.Grant(ctx, lead.ID, auth.ViewOthersSpentTime, nil); err != nil {
		return err
	}
	for _, userID := range []int64{lead.ID, dev.ID} {
		for _, cap := range []auth.Capability{auth.LogTime, auth.EditOwnTimeEntries} {
			if err := rt.perms.Grant(ctx, userID, cap, nil); err != nil {
				return err
			}
		}
	}

	issues := []*issue.Issue{
		{ProjectID: core.ID, Subject: "Fix session timeout", AssignedToID: &dev.ID},
		{ProjectID: core.ID, Subject: "Upgrade storage driver", AssignedToID: &lead.ID},
		{ProjectID: docs.ID, Subject: "Rewrite install guide"},
	}
	for _, iss := range issues {
		if err := rt.issues.Create(ctx, iss); err != nil {
			return err
		}
	}

	return nil
}
