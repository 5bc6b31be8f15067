package issue_test

import (
	"context"
	"testing"

	"github.com/NBISweden/redmine-spent-time/internal/domain/issue"
	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/NBISweden/redmine-spent-time/internal/repository"
	"github.com/NBISweden/redmine-spent-time/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func TestRefreshForProject(t *testing.T) {
	ctx := context.Background()
	candidates := []issue.Issue{{ID: 1, ProjectID: 7, Subject: "A"}, {ID: 2, ProjectID: 7, Subject: "B"}}

	issues := &mocks.IssueRepository{}
	issues.On("ListByProject", ctx, int64(7)).Return(candidates, nil)
	projects := &mocks.ProjectRepository{}
	projects.On("Get", ctx, int64(7)).Return(&project.Project{ID: 7}, nil)

	svc := issue.NewService(issues, projects, nil)
	got, err := svc.RefreshForProject(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, candidates, got)
}

func TestRefreshForProject_UnknownProjectYieldsEmpty(t *testing.T) {
	ctx := context.Background()

	issues := &mocks.IssueRepository{}
	projects := &mocks.ProjectRepository{}
	projects.On("Get", ctx, int64(99)).Return((*project.Project)(nil), repository.ErrNotFound)

	svc := issue.NewService(issues, projects, nil)
	got, err := svc.RefreshForProject(ctx, 99)
	require.NoError(t, err)
	require.Empty(t, got)
	issues.AssertNotCalled(t, "ListByProject", ctx, int64(99))
}

func TestAssignedTo(t *testing.T) {
	ctx := context.Background()
	u := &user.User{ID: 3}
	assigned := []issue.Issue{{ID: 5, ProjectID: 1, Subject: "Mine"}}

	issues := &mocks.IssueRepository{}
	issues.On("ListAssignedTo", ctx, int64(3)).Return(assigned, nil)

	svc := issue.NewService(issues, &mocks.ProjectRepository{}, nil)
	got, err := svc.AssignedTo(ctx, u)
	require.NoError(t, err)
	require.Equal(t, assigned, got)
}
