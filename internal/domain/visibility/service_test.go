package visibility_test

import (
	"context"
	"testing"

	"github.com/NBISweden/redmine-spent-time/internal/domain/auth"
	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/NBISweden/redmine-spent-time/internal/domain/visibility"
	"github.com/NBISweden/redmine-spent-time/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

var noProject = (*project.Project)(nil)

func TestResolve_SelfOnlyTier(t *testing.T) {
	ctx := context.Background()
	actor := &user.User{ID: 3, Login: "dev", Firstname: "Dana"}

	az := &mocks.Authorizer{}
	az.On("AllowedTo", ctx, actor, auth.ViewEveryProjectSpentTime, noProject).Return(false, nil)
	az.On("AllowedTo", ctx, actor, auth.ViewOthersSpentTime, noProject).Return(false, nil)

	r := visibility.NewResolver(&mocks.UserRepository{}, &mocks.ProjectRepository{}, az, nil)
	scope, err := r.Resolve(ctx, actor)
	require.NoError(t, err)
	require.Equal(t, []user.User{*actor}, scope.Users)
	require.Nil(t, scope.Projects)
}

func TestResolve_EveryProjectTier(t *testing.T) {
	ctx := context.Background()
	actor := &user.User{ID: 1, Login: "admin"}

	active := []user.User{
		{ID: 2, Firstname: "Anna"},
		{ID: 3, Firstname: "Bert"},
	}
	projects := []project.Project{
		{ID: 1, Name: "Core", Status: project.StatusActive},
		{ID: 2, Name: "Docs", Status: project.StatusActive},
	}

	az := &mocks.Authorizer{}
	az.On("AllowedTo", ctx, actor, auth.ViewEveryProjectSpentTime, noProject).Return(true, nil)

	users := &mocks.UserRepository{}
	users.On("ListActive", ctx).Return(active, nil)
	projRepo := &mocks.ProjectRepository{}
	projRepo.On("ListActive", ctx).Return(projects, nil)

	r := visibility.NewResolver(users, projRepo, az, nil)
	scope, err := r.Resolve(ctx, actor)
	require.NoError(t, err)
	require.Equal(t, active, scope.Users)
	require.Equal(t, projects, scope.Projects)
}

func TestResolve_TeamTierDeduplicatesAndSorts(t *testing.T) {
	ctx := context.Background()
	actor := &user.User{ID: 3, Login: "lead"}

	lead := user.User{ID: 3, Firstname: "Lars", Lastname: "Lead"}
	anna := user.User{ID: 4, Firstname: "Anna", Lastname: "Dev"}
	zane := user.User{ID: 5, Firstname: "Zane", Lastname: "Dev"}
	memberProjects := []project.Project{{ID: 1, Name: "Core"}, {ID: 2, Name: "Docs"}}

	az := &mocks.Authorizer{}
	az.On("AllowedTo", ctx, actor, auth.ViewEveryProjectSpentTime, noProject).Return(false, nil)
	az.On("AllowedTo", ctx, actor, auth.ViewOthersSpentTime, noProject).Return(true, nil)

	users := &mocks.UserRepository{}
	users.On("ListByProject", ctx, int64(1)).Return([]user.User{zane, lead}, nil)
	users.On("ListByProject", ctx, int64(2)).Return([]user.User{lead, anna}, nil)
	projRepo := &mocks.ProjectRepository{}
	projRepo.On("ListForUser", ctx, actor.ID).Return(memberProjects, nil)

	r := visibility.NewResolver(users, projRepo, az, nil)
	scope, err := r.Resolve(ctx, actor)
	require.NoError(t, err)
	// lead appears in both projects but only once here, ordered by name.
	require.Equal(t, []user.User{anna, lead, zane}, scope.Users)
	require.Equal(t, memberProjects, scope.Projects)
}

func TestScope_Lookup(t *testing.T) {
	scope := visibility.Scope{Users: []user.User{{ID: 1, Login: "a"}, {ID: 2, Login: "b"}}}

	u, ok := scope.Lookup(2)
	require.True(t, ok)
	require.Equal(t, "b", u.Login)

	_, ok = scope.Lookup(9)
	require.False(t, ok)
}
