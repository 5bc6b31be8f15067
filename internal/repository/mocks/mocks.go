package mocks

import (
	"context"
	"time"

	"github.com/NBISweden/redmine-spent-time/internal/domain/auth"
	"github.com/NBISweden/redmine-spent-time/internal/domain/issue"
	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock for repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetByLogin(ctx context.Context, login string) (*user.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) ListActive(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) ListByProject(ctx context.Context, projectID int64) ([]user.User, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProjectRepository) Get(ctx context.Context, id int64) (*project.Project, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*project.Project); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListActive(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) ListForUser(ctx context.Context, userID int64) ([]project.Project, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) AddMember(ctx context.Context, projectID, userID int64) error {
	args := m.Called(ctx, projectID, userID)
	return args.Error(0)
}

// IssueRepository is a mock for repository.IssueRepository.
type IssueRepository struct {
	mock.Mock
}

func (m *IssueRepository) Create(ctx context.Context, iss *issue.Issue) error {
	args := m.Called(ctx, iss)
	return args.Error(0)
}

func (m *IssueRepository) Get(ctx context.Context, id int64) (*issue.Issue, error) {
	args := m.Called(ctx, id)
	if iss, ok := args.Get(0).(*issue.Issue); ok {
		return iss, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IssueRepository) ListByProject(ctx context.Context, projectID int64) ([]issue.Issue, error) {
	args := m.Called(ctx, projectID)
	if list, ok := args.Get(0).([]issue.Issue); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *IssueRepository) ListAssignedTo(ctx context.Context, userID int64) ([]issue.Issue, error) {
	args := m.Called(ctx, userID)
	if list, ok := args.Get(0).([]issue.Issue); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// TimeEntryRepository is a mock for repository.TimeEntryRepository.
type TimeEntryRepository struct {
	mock.Mock
}

func (m *TimeEntryRepository) Create(ctx context.Context, entry *timeentry.TimeEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *TimeEntryRepository) Get(ctx context.Context, id int64) (*timeentry.TimeEntry, error) {
	args := m.Called(ctx, id)
	if entry, ok := args.Get(0).(*timeentry.TimeEntry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TimeEntryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *TimeEntryRepository) ListForUser(ctx context.Context, userID int64, from, to time.Time, projectIDs []int64) ([]timeentry.TimeEntry, error) {
	args := m.Called(ctx, userID, from, to, projectIDs)
	if list, ok := args.Get(0).([]timeentry.TimeEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// PermissionRepository is a mock for repository.PermissionRepository.
type PermissionRepository struct {
	mock.Mock
}

func (m *PermissionRepository) Grant(ctx context.Context, userID int64, cap auth.Capability, projectID *int64) error {
	args := m.Called(ctx, userID, cap, projectID)
	return args.Error(0)
}

func (m *PermissionRepository) HasGrant(ctx context.Context, userID int64, cap auth.Capability, projectID *int64) (bool, error) {
	args := m.Called(ctx, userID, cap, projectID)
	return args.Bool(0), args.Error(1)
}

// Authorizer is a mock for auth.Authorizer.
type Authorizer struct {
	mock.Mock
}

func (m *Authorizer) AllowedTo(ctx context.Context, actor *user.User, cap auth.Capability, scope *project.Project) (bool, error) {
	args := m.Called(ctx, actor, cap, scope)
	return args.Bool(0), args.Error(1)
}
