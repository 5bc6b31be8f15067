package visibility

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/NBISweden/redmine-spent-time/internal/domain/auth"
	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
)

// Scope is the set of users and projects an actor may see time entries for.
// A nil Projects slice means unrestricted: the aggregator filters by entry
// owner instead of by project.
type Scope struct {
	Users    []user.User       `json:"users"`
	Projects []project.Project `json:"projects,omitempty"`
}

// Lookup returns the scoped user with the given ID, if present.
func (s Scope) Lookup(userID int64) (user.User, bool) {
	for _, u := range s.Users {
		if u.ID == userID {
			return u, true
		}
	}
	return user.User{}, false
}

// UserDirectory lists candidate report users.
type UserDirectory interface {
	ListActive(ctx context.Context) ([]user.User, error)
	ListByProject(ctx context.Context, projectID int64) ([]user.User, error)
}

// ProjectDirectory lists candidate report projects.
type ProjectDirectory interface {
	ListActive(ctx context.Context) ([]project.Project, error)
	ListForUser(ctx context.Context, userID int64) ([]project.Project, error)
}

// Resolver computes visibility scopes from the actor's capabilities.
type Resolver struct {
	users    UserDirectory
	projects ProjectDirectory
	auth     auth.Authorizer
	logger   *slog.Logger
}

// NewResolver creates a new visibility resolver.
func NewResolver(users UserDirectory, projects ProjectDirectory, authorizer auth.Authorizer, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{users: users, projects: projects, auth: authorizer, logger: logger}
}

// Resolve computes the actor's visibility scope. Tiers are checked in strict
// priority order and the first match wins; every actor lands at least in the
// self-only tier, so there is no "no scope" outcome.
func (r *Resolver) Resolve(ctx context.Context, actor *user.User) (Scope, error) {
	allowed, err := r.auth.AllowedTo(ctx, actor, auth.ViewEveryProjectSpentTime, nil)
	if err != nil {
		return Scope{}, fmt.Errorf("checking view_every_project_spent_time: %w", err)
	}
	if allowed {
		r.logger.Info("actor may view every project's spent time", "user", actor.Login)
		return r.resolveAll(ctx)
	}

	allowed, err = r.auth.AllowedTo(ctx, actor, auth.ViewOthersSpentTime, nil)
	if err != nil {
		return Scope{}, fmt.Errorf("checking view_others_spent_time: %w", err)
	}
	if allowed {
		r.logger.Info("actor may view team mates' spent time", "user", actor.Login)
		return r.resolveTeam(ctx, actor)
	}

	r.logger.Info("actor may view only their own spent time", "user", actor.Login)
	return Scope{Users: []user.User{*actor}}, nil
}

func (r *Resolver) resolveAll(ctx context.Context) (Scope, error) {
	users, err := r.users.ListActive(ctx)
	if err != nil {
		return Scope{}, fmt.Errorf("listing active users: %w", err)
	}
	projects, err := r.projects.ListActive(ctx)
	if err != nil {
		return Scope{}, fmt.Errorf("listing projects: %w", err)
	}
	if projects == nil {
		projects = []project.Project{}
	}
	return Scope{Users: users, Projects: projects}, nil
}

func (r *Resolver) resolveTeam(ctx context.Context, actor *user.User) (Scope, error) {
	projects, err := r.projects.ListForUser(ctx, actor.ID)
	if err != nil {
		return Scope{}, fmt.Errorf("listing actor projects: %w", err)
	}
	if projects == nil {
		projects = []project.Project{}
	}

	seen := make(map[int64]bool)
	var users []user.User
	for _, p := range projects {
		members, err := r.users.ListByProject(ctx, p.ID)
		if err != nil {
			return Scope{}, fmt.Errorf("listing members of project %d: %w", p.ID, err)
		}
		for _, m := range members {
			if !seen[m.ID] {
				seen[m.ID] = true
				users = append(users, m)
			}
		}
	}
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].Name() < users[j].Name()
	})

	return Scope{Users: users, Projects: projects}, nil
}
