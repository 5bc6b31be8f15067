package report

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/NBISweden/redmine-spent-time/internal/domain/project"
	"github.com/NBISweden/redmine-spent-time/internal/domain/timeentry"
	"github.com/NBISweden/redmine-spent-time/internal/domain/user"
)

// EntrySource provides the time entries to aggregate. A nil projectIDs slice
// means no project restriction.
type EntrySource interface {
	ListForUser(ctx context.Context, userID int64, from, to time.Time, projectIDs []int64) ([]timeentry.TimeEntry, error)
}

// Service builds spent-time reports.
type Service struct {
	entries EntrySource
	logger  *slog.Logger
}

// NewService creates a new report service.
func NewService(entries EntrySource, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{entries: entries, logger: logger}
}

// Aggregate fetches the report user's entries inside the range, restricted
// to projectScope when non-nil, and groups them per day. Whether reportUser
// may be queried at all is the caller's concern; Aggregate trusts its input.
func (s *Service) Aggregate(ctx context.Context, reportUser *user.User, rng Range, projectScope []project.Project) (Result, error) {
	var projectIDs []int64
	if projectScope != nil {
		projectIDs = make([]int64, 0, len(projectScope))
		for _, p := range projectScope {
			projectIDs = append(projectIDs, p.ID)
		}
	}

	entries, err := s.entries.ListForUser(ctx, reportUser.ID, rng.From, rng.To, projectIDs)
	if err != nil {
		return Result{}, fmt.Errorf("listing entries: %w", err)
	}

	result := Result{
		UserID:  reportUser.ID,
		Range:   rng,
		Entries: entries,
	}

	byDate := make(map[time.Time]*Day)
	for _, e := range entries {
		date := truncate(e.SpentOn)
		day, ok := byDate[date]
		if !ok {
			day = &Day{Date: date}
			byDate[date] = day
		}
		day.Entries = append(day.Entries, e)
		day.Hours += e.Hours
		result.TotalHours += e.Hours
	}

	result.Days = make([]Day, 0, len(byDate))
	for _, day := range byDate {
		result.Days = append(result.Days, *day)
	}
	sort.Slice(result.Days, func(i, j int) bool {
		return result.Days[i].Date.After(result.Days[j].Date)
	})

	s.logger.Debug("aggregated report",
		"user_id", reportUser.ID,
		"from", rng.From.Format(timeentry.DateLayout),
		"to", rng.To.Format(timeentry.DateLayout),
		"entries", len(entries))
	return result, nil
}
