package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	errorvalues "github.com/nmehta/activityclock/internal/error_values"
	"github.com/nmehta/activityclock/internal/repository"
	"github.com/nmehta/activityclock/pkg/entity"
)

// DayQuery addresses one calendar day.
type DayQuery struct {
	Date string `validate:"required,ymd"`
}

// RangeQuery addresses an inclusive span of calendar days.
type RangeQuery struct {
	From string `validate:"required,ymd"`
	To   string `validate:"required,ymd"`
}

// LogsService is the raw per-day session store surface: fetch, append,
// exact-match delete and range listing, plus the known-activity-names set.
type LogsService struct {
	logs  repository.DayLogsRepositoryI
	names repository.ActivityNamesRepositoryI
}

func NewLogsService(logsRepo repository.DayLogsRepositoryI, namesRepo repository.ActivityNamesRepositoryI) *LogsService {
	if logsRepo == nil || namesRepo == nil {
		log.Fatal("provided nil repos to logs service")
	}
	return &LogsService{
		logs:  logsRepo,
		names: namesRepo,
	}
}

func (ls *LogsService) GetDay(ctx context.Context, date string) (*entity.DayLog, error) {
	if err := validate.Struct(DayQuery{Date: date}); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	day, err := ls.logs.GetDay(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return day, nil
}

func (ls *LogsService) Append(ctx context.Context, date string, session entity.Session) (*entity.DayLog, error) {
	if err := validate.Struct(DayQuery{Date: date}); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	session.Activity = strings.TrimSpace(session.Activity)
	if session.Activity == "" {
		return nil, errorvalues.ErrEmptyActivity
	}
	if !session.End.After(session.Start) {
		return nil, errorvalues.ErrInvalidInterval
	}
	day, err := ls.logs.AppendSession(ctx, date, session)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return day, nil
}

// Delete removes one session matching the exact (start, end, activity)
// tuple. Deleting a tuple the day never stored returns the day unchanged.
func (ls *LogsService) Delete(ctx context.Context, date string, session entity.Session) (*entity.DayLog, error) {
	if err := validate.Struct(DayQuery{Date: date}); err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	session.Activity = strings.TrimSpace(session.Activity)
	if session.Activity == "" {
		return nil, errorvalues.ErrEmptyActivity
	}
	day, err := ls.logs.DeleteSession(ctx, date, session)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return day, nil
}

func (ls *LogsService) Range(ctx context.Context, from, to string) (map[string]*entity.DayLog, error) {
	if err := validate.Struct(RangeQuery{From: from, To: to}); err != nil || from > to {
		return nil, errorvalues.ErrInvalidDate
	}
	logs, err := ls.logs.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return logs, nil
}

func (ls *LogsService) ListNames(ctx context.Context) ([]string, error) {
	names, err := ls.names.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return names, nil
}

func (ls *LogsService) EnsureName(ctx context.Context, name string) error {
	if strings.TrimSpace(name) == "" {
		return errorvalues.ErrEmptyActivity
	}
	if err := ls.names.Ensure(ctx, name); err != nil {
		return fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return nil
}
