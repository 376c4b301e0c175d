package service

import (
	"context"
	"time"

	"github.com/nmehta/activityclock/pkg/entity"
)

type TrackerServiceI interface {
	// Loads today + the history window and initializes the cursor
	Load(ctx context.Context) error
	// Logs the activity from the cursor; positive minutes cap the interval
	Append(ctx context.Context, activity string, explicitMinutes float64) error
	// Reverses the most recent append and rewinds the cursor
	Undo(ctx context.Context) error
	Cursor() time.Time
	CanUndo() bool
	Today() entity.DayLog
	History() []entity.DayLog
}

type LogsServiceI interface {
	GetDay(ctx context.Context, date string) (*entity.DayLog, error)
	Append(ctx context.Context, date string, session entity.Session) (*entity.DayLog, error)
	Delete(ctx context.Context, date string, session entity.Session) (*entity.DayLog, error)
	Range(ctx context.Context, from, to string) (map[string]*entity.DayLog, error)
	ListNames(ctx context.Context) ([]string, error)
	EnsureName(ctx context.Context, name string) error
}

type AnalyticsServiceI interface {
	Summary() SummaryReport
	Trends(windowDays int, scope TrendScope, topN int) TrendsReport
}

type AuthServiceI interface {
	Login(password string) error
}

type HabitsServiceI interface {
	GetDay(ctx context.Context, date string) (*entity.HabitDay, error)
	SaveDay(ctx context.Context, date string, data map[string]any) (*entity.HabitDay, error)
	Range(ctx context.Context, from, to string) (map[string]map[string]any, error)
	Streak(ctx context.Context, habit string) (int, error)
}
