package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nmehta/activityclock/pkg/entity"
)

type DayLogsRepositoryI interface {
	// Fetches one day's log. A day without a record comes back with empty sessions
	GetDay(ctx context.Context, date string) (*entity.DayLog, error)
	// Appends a session to the day's log, creating the day on first write
	AppendSession(ctx context.Context, date string, session entity.Session) (*entity.DayLog, error)
	// Removes one session matching (start, end, activity) exactly. Deleting an
	// absent tuple is not an error and returns the current state
	DeleteSession(ctx context.Context, date string, session entity.Session) (*entity.DayLog, error)
	// Lists day logs in the inclusive [from, to] range, missing days omitted
	ListRange(ctx context.Context, from, to string) (map[string]*entity.DayLog, error)
}

type HabitDaysRepositoryI interface {
	// Fetches one day's habit record. A day without a record has an empty data map
	Get(ctx context.Context, date string) (*entity.HabitDay, error)
	// Replaces the day's data map entirely, creating the day on first write
	Put(ctx context.Context, date string, data map[string]any) (*entity.HabitDay, error)
	// Lists habit days in the inclusive [from, to] range, missing days omitted
	ListRange(ctx context.Context, from, to string) (map[string]map[string]any, error)
}

type ActivityNamesRepositoryI interface {
	// Lists known activity names sorted ascending
	List(ctx context.Context) ([]string, error)
	// Inserts the name if missing (first letter capitalized). Idempotent
	Ensure(ctx context.Context, name string) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
