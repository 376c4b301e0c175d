package repository

import (
	"context"
	"errors"
	"log"
	"strings"
	"unicode"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nmehta/activityclock/pkg/cleanup"
)

type ActivityNamesRepository struct {
	conn PgConnection
}

func NewActivityNamesRepo(cfg DBConfig) *ActivityNamesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for activityNamesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activityNamesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ActivityNamesRepository{
		conn: pool,
	}
}

func NewActivityNamesRepoWithConn(conn PgConnection) *ActivityNamesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activityNamesRepo: " + err.Error())
	}
	return &ActivityNamesRepository{
		conn: conn,
	}
}

func (anr *ActivityNamesRepository) List(ctx context.Context) ([]string, error) {
	rows, err := anr.conn.Query(ctx, `SELECT name FROM activity_names ORDER BY name;`)
	if err != nil {
		return nil, errors.New("listing activity names error: " + err.Error())
	}
	defer rows.Close()
	names := make([]string, 0, 8)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, errors.New("activity name row parsing error: " + err.Error())
		}
		names = append(names, name)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected activity name rows error: " + rows.Err().Error())
	}
	return names, nil
}

func (anr *ActivityNamesRepository) Ensure(ctx context.Context, name string) error {
	_, err := anr.conn.Exec(ctx, `INSERT INTO activity_names (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`,
		Capitalize(name),
	)
	if err != nil {
		return errors.New("ensuring activity name error: " + err.Error())
	}
	return nil
}

// Capitalize upper-cases the first letter of a name, leaving the rest as typed.
func Capitalize(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return trimmed
	}
	runes := []rune(trimmed)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
