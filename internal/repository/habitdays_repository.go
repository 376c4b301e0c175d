package repository

import (
	"context"
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nmehta/activityclock/pkg/cleanup"
	"github.com/nmehta/activityclock/pkg/entity"
)

type HabitDaysRepository struct {
	conn PgConnection
}

func NewHabitDaysRepo(cfg DBConfig) *HabitDaysRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitDaysRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitDaysRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitDaysRepository{
		conn: pool,
	}
}

func NewHabitDaysRepoWithConn(conn PgConnection) *HabitDaysRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitDaysRepo: " + err.Error())
	}
	return &HabitDaysRepository{
		conn: conn,
	}
}

func (hdr *HabitDaysRepository) Get(ctx context.Context, date string) (*entity.HabitDay, error) {
	var raw []byte
	row := hdr.conn.QueryRow(ctx, `SELECT data FROM habit_days WHERE date = $1;`, date)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.HabitDay{Date: date, Data: map[string]any{}}, nil
		}
		return nil, errors.New("getting habit day error: " + err.Error())
	}
	return decodeHabitDay(date, raw)
}

func (hdr *HabitDaysRepository) Put(ctx context.Context, date string, data map[string]any) (*entity.HabitDay, error) {
	encoded, err := sonic.Marshal(data)
	if err != nil {
		return nil, errors.New("encoding habit data error: " + err.Error())
	}
	var raw []byte
	row := hdr.conn.QueryRow(ctx, `INSERT INTO habit_days (date, data) VALUES ($1, $2::jsonb)
		ON CONFLICT (date) DO UPDATE SET data = $2::jsonb
		RETURNING data;`, date, encoded)
	if err := row.Scan(&raw); err != nil {
		return nil, errors.New("saving habit day error: " + err.Error())
	}
	return decodeHabitDay(date, raw)
}

func (hdr *HabitDaysRepository) ListRange(ctx context.Context, from, to string) (map[string]map[string]any, error) {
	rows, err := hdr.conn.Query(ctx, `SELECT date, data FROM habit_days WHERE date >= $1 AND date <= $2 ORDER BY date;`, from, to)
	if err != nil {
		return nil, errors.New("listing habit days error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[string]map[string]any)
	for rows.Next() {
		var date string
		var raw []byte
		if err = rows.Scan(&date, &raw); err != nil {
			return nil, errors.New("habit day row parsing error: " + err.Error())
		}
		day, err := decodeHabitDay(date, raw)
		if err != nil {
			return nil, err
		}
		result[date] = day.Data
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected habit day rows error: " + rows.Err().Error())
	}
	return result, nil
}

func decodeHabitDay(date string, raw []byte) (*entity.HabitDay, error) {
	data := map[string]any{}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &data); err != nil {
			return nil, errors.New("decoding habit data error: " + err.Error())
		}
	}
	return &entity.HabitDay{Date: date, Data: data}, nil
}
