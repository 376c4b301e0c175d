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

// DayLogsRepository stores one jsonb sessions array per calendar day,
// mirroring a document store keyed by date.
type DayLogsRepository struct {
	conn PgConnection
}

func NewDayLogsRepo(cfg DBConfig) *DayLogsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for dayLogsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dayLogsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &DayLogsRepository{
		conn: pool,
	}
}

func NewDayLogsRepoWithConn(conn PgConnection) *DayLogsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for dayLogsRepo: " + err.Error())
	}
	return &DayLogsRepository{
		conn: conn,
	}
}

func (dlr *DayLogsRepository) GetDay(ctx context.Context, date string) (*entity.DayLog, error) {
	var raw []byte
	row := dlr.conn.QueryRow(ctx, `SELECT sessions FROM day_logs WHERE date = $1;`, date)
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.DayLog{Date: date, Sessions: []entity.Session{}}, nil
		}
		return nil, errors.New("getting day log error: " + err.Error())
	}
	return decodeDayLog(date, raw)
}

func (dlr *DayLogsRepository) AppendSession(ctx context.Context, date string, session entity.Session) (*entity.DayLog, error) {
	encoded, err := sonic.Marshal(session)
	if err != nil {
		return nil, errors.New("encoding session error: " + err.Error())
	}
	var raw []byte
	row := dlr.conn.QueryRow(ctx, `INSERT INTO day_logs (date, sessions) VALUES ($1, jsonb_build_array($2::jsonb))
		ON CONFLICT (date) DO UPDATE SET sessions = day_logs.sessions || $2::jsonb
		RETURNING sessions;`, date, encoded)
	if err := row.Scan(&raw); err != nil {
		return nil, errors.New("appending session error: " + err.Error())
	}
	return decodeDayLog(date, raw)
}

func (dlr *DayLogsRepository) DeleteSession(ctx context.Context, date string, session entity.Session) (*entity.DayLog, error) {
	current, err := dlr.GetDay(ctx, date)
	if err != nil {
		return nil, err
	}
	kept := make([]entity.Session, 0, len(current.Sessions))
	removed := false
	for _, s := range current.Sessions {
		if !removed && s.Activity == session.Activity &&
			s.Start.Equal(session.Start) && s.End.Equal(session.End) {
			// only one occurrence of a duplicated tuple goes away
			removed = true
			continue
		}
		kept = append(kept, s)
	}
	if !removed {
		return current, nil
	}
	encoded, err := sonic.Marshal(kept)
	if err != nil {
		return nil, errors.New("encoding sessions error: " + err.Error())
	}
	_, err = dlr.conn.Exec(ctx, `UPDATE day_logs SET sessions = $2::jsonb WHERE date = $1;`, date, encoded)
	if err != nil {
		return nil, errors.New("deleting session error: " + err.Error())
	}
	return &entity.DayLog{Date: date, Sessions: kept}, nil
}

func (dlr *DayLogsRepository) ListRange(ctx context.Context, from, to string) (map[string]*entity.DayLog, error) {
	rows, err := dlr.conn.Query(ctx, `SELECT date, sessions FROM day_logs WHERE date >= $1 AND date <= $2 ORDER BY date;`, from, to)
	if err != nil {
		return nil, errors.New("listing day logs error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[string]*entity.DayLog)
	for rows.Next() {
		var date string
		var raw []byte
		if err = rows.Scan(&date, &raw); err != nil {
			return nil, errors.New("day log row parsing error: " + err.Error())
		}
		day, err := decodeDayLog(date, raw)
		if err != nil {
			return nil, err
		}
		result[date] = day
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected day log rows error: " + rows.Err().Error())
	}
	return result, nil
}

func decodeDayLog(date string, raw []byte) (*entity.DayLog, error) {
	sessions := make([]entity.Session, 0, 4)
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &sessions); err != nil {
			return nil, errors.New("decoding sessions error: " + err.Error())
		}
	}
	return &entity.DayLog{Date: date, Sessions: sessions}, nil
}
