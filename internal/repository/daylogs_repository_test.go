package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nmehta/activityclock/internal/repository"
	"github.com/nmehta/activityclock/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestGetDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDayLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT sessions FROM day_logs WHERE date = $1;`)
	date := "2026-01-14"
	testCases := []struct {
		Desc            string
		Error           error
		Sessions        int
		MockPrepareFunc func()
	}{
		{
			Desc:     "successful",
			Error:    nil,
			Sessions: 1,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(date).WillReturnRows(
					pgxmock.NewRows([]string{"sessions"}).AddRow(
						[]byte(`[{"start":"2026-01-14T10:00:00Z","end":"2026-01-14T11:00:00Z","activity":"Gym"}]`),
					),
				)
			},
		},
		{
			Desc:     "absent day is empty, not an error",
			Error:    nil,
			Sessions: 0,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(date).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting day log error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(date).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			day, err := repo.GetDay(context.Background(), date)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, date, day.Date)
			assert.Len(t, day.Sessions, tc.Sessions)
		})
	}
}

func TestAppendSession(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDayLogsRepoWithConn(mock)
	date := "2026-01-14"
	session := entity.Session{
		Start:    mustTime(t, "2026-01-14T10:00:00Z"),
		End:      mustTime(t, "2026-01-14T11:00:00Z"),
		Activity: "Gym",
	}
	mock.ExpectQuery("INSERT INTO day_logs").WithArgs(date, pgxmock.AnyArg()).WillReturnRows(
		pgxmock.NewRows([]string{"sessions"}).AddRow(
			[]byte(`[{"start":"2026-01-14T10:00:00Z","end":"2026-01-14T11:00:00Z","activity":"Gym"}]`),
		),
	)
	day, err := repo.AppendSession(context.Background(), date, session)
	require.NoError(t, err)
	require.Len(t, day.Sessions, 1)
	assert.Equal(t, "Gym", day.Sessions[0].Activity)
	assert.True(t, day.Sessions[0].Start.Equal(session.Start))
}

func TestDeleteSession(t *testing.T) {
	date := "2026-01-14"
	selectQuery := regexp.QuoteMeta(`SELECT sessions FROM day_logs WHERE date = $1;`)
	updateQuery := regexp.QuoteMeta(`UPDATE day_logs SET sessions = $2::jsonb WHERE date = $1;`)
	stored := []byte(`[` +
		`{"start":"2026-01-14T10:00:00Z","end":"2026-01-14T11:00:00Z","activity":"Gym"},` +
		`{"start":"2026-01-14T10:00:00Z","end":"2026-01-14T11:00:00Z","activity":"Gym"},` +
		`{"start":"2026-01-14T12:00:00Z","end":"2026-01-14T12:30:00Z","activity":"Read"}]`)
	target := entity.Session{
		Start:    time.Date(2026, 1, 14, 10, 0, 0, 0, time.UTC),
		End:      time.Date(2026, 1, 14, 11, 0, 0, 0, time.UTC),
		Activity: "Gym",
	}

	t.Run("removes one matching occurrence", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewDayLogsRepoWithConn(mock)
		mock.ExpectQuery(selectQuery).WithArgs(date).WillReturnRows(
			pgxmock.NewRows([]string{"sessions"}).AddRow(stored),
		)
		mock.ExpectExec(updateQuery).WithArgs(date, pgxmock.AnyArg()).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		day, err := repo.DeleteSession(context.Background(), date, target)
		require.NoError(t, err)
		// duplicate tuple loses exactly one occurrence
		require.Len(t, day.Sessions, 2)
		assert.Equal(t, "Gym", day.Sessions[0].Activity)
		assert.Equal(t, "Read", day.Sessions[1].Activity)
	})

	t.Run("absent tuple is idempotent", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewDayLogsRepoWithConn(mock)
		mock.ExpectQuery(selectQuery).WithArgs(date).WillReturnRows(
			pgxmock.NewRows([]string{"sessions"}).AddRow(
				[]byte(`[{"start":"2026-01-14T12:00:00Z","end":"2026-01-14T12:30:00Z","activity":"Read"}]`),
			),
		)
		day, err := repo.DeleteSession(context.Background(), date, target)
		require.NoError(t, err)
		require.Len(t, day.Sessions, 1)
		assert.Equal(t, "Read", day.Sessions[0].Activity)
	})
}

func TestListRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewDayLogsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT date, sessions FROM day_logs WHERE date >= $1 AND date <= $2 ORDER BY date;`)
	mock.ExpectQuery(query).WithArgs("2026-01-13", "2026-01-15").WillReturnRows(
		pgxmock.NewRows([]string{"date", "sessions"}).
			AddRow("2026-01-13", []byte(`[]`)).
			AddRow("2026-01-15", []byte(`[{"start":"2026-01-15T08:00:00Z","end":"2026-01-15T09:00:00Z","activity":"Read"}]`)),
	)
	logs, err := repo.ListRange(context.Background(), "2026-01-13", "2026-01-15")
	require.NoError(t, err)
	// missing 2026-01-14 stays omitted
	require.Len(t, logs, 2)
	assert.Empty(t, logs["2026-01-13"].Sessions)
	assert.Len(t, logs["2026-01-15"].Sessions, 1)
}
