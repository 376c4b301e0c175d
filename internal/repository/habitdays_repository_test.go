package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/nmehta/activityclock/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHabitDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitDaysRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT data FROM habit_days WHERE date = $1;`)
	date := "2026-01-14"
	testCases := []struct {
		Desc            string
		Error           error
		WantKeys        int
		MockPrepareFunc func()
	}{
		{
			Desc:     "successful",
			WantKeys: 2,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(date).WillReturnRows(
					pgxmock.NewRows([]string{"data"}).AddRow(
						[]byte(`{"Daily Book":true,"wastedMin":30}`),
					),
				)
			},
		},
		{
			Desc:     "absent day has empty data",
			WantKeys: 0,
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(date).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("getting habit day error: db error"),
			MockPrepareFunc: func() {
				mock.ExpectQuery(query).WithArgs(date).WillReturnError(errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepareFunc()
			day, err := repo.Get(context.Background(), date)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, date, day.Date)
			assert.Len(t, day.Data, tc.WantKeys)
		})
	}
}

func TestPutHabitDay(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitDaysRepoWithConn(mock)
	date := "2026-01-14"
	mock.ExpectQuery("INSERT INTO habit_days").WithArgs(date, pgxmock.AnyArg()).WillReturnRows(
		pgxmock.NewRows([]string{"data"}).AddRow([]byte(`{"wastedMin":60,"wasteDelta":10}`)),
	)
	day, err := repo.Put(context.Background(), date, map[string]any{"wastedMin": 60, "wasteDelta": 10})
	require.NoError(t, err)
	assert.Equal(t, float64(10), day.Data["wasteDelta"])
}

func TestListHabitDayRange(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitDaysRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT date, data FROM habit_days WHERE date >= $1 AND date <= $2 ORDER BY date;`)
	mock.ExpectQuery(query).WithArgs("2026-01-13", "2026-01-15").WillReturnRows(
		pgxmock.NewRows([]string{"date", "data"}).
			AddRow("2026-01-13", []byte(`{"Daily Book":true}`)).
			AddRow("2026-01-15", []byte(`{}`)),
	)
	days, err := repo.ListRange(context.Background(), "2026-01-13", "2026-01-15")
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, true, days["2026-01-13"]["Daily Book"])
}
