package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/nmehta/activityclock/internal/error_values"
	"github.com/nmehta/activityclock/internal/localstate"
	"github.com/nmehta/activityclock/internal/repository/mocks"
	"github.com/nmehta/activityclock/internal/service"
	"github.com/nmehta/activityclock/internal/vacation"
	"github.com/nmehta/activityclock/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type habitsFixture struct {
	habits    *service.HabitsService
	repo      *mocks.MockHabitDaysRepositoryI
	vacations *vacation.Store
}

func newHabitsFixture(t *testing.T, now time.Time) *habitsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitDaysRepositoryI(ctrl)
	state, err := localstate.New(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	vacations := vacation.NewStore(state)
	return &habitsFixture{
		habits: service.NewHabitsServiceWithClock(repo, vacations, mst, "2026-01-01",
			func() time.Time { return now }),
		repo:      repo,
		vacations: vacations,
	}
}

func TestHabitsSaveDayDerivesWasteFields(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 15, 20, 0, 0, 0, mst)

	testCases := []struct {
		Desc      string
		Input     map[string]any
		WantFlag  any
		WantDelta any
	}{
		{
			Desc:      "under the budget",
			Input:     map[string]any{"wastedMin": 30.0},
			WantFlag:  true,
			WantDelta: -20.0,
		},
		{
			Desc:      "exactly the budget",
			Input:     map[string]any{"wastedMin": 50.0},
			WantFlag:  true,
			WantDelta: 0.0,
		},
		{
			Desc:      "over the budget",
			Input:     map[string]any{"wastedMin": 80.0},
			WantFlag:  false,
			WantDelta: 30.0,
		},
		{
			Desc: "absent wastedMin strips stale derived fields",
			Input: map[string]any{
				service.LessWasteHabit: true,
				"wasteDelta":           -20.0,
				"Gym":                  true,
			},
			WantFlag:  nil,
			WantDelta: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			t.Parallel()
			f := newHabitsFixture(t, now)
			f.repo.EXPECT().Get(gomock.Any(), "2026-01-15").Return(
				&entity.HabitDay{Date: "2026-01-15", Data: map[string]any{}}, nil)
			f.repo.EXPECT().Put(gomock.Any(), "2026-01-15", gomock.Any()).DoAndReturn(
				func(_ context.Context, date string, data map[string]any) (*entity.HabitDay, error) {
					return &entity.HabitDay{Date: date, Data: data}, nil
				})

			saved, err := f.habits.SaveDay(context.Background(), "2026-01-15", tc.Input)
			require.NoError(t, err)
			if tc.WantFlag == nil {
				assert.NotContains(t, saved.Data, service.LessWasteHabit)
				assert.NotContains(t, saved.Data, "wasteDelta")
			} else {
				assert.Equal(t, tc.WantFlag, saved.Data[service.LessWasteHabit])
				assert.Equal(t, tc.WantDelta, saved.Data["wasteDelta"])
			}
		})
	}
}

func TestHabitsSaveDayStampsEventTimestamps(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 15, 20, 0, 0, 0, mst)
	f := newHabitsFixture(t, now)

	f.repo.EXPECT().Get(gomock.Any(), "2026-01-15").Return(&entity.HabitDay{
		Date: "2026-01-15",
		Data: map[string]any{"newsAccessCount": 2.0, "musicListenCount": 3.0},
	}, nil)
	f.repo.EXPECT().Put(gomock.Any(), "2026-01-15", gomock.Any()).DoAndReturn(
		func(_ context.Context, date string, data map[string]any) (*entity.HabitDay, error) {
			return &entity.HabitDay{Date: date, Data: data}, nil
		})

	saved, err := f.habits.SaveDay(context.Background(), "2026-01-15", map[string]any{
		"newsAccessCount":  3.0, // grew
		"musicListenCount": 3.0, // unchanged
	})
	require.NoError(t, err)
	assert.Equal(t, now.UTC().Format(time.RFC3339), saved.Data["lastNewsTs"])
	assert.NotContains(t, saved.Data, "lastMusicTs")
}

func TestHabitsSaveDayInvalidDate(t *testing.T) {
	t.Parallel()
	f := newHabitsFixture(t, time.Date(2026, 1, 15, 20, 0, 0, 0, mst))
	_, err := f.habits.SaveDay(context.Background(), "15-01-2026", map[string]any{})
	assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
}

func TestHabitsGetDayNormalizesLegacyRecords(t *testing.T) {
	t.Parallel()
	f := newHabitsFixture(t, time.Date(2026, 1, 15, 20, 0, 0, 0, mst))
	f.repo.EXPECT().Get(gomock.Any(), "2026-01-10").Return(&entity.HabitDay{
		Date: "2026-01-10",
		Data: map[string]any{
			"weight": "82.5",
			"study":  map[string]any{"leetcode": 45.0},
		},
	}, nil)

	day, err := f.habits.GetDay(context.Background(), "2026-01-10")
	require.NoError(t, err)
	assert.Equal(t, 82.5, day.Data["weight"])
	study := day.Data["study"].(map[string]any)
	assert.Equal(t, 45.0, study["BK"])
}

func TestStudyValueLegacyFallback(t *testing.T) {
	t.Parallel()
	data := map[string]any{"study": map[string]any{
		"SD":          30.0,
		"resumeApply": 15.0,
	}}
	assert.Equal(t, 30.0, service.StudyValue("SD", data))
	assert.Equal(t, 15.0, service.StudyValue("AP", data))
	assert.Equal(t, 0.0, service.StudyValue("BK", data))
}

func TestStreakFrom(t *testing.T) {
	t.Parallel()
	habit := "Gym"
	notVacation := func(string) bool { return false }

	testCases := []struct {
		Desc       string
		History    map[string]map[string]any
		IsVacation func(string) bool
		Want       int
	}{
		{
			Desc: "run of three",
			History: map[string]map[string]any{
				"2026-01-15": {habit: true},
				"2026-01-14": {habit: true},
				"2026-01-13": {habit: true},
				"2026-01-12": {habit: false},
			},
			IsVacation: notVacation,
			Want:       3,
		},
		{
			Desc: "missing day breaks the run",
			History: map[string]map[string]any{
				"2026-01-15": {habit: true},
				"2026-01-13": {habit: true},
			},
			IsVacation: notVacation,
			Want:       1,
		},
		{
			Desc: "vacation day is transparent",
			History: map[string]map[string]any{
				"2026-01-15": {habit: true},
				"2026-01-13": {habit: true},
			},
			IsVacation: func(key string) bool { return key == "2026-01-14" },
			Want:       2,
		},
		{
			Desc: "numeric truthiness counts nonzero",
			History: map[string]map[string]any{
				"2026-01-15": {habit: 2.0},
				"2026-01-14": {habit: 0.0},
			},
			IsVacation: notVacation,
			Want:       1,
		},
		{
			Desc:       "empty history",
			History:    map[string]map[string]any{},
			IsVacation: notVacation,
			Want:       0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			t.Parallel()
			got := service.StreakFrom(habit, "2026-01-15", tc.History, tc.IsVacation)
			assert.Equal(t, tc.Want, got)
		})
	}
}

func TestStreakFromBoundedOnAllVacations(t *testing.T) {
	t.Parallel()
	// every day a vacation would otherwise walk back forever
	got := service.StreakFrom("Gym", "2026-01-15", map[string]map[string]any{},
		func(string) bool { return true })
	assert.Equal(t, 0, got)
}

func TestHabitsStreakUsesStoredHistory(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 15, 20, 0, 0, 0, mst)
	f := newHabitsFixture(t, now)
	f.repo.EXPECT().ListRange(gomock.Any(), "2026-01-01", "2026-01-15").Return(
		map[string]map[string]any{
			"2026-01-15": {"Gym": true},
			"2026-01-14": {"Gym": true},
		}, nil)

	streak, err := f.habits.Streak(context.Background(), "Gym")
	require.NoError(t, err)
	assert.Equal(t, 2, streak)
}

func TestHabitsRangeValidation(t *testing.T) {
	t.Parallel()
	f := newHabitsFixture(t, time.Date(2026, 1, 15, 20, 0, 0, 0, mst))
	_, err := f.habits.Range(context.Background(), "2026-01-15", "2026-01-10")
	assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
}
