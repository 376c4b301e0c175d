package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nmehta/activityclock/internal/localstate"
	"github.com/nmehta/activityclock/internal/service"
	"github.com/nmehta/activityclock/internal/service/mocks"
	"github.com/nmehta/activityclock/internal/vacation"
	"github.com/nmehta/activityclock/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func daySessions(date string, pairs ...entity.Session) entity.DayLog {
	return entity.DayLog{Date: date, Sessions: pairs}
}

func sessionOn(date string, startH, startM, minutes int, activity string) entity.Session {
	day, _ := time.ParseInLocation("2006-01-02", date, mst)
	start := day.Add(time.Duration(startH)*time.Hour + time.Duration(startM)*time.Minute)
	return entity.Session{Start: start, End: start.Add(time.Duration(minutes) * time.Minute), Activity: activity}
}

func TestBuildTodayBreakdown(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, mst) // 600 minutes in
	today := daySessions("2026-01-15",
		sessionOn("2026-01-15", 8, 0, 30, "Read"),
		sessionOn("2026-01-15", 9, 0, 60, "Gym"),
	)
	breakdown := service.BuildTodayBreakdown(today, now, mst)

	require.Len(t, breakdown.Rows, 3)
	assert.Equal(t, "Gym", breakdown.Rows[0].Activity)
	assert.Equal(t, 60.0, breakdown.Rows[0].Minutes)
	assert.Equal(t, 10.0, breakdown.Rows[0].Pct)
	assert.Equal(t, "Read", breakdown.Rows[1].Activity)
	assert.Equal(t, service.UntrackedActivity, breakdown.Rows[2].Activity)
	assert.Equal(t, 510.0, breakdown.Rows[2].Minutes)
	assert.Equal(t, 90.0, breakdown.TotalTracked)
	assert.Equal(t, 600.0, breakdown.SinceMidnight)
}

func TestBuildTodayBreakdownNothingTracked(t *testing.T) {
	t.Parallel()
	// 100 minutes into the day with no sessions: the whole stretch is untracked
	now := time.Date(2026, 1, 15, 1, 40, 0, 0, mst)
	breakdown := service.BuildTodayBreakdown(entity.DayLog{Date: "2026-01-15"}, now, mst)

	require.Len(t, breakdown.Rows, 1)
	assert.Equal(t, service.UntrackedActivity, breakdown.Rows[0].Activity)
	assert.Equal(t, 100.0, breakdown.Rows[0].Minutes)
	assert.Equal(t, 100.0, breakdown.Rows[0].Pct)
	assert.Equal(t, 0.0, breakdown.TotalTracked)
}

func TestBuildHistoricalSummaryAverageSkipsInactiveDays(t *testing.T) {
	t.Parallel()
	// 60 + 30 over two active days averages 45, not 30 over three
	history := []entity.DayLog{
		daySessions("2026-01-12", sessionOn("2026-01-12", 9, 0, 60, "Gym")),
		daySessions("2026-01-13", sessionOn("2026-01-13", 9, 0, 30, "Gym")),
		daySessions("2026-01-14"),
	}
	now := time.Date(2026, 1, 15, 10, 0, 0, 0, mst)
	breakdown := service.BuildTodayBreakdown(
		daySessions("2026-01-15", sessionOn("2026-01-15", 9, 0, 50, "Gym")), now, mst)

	summary := service.BuildHistoricalSummary(history, breakdown)

	assert.Equal(t, 45.0, summary.AvgPerDay["Gym"])
	assert.Equal(t, 3, summary.DayCount)
	assert.Equal(t, 30.0, summary.AvgTrackedPerDay)

	require.Len(t, summary.Deltas, 1)
	delta := summary.Deltas[0]
	assert.Equal(t, "Gym", delta.Activity)
	assert.Equal(t, 50.0, delta.TodayMin)
	assert.Equal(t, 5.0, delta.Delta)
	require.NotNil(t, delta.DeltaPct)
	assert.InDelta(t, 11.11, *delta.DeltaPct, 0.01)
}

func TestBuildTrendDaysDenominators(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 1, 15, 2, 0, 0, 0, mst) // 120 minutes into today
	history := []entity.DayLog{
		daySessions("2026-01-14", sessionOn("2026-01-14", 9, 0, 440, "Work")),
		daySessions("2026-01-15", sessionOn("2026-01-15", 0, 0, 90, "Sleep")),
	}
	days := service.BuildTrendDays(history, now, mst)
	require.Len(t, days, 2)

	past := days[0]
	assert.Equal(t, 1440.0, past.TotalMin)
	assert.Equal(t, 1000.0, past.Totals[service.UntrackedActivity])

	today := days[1]
	assert.Equal(t, 120.0, today.TotalMin)
	assert.Equal(t, 30.0, today.Totals[service.UntrackedActivity])
}

func TestWindowScopeWindowsBeforeScoping(t *testing.T) {
	t.Parallel()
	days := []entity.TrendDay{
		{Date: "2026-01-09", Weekend: false},
		{Date: "2026-01-10", Weekend: true},
		{Date: "2026-01-11", Weekend: true},
		{Date: "2026-01-12", Weekend: false},
		{Date: "2026-01-13", Weekend: false},
		{Date: "2026-01-14", Weekend: false},
		{Date: "2026-01-15", Weekend: false},
	}

	// the window cuts first; weekend days outside it never reappear
	scoped := service.WindowScope(days, 4, service.ScopeWeekends)
	assert.Empty(t, scoped)

	scoped = service.WindowScope(days, 7, service.ScopeWeekends)
	require.Len(t, scoped, 2)
	assert.Equal(t, "2026-01-10", scoped[0].Date)

	scoped = service.WindowScope(days, 4, service.ScopeWeekdays)
	require.Len(t, scoped, 4)
	assert.Equal(t, "2026-01-12", scoped[0].Date)
}

func TestAggregateTopN(t *testing.T) {
	t.Parallel()
	totals := map[string]float64{
		"Work":  300,
		"Sleep": 200,
		"Gym":   100,
		"Read":  50,
		"Chess": 50,
	}
	agg := service.AggregateTopN(totals, 3)
	assert.Equal(t, 300.0, agg["Work"])
	assert.Equal(t, 200.0, agg["Sleep"])
	assert.Equal(t, 100.0, agg["Gym"])
	// ties below the cut rank alphabetically; both fold into Other here
	assert.Equal(t, 100.0, agg[service.OtherActivity])

	chosen := service.ChosenActivities(agg)
	assert.Equal(t, []string{"Work", "Sleep", "Gym", service.OtherActivity}, chosen)
}

func TestBuildSeriesBucketsUnchosenIntoOther(t *testing.T) {
	t.Parallel()
	days := []entity.TrendDay{
		{
			Date:     "2026-01-14",
			TotalMin: 1440,
			Totals: map[string]float64{
				"Work":                    720,
				"Read":                    60,
				"Chess":                   30,
				service.UntrackedActivity: 630,
			},
		},
	}
	chosen := []string{"Work", service.OtherActivity}
	series := service.BuildSeries(days, chosen)

	require.Len(t, series["Work"], 1)
	assert.Equal(t, 720.0, series["Work"][0].Min)
	assert.Equal(t, 50.0, series["Work"][0].Pct)
	// Read and Chess collapse into Other; Untracked never contributes
	assert.Equal(t, 90.0, series[service.OtherActivity][0].Min)
	assert.InDelta(t, 6.25, series[service.OtherActivity][0].Pct, 0.001)
}

func TestAnalyticsServiceExcludesVacationDays(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tracker := mocks.NewMockTrackerServiceI(ctrl)

	state, err := localstate.New(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	vacations := vacation.NewStore(state)
	vacations.Set([]string{"2026-01-13"})

	history := []entity.DayLog{
		daySessions("2026-01-12", sessionOn("2026-01-12", 9, 0, 60, "Gym")),
		daySessions("2026-01-13", sessionOn("2026-01-13", 9, 0, 600, "Gym")),
		daySessions("2026-01-14", sessionOn("2026-01-14", 9, 0, 30, "Gym")),
	}
	tracker.EXPECT().Today().Return(daySessions("2026-01-15"))
	tracker.EXPECT().History().Return(history)

	analytics := service.NewAnalyticsService(tracker, vacations, mst)
	summary := analytics.Summary()

	// the vacation day's 600 minutes never reach the average
	assert.Equal(t, 45.0, summary.Historical.AvgPerDay["Gym"])
	assert.Equal(t, 2, summary.Historical.DayCount)
}

func TestAnalyticsServiceTrendsDefaults(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	tracker := mocks.NewMockTrackerServiceI(ctrl)

	state, err := localstate.New(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	vacations := vacation.NewStore(state)

	tracker.EXPECT().History().Return([]entity.DayLog{
		daySessions("2026-01-14", sessionOn("2026-01-14", 9, 0, 60, "Gym")),
	})

	analytics := service.NewAnalyticsService(tracker, vacations, mst)
	// out-of-range window, unknown scope and zero topN fall back to defaults
	report := analytics.Trends(13, service.TrendScope("Sundays"), 0)

	require.Len(t, report.Days, 1)
	assert.Equal(t, []string{"Gym"}, report.Activities)
	require.Len(t, report.Series["Gym"], 1)
	assert.Equal(t, 60.0, report.Series["Gym"][0].Min)
}