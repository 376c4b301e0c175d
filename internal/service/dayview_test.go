package service_test

import (
	"testing"
	"time"

	"github.com/nmehta/activityclock/internal/service"
	"github.com/nmehta/activityclock/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 1, 15, hour, minute, 0, 0, mst)
}

func session(startH, startM, endH, endM int, activity string) entity.Session {
	return entity.Session{Start: at(startH, startM), End: at(endH, endM), Activity: activity}
}

func TestBuildDayViewMerge(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		Desc     string
		Sessions []entity.Session
		Want     []entity.Session
	}{
		{
			Desc: "same activity within three minutes merges",
			Sessions: []entity.Session{
				session(9, 0, 9, 30, "Gym"),
				session(9, 33, 10, 0, "Gym"),
			},
			Want: []entity.Session{session(9, 0, 10, 0, "Gym")},
		},
		{
			Desc: "four minute gap stays split",
			Sessions: []entity.Session{
				session(9, 0, 9, 30, "Gym"),
				session(9, 34, 10, 0, "Gym"),
			},
			Want: []entity.Session{
				session(9, 0, 9, 30, "Gym"),
				session(9, 34, 10, 0, "Gym"),
			},
		},
		{
			Desc: "different activity in between blocks the merge",
			Sessions: []entity.Session{
				session(9, 0, 9, 30, "Gym"),
				session(9, 30, 9, 32, "Water"),
				session(9, 32, 10, 0, "Gym"),
			},
			Want: []entity.Session{
				session(9, 0, 9, 30, "Gym"),
				session(9, 30, 9, 32, "Water"),
				session(9, 32, 10, 0, "Gym"),
			},
		},
		{
			Desc: "unsorted input is ordered before merging",
			Sessions: []entity.Session{
				session(9, 33, 10, 0, "Gym"),
				session(9, 0, 9, 30, "Gym"),
			},
			Want: []entity.Session{session(9, 0, 10, 0, "Gym")},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			t.Parallel()
			view := service.BuildDayView(tc.Sessions, service.DayViewOptions{MergeAdjacent: true})
			assert.Equal(t, tc.Want, view.Sessions)
		})
	}
}

func TestBuildDayViewGaps(t *testing.T) {
	t.Parallel()
	sessions := []entity.Session{
		session(9, 0, 9, 30, "Gym"),
		session(9, 34, 10, 0, "Read"),  // 4 min gap, below threshold
		session(10, 10, 11, 0, "Work"), // 10 min gap, visible
	}
	view := service.BuildDayView(sessions, service.DayViewOptions{ShowGaps: true})
	require.Len(t, view.Sessions, 4)
	assert.Equal(t, service.GapActivity, view.Sessions[2].Activity)
	assert.Equal(t, at(10, 0), view.Sessions[2].Start)
	assert.Equal(t, at(10, 10), view.Sessions[2].End)
}

func TestBuildDayViewFilterKeepsGaps(t *testing.T) {
	t.Parallel()
	sessions := []entity.Session{
		session(9, 0, 9, 30, "Gym"),
		session(9, 40, 10, 0, "Read"),
	}
	view := service.BuildDayView(sessions, service.DayViewOptions{
		ShowGaps:       true,
		ActivityFilter: "Gym",
	})
	require.Len(t, view.Sessions, 2)
	assert.Equal(t, "Gym", view.Sessions[0].Activity)
	assert.Equal(t, service.GapActivity, view.Sessions[1].Activity)
}

func TestBuildDayViewTotalIgnoresDisplayToggles(t *testing.T) {
	t.Parallel()
	sessions := []entity.Session{
		session(9, 0, 9, 30, "Gym"),
		session(9, 33, 10, 0, "Gym"),
		session(10, 30, 11, 0, "Read"),
	}
	plain := service.BuildDayView(sessions, service.DayViewOptions{})
	merged := service.BuildDayView(sessions, service.DayViewOptions{MergeAdjacent: true, ShowGaps: true})
	filtered := service.BuildDayView(sessions, service.DayViewOptions{ActivityFilter: "Read"})

	assert.Equal(t, 87.0, plain.TotalTrackedMin)
	assert.Equal(t, plain.TotalTrackedMin, merged.TotalTrackedMin)
	assert.Equal(t, plain.TotalTrackedMin, filtered.TotalTrackedMin)
}
