package service

import (
	"sort"

	"github.com/nmehta/activityclock/internal/timeutil"
	"github.com/nmehta/activityclock/pkg/entity"
)

// GapActivity marks a synthesized "untracked gap" pseudo-session. It never
// reaches storage and is excluded from all totals.
const GapActivity = "__GAP__"

const (
	// consecutive same-activity sessions this close merge into one
	maxMergeGapMinutes = 3
	// gaps at least this long get a visible pseudo-session
	minVisibleGapMinutes = 5
)

// DayViewOptions control the display transforms over one day's sessions.
type DayViewOptions struct {
	MergeAdjacent  bool
	ShowGaps       bool
	ActivityFilter string
}

// DayView is the derived display form of a day's sessions plus the stable
// total, which ignores the merge/gap toggles.
type DayView struct {
	Sessions        []entity.Session `json:"sessions"`
	TotalTrackedMin float64          `json:"total_tracked_min"`
}

// BuildDayView derives the display session list: sorted ascending by start,
// optionally merged, with optional gap sentinels, then filtered by activity.
// Gap sentinels survive the filter so untracked stretches stay visible.
func BuildDayView(sessions []entity.Session, opts DayViewOptions) DayView {
	sorted := SortSessions(sessions)

	view := sorted
	if opts.MergeAdjacent {
		view = mergeAdjacent(view)
	}
	if opts.ShowGaps {
		view = insertGaps(view)
	}
	if opts.ActivityFilter != "" && opts.ActivityFilter != "All" {
		filtered := make([]entity.Session, 0, len(view))
		for _, s := range view {
			if s.Activity == opts.ActivityFilter || s.Activity == GapActivity {
				filtered = append(filtered, s)
			}
		}
		view = filtered
	}

	total := 0.0
	for _, s := range sorted {
		total += s.Minutes()
	}
	return DayView{Sessions: view, TotalTrackedMin: total}
}

// SortSessions returns a copy ordered ascending by start time.
func SortSessions(sessions []entity.Session) []entity.Session {
	sorted := append([]entity.Session(nil), sessions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}

// mergeAdjacent joins consecutive sessions of the same activity separated by
// at most maxMergeGapMinutes. Merging never reaches across a non-matching
// session in between.
func mergeAdjacent(sorted []entity.Session) []entity.Session {
	out := make([]entity.Session, 0, len(sorted))
	for _, s := range sorted {
		if len(out) > 0 {
			last := &out[len(out)-1]
			if last.Activity == s.Activity && timeutil.DiffMinutes(last.End, s.Start) <= maxMergeGapMinutes {
				if s.End.After(last.End) {
					last.End = s.End
				}
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

func insertGaps(sessions []entity.Session) []entity.Session {
	out := make([]entity.Session, 0, len(sessions)*2)
	for i, cur := range sessions {
		out = append(out, cur)
		if i+1 >= len(sessions) {
			break
		}
		next := sessions[i+1]
		if timeutil.DiffMinutes(cur.End, next.Start) >= minVisibleGapMinutes {
			out = append(out, entity.Session{
				Start:    cur.End,
				End:      next.Start,
				Activity: GapActivity,
			})
		}
	}
	return out
}
