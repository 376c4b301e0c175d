package entity

import "time"

// Session is a single timed, labeled activity interval. End is always after Start;
// a session never crosses a local-midnight boundary once stored.
type Session struct {
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Activity string    `json:"activity"`
}

// Minutes returns the session duration in wall-clock minutes.
func (s Session) Minutes() float64 {
	return s.End.Sub(s.Start).Minutes()
}

// DayLog holds all sessions of one calendar day, keyed YYYY-MM-DD in the app
// time zone. Server-side order is insertion order.
type DayLog struct {
	Date     string    `json:"date"`
	Sessions []Session `json:"sessions"`
}

// HabitDay is the habit/metric record for one calendar day: boolean flags,
// numeric counters, a "study" sub-map of minute counts, optional weight and
// wastedMin plus fields derived from wastedMin.
type HabitDay struct {
	Date string         `json:"date"`
	Data map[string]any `json:"data"`
}

// UndoRecord remembers the exact segments of the last logged chunk plus the
// cursor value to restore. At most one is kept; it is not persisted.
type UndoRecord struct {
	PrevStart time.Time
	Segments  []Session
}

// TrendDay is one day of the trend series: per-activity minute totals and the
// denominator used in percentage mode (1440, or minutes since midnight for today).
type TrendDay struct {
	Date     string             `json:"date"`
	Weekend  bool               `json:"weekend"`
	Totals   map[string]float64 `json:"totals"`
	TotalMin float64            `json:"total_min"`
}

// TrendPoint is one day's value for one activity's trend line.
type TrendPoint struct {
	Date    string  `json:"date"`
	Min     float64 `json:"m"`
	Pct     float64 `json:"pct"`
	Weekend bool    `json:"weekend"`
}

// BreakdownRow is one activity's share of today.
type BreakdownRow struct {
	Activity string  `json:"activity"`
	Minutes  float64 `json:"minutes"`
	Pct      float64 `json:"pct"`
}

// ActivityDelta compares today's minutes for one activity against its
// historical daily average. DeltaPct is nil when the average is zero.
type ActivityDelta struct {
	Activity string   `json:"activity"`
	AvgMin   float64  `json:"avg_min"`
	TodayMin float64  `json:"today_min"`
	Delta    float64  `json:"delta"`
	DeltaPct *float64 `json:"delta_pct,omitempty"`
}
