package service

import (
	"log"
	"math"
	"sort"
	"time"

	"github.com/nmehta/activityclock/internal/timeutil"
	"github.com/nmehta/activityclock/internal/vacation"
	"github.com/nmehta/activityclock/pkg/entity"
)

// UntrackedActivity is the synthetic row for minutes of the day no session
// covers. It never participates in averages, deltas or top-N ranking.
const UntrackedActivity = "Untracked"

// OtherActivity buckets everything outside the top-N trend selection.
const OtherActivity = "Other"

// DefaultTopN is how many activities get their own trend series.
const DefaultTopN = 7

// TrendWindows are the allowed last-N-days windows.
var TrendWindows = []int{7, 14, 30, 60}

const minutesPerDay = 1440

type TrendScope string

const (
	ScopeAll      TrendScope = "All"
	ScopeWeekdays TrendScope = "Weekdays"
	ScopeWeekends TrendScope = "Weekends"
)

// TodayBreakdown is today's per-activity totals plus the prorated context.
type TodayBreakdown struct {
	Rows          []entity.BreakdownRow `json:"rows"`
	SinceMidnight float64               `json:"since_midnight"`
	TotalTracked  float64               `json:"total_tracked"`
}

// HistoricalSummary compares today against per-activity historical averages.
type HistoricalSummary struct {
	AvgPerDay        map[string]float64     `json:"avg_per_day"`
	Deltas           []entity.ActivityDelta `json:"deltas"`
	DayCount         int                    `json:"day_count"`
	AvgTrackedPerDay float64                `json:"avg_tracked_per_day"`
}

// SummaryReport is the full today-vs-usual view.
type SummaryReport struct {
	Today      TodayBreakdown    `json:"today"`
	Historical HistoricalSummary `json:"historical"`
}

// TrendsReport is the windowed, scoped trend view with top-N series.
type TrendsReport struct {
	Days       []entity.TrendDay              `json:"days"`
	Activities []string                       `json:"activities"`
	Series     map[string][]entity.TrendPoint `json:"series"`
}

// AnalyticsService derives the historical aggregates from the tracker's
// cached history, with vacation days excluded before any computation.
// Everything is recomputed per call; nothing here caches.
type AnalyticsService struct {
	tracker   TrackerServiceI
	vacations *vacation.Store
	loc       *time.Location
	now       func() time.Time
}

func NewAnalyticsService(tracker TrackerServiceI, vacations *vacation.Store, loc *time.Location) *AnalyticsService {
	if tracker == nil || vacations == nil {
		log.Fatal("provided nil collaborators to analytics service")
	}
	return &AnalyticsService{
		tracker:   tracker,
		vacations: vacations,
		loc:       loc,
		now:       time.Now,
	}
}

func (as *AnalyticsService) Summary() SummaryReport {
	now := as.now()
	breakdown := BuildTodayBreakdown(as.tracker.Today(), now, as.loc)
	history := as.vacations.FilterLogs(as.tracker.History())
	return SummaryReport{
		Today:      breakdown,
		Historical: BuildHistoricalSummary(history, breakdown),
	}
}

func (as *AnalyticsService) Trends(windowDays int, scope TrendScope, topN int) TrendsReport {
	if !validWindow(windowDays) {
		windowDays = 30
	}
	if topN <= 0 {
		topN = DefaultTopN
	}
	switch scope {
	case ScopeAll, ScopeWeekdays, ScopeWeekends:
	default:
		scope = ScopeAll
	}

	now := as.now()
	history := as.vacations.FilterLogs(as.tracker.History())
	days := WindowScope(BuildTrendDays(history, now, as.loc), windowDays, scope)
	chosen := ChosenActivities(AggregateTopN(WindowTotals(days), topN))
	return TrendsReport{
		Days:       days,
		Activities: chosen,
		Series:     BuildSeries(days, chosen),
	}
}

func validWindow(n int) bool {
	for _, w := range TrendWindows {
		if n == w {
			return true
		}
	}
	return false
}

// BuildTodayBreakdown sums today's sessions per activity and appends a
// synthetic Untracked row for the uncovered part of the day so far.
func BuildTodayBreakdown(today entity.DayLog, now time.Time, loc *time.Location) TodayBreakdown {
	totals := make(map[string]float64)
	for _, s := range today.Sessions {
		totals[s.Activity] += s.Minutes()
	}
	sinceMidnight := timeutil.MinutesSinceMidnight(now, loc)

	rows := make([]entity.BreakdownRow, 0, len(totals)+1)
	totalTracked := 0.0
	for activity, minutes := range totals {
		totalTracked += minutes
		rows = append(rows, entity.BreakdownRow{
			Activity: activity,
			Minutes:  minutes,
			Pct:      pctOf(minutes, sinceMidnight),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Minutes != rows[j].Minutes {
			return rows[i].Minutes > rows[j].Minutes
		}
		return rows[i].Activity < rows[j].Activity
	})

	if untracked := sinceMidnight - totalTracked; untracked > 0 {
		rows = append(rows, entity.BreakdownRow{
			Activity: UntrackedActivity,
			Minutes:  untracked,
			Pct:      pctOf(untracked, sinceMidnight),
		})
	}
	return TodayBreakdown{Rows: rows, SinceMidnight: sinceMidnight, TotalTracked: totalTracked}
}

// BuildHistoricalSummary computes per-activity daily averages where the
// denominator counts only days on which the activity occurred at all, then
// compares today against those averages.
func BuildHistoricalSummary(history []entity.DayLog, breakdown TodayBreakdown) HistoricalSummary {
	type acc struct {
		totalMinutes float64
		daysWithAny  int
	}
	perActivity := make(map[string]*acc)
	dayCount := 0
	sumDailyTracked := 0.0
	for _, day := range history {
		daily := make(map[string]float64)
		for _, s := range day.Sessions {
			daily[s.Activity] += s.Minutes()
		}
		for activity, minutes := range daily {
			a := perActivity[activity]
			if a == nil {
				a = &acc{}
				perActivity[activity] = a
			}
			a.totalMinutes += minutes
			a.daysWithAny++
			sumDailyTracked += minutes
		}
		dayCount++
	}

	avgPerDay := make(map[string]float64, len(perActivity))
	for activity, a := range perActivity {
		avgPerDay[activity] = a.totalMinutes / float64(max(a.daysWithAny, 1))
	}

	todayByActivity := make(map[string]float64, len(breakdown.Rows))
	for _, row := range breakdown.Rows {
		todayByActivity[row.Activity] = row.Minutes
	}

	deltas := make([]entity.ActivityDelta, 0, len(avgPerDay))
	for activity, avg := range avgPerDay {
		if activity == UntrackedActivity {
			continue
		}
		todayMin := todayByActivity[activity]
		delta := todayMin - avg
		d := entity.ActivityDelta{
			Activity: activity,
			AvgMin:   avg,
			TodayMin: todayMin,
			Delta:    delta,
		}
		if avg != 0 {
			pct := delta / avg * 100
			d.DeltaPct = &pct
		}
		deltas = append(deltas, d)
	}
	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].TodayMin != deltas[j].TodayMin {
			return deltas[i].TodayMin > deltas[j].TodayMin
		}
		return deltas[i].Activity < deltas[j].Activity
	})

	avgTracked := 0.0
	if dayCount > 0 {
		avgTracked = sumDailyTracked / float64(dayCount)
	}
	return HistoricalSummary{
		AvgPerDay:        avgPerDay,
		Deltas:           deltas,
		DayCount:         dayCount,
		AvgTrackedPerDay: avgTracked,
	}
}

// BuildTrendDays turns day logs into per-day activity totals with the
// percentage denominator: a full nominal day for past days, minutes since
// midnight for today, and the remainder booked as Untracked.
func BuildTrendDays(history []entity.DayLog, now time.Time, loc *time.Location) []entity.TrendDay {
	todayKey := timeutil.DayKey(now, loc)
	days := make([]entity.TrendDay, 0, len(history))
	for _, day := range history {
		totals := make(map[string]float64)
		tracked := 0.0
		for _, s := range day.Sessions {
			m := s.Minutes()
			totals[s.Activity] += m
			tracked += m
		}
		denom := float64(minutesPerDay)
		if day.Date == todayKey {
			denom = timeutil.MinutesSinceMidnight(now, loc)
		}
		safeDenom := math.Max(1, math.Round(denom))
		if untracked := safeDenom - math.Min(tracked, safeDenom); untracked > 0 {
			totals[UntrackedActivity] += untracked
		}
		days = append(days, entity.TrendDay{
			Date:     day.Date,
			Weekend:  timeutil.IsWeekend(day.Date),
			Totals:   totals,
			TotalMin: safeDenom,
		})
	}
	return days
}

// WindowScope keeps the most recent lastN days, then applies the
// weekday/weekend scope. Window first, scope second: a weekday scope narrows
// the window's days rather than widening the lookback.
func WindowScope(days []entity.TrendDay, lastN int, scope TrendScope) []entity.TrendDay {
	if len(days) > lastN {
		days = days[len(days)-lastN:]
	}
	if scope == ScopeAll {
		return append([]entity.TrendDay(nil), days...)
	}
	out := make([]entity.TrendDay, 0, len(days))
	for _, d := range days {
		if (scope == ScopeWeekends) == d.Weekend {
			out = append(out, d)
		}
	}
	return out
}

// WindowTotals sums per-activity minutes across the windowed days,
// excluding the synthetic Untracked series.
func WindowTotals(days []entity.TrendDay) map[string]float64 {
	totals := make(map[string]float64)
	for _, d := range days {
		for activity, m := range d.Totals {
			if activity == UntrackedActivity {
				continue
			}
			totals[activity] += m
		}
	}
	return totals
}

// AggregateTopN keeps the n largest activities by total and folds the rest
// into Other. Ties rank alphabetically.
func AggregateTopN(totals map[string]float64, n int) map[string]float64 {
	type kv struct {
		activity string
		minutes  float64
	}
	ranked := make([]kv, 0, len(totals))
	for a, m := range totals {
		ranked = append(ranked, kv{a, m})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].minutes != ranked[j].minutes {
			return ranked[i].minutes > ranked[j].minutes
		}
		return ranked[i].activity < ranked[j].activity
	})

	out := make(map[string]float64, n+1)
	for i, item := range ranked {
		if i < n {
			out[item.activity] = item.minutes
		} else {
			out[OtherActivity] += item.minutes
		}
	}
	return out
}

// ChosenActivities orders the aggregated activities by total descending.
func ChosenActivities(agg map[string]float64) []string {
	names := make([]string, 0, len(agg))
	for a := range agg {
		names = append(names, a)
	}
	sort.Slice(names, func(i, j int) bool {
		if agg[names[i]] != agg[names[j]] {
			return agg[names[i]] > agg[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

// BuildSeries produces one trend line per chosen activity. Activities outside
// the chosen set contribute to the Other line when it was chosen.
func BuildSeries(days []entity.TrendDay, chosen []string) map[string][]entity.TrendPoint {
	keep := make(map[string]struct{}, len(chosen))
	for _, a := range chosen {
		keep[a] = struct{}{}
	}
	_, hasOther := keep[OtherActivity]

	series := make(map[string][]entity.TrendPoint, len(chosen))
	for _, a := range chosen {
		series[a] = make([]entity.TrendPoint, 0, len(days))
	}
	for _, d := range days {
		perDay := make(map[string]float64, len(d.Totals))
		for activity, m := range d.Totals {
			if activity == UntrackedActivity {
				continue
			}
			if _, ok := keep[activity]; ok {
				perDay[activity] += m
			} else if hasOther {
				perDay[OtherActivity] += m
			}
		}
		for _, a := range chosen {
			m := perDay[a]
			series[a] = append(series[a], entity.TrendPoint{
				Date:    d.Date,
				Min:     m,
				Pct:     pctOf(m, d.TotalMin),
				Weekend: d.Weekend,
			})
		}
	}
	return series
}

func pctOf(value, denom float64) float64 {
	if denom <= 0 {
		return 0
	}
	return value / denom * 100
}
