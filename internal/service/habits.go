package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	errorvalues "github.com/nmehta/activityclock/internal/error_values"
	"github.com/nmehta/activityclock/internal/repository"
	"github.com/nmehta/activityclock/internal/timeutil"
	"github.com/nmehta/activityclock/internal/vacation"
	"github.com/nmehta/activityclock/pkg/entity"
)

const (
	// WasteLimitMinutes is the daily wasted-time budget the derived habit
	// flag and wasteDelta are computed against.
	WasteLimitMinutes = 50
	// LessWasteHabit is the habit flag derived from wastedMin. It is never
	// user-settable.
	LessWasteHabit = "Less than 50m waste"

	wastedMinKey  = "wastedMin"
	wasteDeltaKey = "wasteDelta"
	studyKey      = "study"

	// streak walk-back guard, roughly ten years
	maxStreakLookback = 3660
)

// studyLegacyKeys maps renamed study categories to the keys old records used.
var studyLegacyKeys = map[string]string{
	"BK": "leetcode",
	"SD": "systemDesign",
	"AP": "resumeApply",
}

// eventTimestampKeys maps counters to the timestamp fields stamped whenever
// the counter increases.
var eventTimestampKeys = map[string]string{
	"newsAccessCount":  "lastNewsTs",
	"musicListenCount": "lastMusicTs",
	"jlCount":          "lastJlTs",
}

// HabitsService owns the daily habit/metric records: the save pipeline that
// maintains the derived-from-wastedMin fields, and streak computation over
// the stored history with vacation days skipped.
type HabitsService struct {
	repo      repository.HabitDaysRepositoryI
	vacations *vacation.Store
	loc       *time.Location
	startDate string
	now       func() time.Time
}

func NewHabitsService(repo repository.HabitDaysRepositoryI, vacations *vacation.Store, loc *time.Location, startDate string) *HabitsService {
	if repo == nil || vacations == nil {
		log.Fatal("provided nil collaborators to habits service")
	}
	return &HabitsService{
		repo:      repo,
		vacations: vacations,
		loc:       loc,
		startDate: startDate,
		now:       time.Now,
	}
}

// NewHabitsServiceWithClock is NewHabitsService with an injected clock.
func NewHabitsServiceWithClock(repo repository.HabitDaysRepositoryI, vacations *vacation.Store, loc *time.Location, startDate string, now func() time.Time) *HabitsService {
	hs := NewHabitsService(repo, vacations, loc, startDate)
	hs.now = now
	return hs
}

func (hs *HabitsService) GetDay(ctx context.Context, date string) (*entity.HabitDay, error) {
	if !timeutil.IsDayKey(date) {
		return nil, errorvalues.ErrInvalidDate
	}
	day, err := hs.repo.Get(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	normalizeHabitData(day.Data)
	return day, nil
}

// SaveDay replaces the day's data after recomputing the derived fields:
// when wastedMin is present, the less-waste flag and wasteDelta follow from
// it; when absent, both are stripped. Counters in eventTimestampKeys stamp
// their "last happened" timestamp whenever they grow.
func (hs *HabitsService) SaveDay(ctx context.Context, date string, data map[string]any) (*entity.HabitDay, error) {
	if !timeutil.IsDayKey(date) {
		return nil, errorvalues.ErrInvalidDate
	}
	if data == nil {
		data = map[string]any{}
	}

	if wm, ok := finiteNumber(data[wastedMinKey]); ok {
		data[LessWasteHabit] = wm <= WasteLimitMinutes
		data[wasteDeltaKey] = wm - WasteLimitMinutes
	} else {
		delete(data, LessWasteHabit)
		delete(data, wasteDeltaKey)
	}

	prev, err := hs.repo.Get(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	for counter, tsKey := range eventTimestampKeys {
		next, okNext := finiteNumber(data[counter])
		if !okNext {
			continue
		}
		before, _ := finiteNumber(prev.Data[counter])
		if next > before {
			data[tsKey] = hs.now().UTC().Format(time.RFC3339)
		}
	}

	saved, err := hs.repo.Put(ctx, date, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return saved, nil
}

func (hs *HabitsService) Range(ctx context.Context, from, to string) (map[string]map[string]any, error) {
	if !timeutil.IsDayKey(from) || !timeutil.IsDayKey(to) || from > to {
		return nil, errorvalues.ErrInvalidDate
	}
	days, err := hs.repo.ListRange(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return days, nil
}

// Streak counts consecutive days (walking backward from today) on which the
// habit was true. Vacation days are skipped without breaking the run.
func (hs *HabitsService) Streak(ctx context.Context, habit string) (int, error) {
	todayKey := timeutil.DayKey(hs.now(), hs.loc)
	history, err := hs.repo.ListRange(ctx, hs.startDate, todayKey)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errorvalues.ErrPersistence, err.Error())
	}
	return StreakFrom(habit, todayKey, history, hs.vacations.Contains), nil
}

// StreakFrom is the pure streak walk: from startKey backwards, vacation days
// neither extend nor break the run, a missing or falsy day ends it. The walk
// is bounded so corrupt history can't loop forever.
func StreakFrom(habit, startKey string, history map[string]map[string]any, isVacation func(string) bool) int {
	streak := 0
	key := startKey
	for i := 0; i < maxStreakLookback; i++ {
		if isVacation(key) {
			key = timeutil.PrevDayKey(key)
			continue
		}
		day := history[key]
		if day == nil || !truthy(day[habit]) {
			break
		}
		streak++
		key = timeutil.PrevDayKey(key)
	}
	return streak
}

// StudyValue reads a study-category minute count with fallback to the key
// old records stored it under.
func StudyValue(category string, data map[string]any) float64 {
	study, _ := data[studyKey].(map[string]any)
	if v, ok := finiteNumber(study[category]); ok {
		return v
	}
	if legacy := studyLegacyKeys[category]; legacy != "" {
		if v, ok := finiteNumber(study[legacy]); ok {
			return v
		}
	}
	return 0
}

// normalizeHabitData repairs records written by older clients: weight stored
// as a string becomes a number, and legacy study keys surface under their
// current names.
func normalizeHabitData(data map[string]any) {
	if raw, ok := data["weight"].(string); ok {
		var parsed float64
		if _, err := fmt.Sscanf(raw, "%g", &parsed); err == nil {
			data["weight"] = parsed
		}
	}
	study, ok := data[studyKey].(map[string]any)
	if !ok {
		return
	}
	for current, legacy := range studyLegacyKeys {
		if _, has := finiteNumber(study[current]); has {
			continue
		}
		if v, okLegacy := finiteNumber(study[legacy]); okLegacy {
			study[current] = v
		}
	}
}

func finiteNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t != ""
	case nil:
		return false
	}
	if n, ok := finiteNumber(v); ok {
		return n != 0
	}
	return true
}
