package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	errorvalues "github.com/nmehta/activityclock/internal/error_values"
	"github.com/nmehta/activityclock/internal/localstate"
	"github.com/nmehta/activityclock/internal/repository"
	"github.com/nmehta/activityclock/internal/timeutil"
	"github.com/nmehta/activityclock/pkg/entity"
)

const cursorStateKey = "last_stop"

// TrackerService owns the logging cursor: the instant from which the next
// un-logged interval begins. Append splits the interval at local midnights,
// writes each segment to its day in chronological order, then advances the
// cursor. Undo reverses the most recent append exactly once.
//
// Append and Undo are serialized by a mutex so racing requests cannot
// compute their start from a stale cursor.
type TrackerService struct {
	logs      repository.DayLogsRepositoryI
	names     repository.ActivityNamesRepositoryI
	state     *localstate.Store
	loc       *time.Location
	startDate string
	now       func() time.Time

	mu      sync.Mutex
	cursor  time.Time
	undo    *entity.UndoRecord
	today   entity.DayLog
	history []entity.DayLog
}

func NewTrackerService(
	logsRepo repository.DayLogsRepositoryI,
	namesRepo repository.ActivityNamesRepositoryI,
	state *localstate.Store,
	loc *time.Location,
	startDate string,
) *TrackerService {
	if logsRepo == nil || namesRepo == nil {
		log.Fatal("provided nil repos to tracker service")
	}
	return &TrackerService{
		logs:      logsRepo,
		names:     namesRepo,
		state:     state,
		loc:       loc,
		startDate: startDate,
		now:       time.Now,
	}
}

// NewTrackerServiceWithClock is NewTrackerService with an injected clock.
func NewTrackerServiceWithClock(
	logsRepo repository.DayLogsRepositoryI,
	namesRepo repository.ActivityNamesRepositoryI,
	state *localstate.Store,
	loc *time.Location,
	startDate string,
	now func() time.Time,
) *TrackerService {
	ts := NewTrackerService(logsRepo, namesRepo, state, loc, startDate)
	ts.now = now
	return ts
}

// Load pulls today's log plus the full history window and initializes the
// cursor: anchored to the latest end among today's sessions when any exist,
// otherwise to the persisted value clamped to not precede local midnight.
func (ts *TrackerService) Load(ctx context.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	now := ts.now()
	todayKey := timeutil.DayKey(now, ts.loc)

	today, err := ts.logs.GetDay(ctx, todayKey)
	if err != nil {
		return fmt.Errorf("%w: loading today: %s", errorvalues.ErrPersistence, err.Error())
	}
	ts.today = *today

	stored, err := ts.logs.ListRange(ctx, ts.startDate, todayKey)
	if err != nil {
		return fmt.Errorf("%w: loading history: %s", errorvalues.ErrPersistence, err.Error())
	}
	// dense, ordered sequence: days without a record appear with empty sessions
	history := make([]entity.DayLog, 0, len(stored))
	for key := ts.startDate; key <= todayKey; {
		if day, ok := stored[key]; ok {
			history = append(history, *day)
		} else {
			history = append(history, entity.DayLog{Date: key, Sessions: []entity.Session{}})
		}
		next := timeutil.NextDayKey(key)
		if next == key {
			// an unparseable start date cannot advance, stop instead of spinning
			break
		}
		key = next
	}
	ts.history = history
	ts.upsertHistoryLocked(ts.today)

	ts.cursor = ts.initialCursorLocked(now)
	ts.persistCursorLocked()
	return nil
}

func (ts *TrackerService) initialCursorLocked(now time.Time) time.Time {
	if len(ts.today.Sessions) > 0 {
		latest := ts.today.Sessions[0].End
		for _, s := range ts.today.Sessions[1:] {
			if s.End.After(latest) {
				latest = s.End
			}
		}
		return latest
	}
	midnight := timeutil.StartOfDay(now, ts.loc)
	if stored, ok := ts.state.GetString(cursorStateKey); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, stored); err == nil && parsed.After(midnight) {
			return parsed
		}
	}
	return midnight
}

// Append logs the given activity from the cursor. A positive explicitMinutes
// caps the logged interval at that many minutes from the session start;
// zero or negative means "log through now". Logging an interval that
// collapses to nothing is a silent no-op.
func (ts *TrackerService) Append(ctx context.Context, activity string, explicitMinutes float64) error {
	clean := strings.TrimSpace(activity)
	if clean == "" {
		return errorvalues.ErrEmptyActivity
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	now := ts.now()
	prevStart := ts.cursor
	todayKey := timeutil.DayKey(now, ts.loc)

	sessionStart := ts.cursor
	if midnight := timeutil.StartOfDay(now, ts.loc); sessionStart.Before(midnight) {
		sessionStart = midnight
	}
	if sessionStart.After(now) {
		sessionStart = now
	}

	sessionEnd := now
	if explicitMinutes > 0 && !math.IsInf(explicitMinutes, 1) {
		desired := sessionStart.Add(time.Duration(explicitMinutes * float64(time.Minute)))
		if desired.Before(now) {
			sessionEnd = desired
		}
	}
	if !sessionEnd.After(sessionStart) {
		return nil
	}

	segments, err := timeutil.SplitByMidnight(sessionStart, sessionEnd, ts.loc)
	if err != nil {
		return err
	}

	// segments are written strictly in chronological order, one at a time; a
	// failure aborts the rest and leaves any prior writes committed
	written := make([]entity.Session, 0, len(segments))
	for _, seg := range segments {
		session := entity.Session{Start: seg.Start, End: seg.End, Activity: clean}
		date := timeutil.DayKey(seg.Start, ts.loc)
		updated, err := ts.logs.AppendSession(ctx, date, session)
		if err != nil {
			return fmt.Errorf("%w: saving segment for %s: %s", errorvalues.ErrPersistence, date, err.Error())
		}
		ts.upsertHistoryLocked(*updated)
		if date == todayKey {
			ts.today = *updated
		}
		written = append(written, session)
	}

	ts.cursor = sessionEnd
	ts.persistCursorLocked()
	ts.undo = &entity.UndoRecord{PrevStart: prevStart, Segments: written}

	if err := ts.names.Ensure(ctx, clean); err != nil {
		slog.Warn("persisting activity name failed", slog.String("name", clean), slog.String("error", err.Error()))
	}
	return nil
}

// Undo deletes the segments of the last append by exact match, reloads today
// from storage and rewinds the cursor. Delete failures are logged but never
// block the cursor restoration.
func (ts *TrackerService) Undo(ctx context.Context) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.undo == nil || len(ts.undo.Segments) == 0 {
		return errorvalues.ErrNothingToUndo
	}
	record := ts.undo

	for _, seg := range record.Segments {
		date := timeutil.DayKey(seg.Start, ts.loc)
		if _, err := ts.logs.DeleteSession(ctx, date, seg); err != nil {
			slog.Warn("undo delete failed", slog.String("date", date), slog.String("error", err.Error()))
		}
	}

	todayKey := timeutil.DayKey(ts.now(), ts.loc)
	if reloaded, err := ts.logs.GetDay(ctx, todayKey); err != nil {
		slog.Warn("reloading today after undo failed", slog.String("error", err.Error()))
	} else {
		ts.today = *reloaded
		ts.upsertHistoryLocked(*reloaded)
	}
	ts.dropSegmentsFromHistoryLocked(record.Segments, todayKey)

	ts.cursor = record.PrevStart
	ts.persistCursorLocked()
	ts.undo = nil
	return nil
}

// Cursor returns the instant the next logged interval would start from.
func (ts *TrackerService) Cursor() time.Time {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.cursor
}

// CanUndo reports whether an undo record is available.
func (ts *TrackerService) CanUndo() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.undo != nil && len(ts.undo.Segments) > 0
}

// Today returns a copy of the cached current-day log.
func (ts *TrackerService) Today() entity.DayLog {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return copyDayLog(ts.today)
}

// History returns a copy of the cached day logs ordered by date, covering
// the configured start date through today.
func (ts *TrackerService) History() []entity.DayLog {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	out := make([]entity.DayLog, len(ts.history))
	for i, day := range ts.history {
		out[i] = copyDayLog(day)
	}
	return out
}

func (ts *TrackerService) persistCursorLocked() {
	if err := ts.state.SetString(cursorStateKey, ts.cursor.Format(time.RFC3339Nano)); err != nil {
		slog.Warn("persisting cursor failed", slog.String("error", err.Error()))
	}
}

func (ts *TrackerService) upsertHistoryLocked(day entity.DayLog) {
	for i := range ts.history {
		if ts.history[i].Date == day.Date {
			ts.history[i] = day
			return
		}
	}
	ts.history = append(ts.history, day)
	sort.Slice(ts.history, func(i, j int) bool {
		return ts.history[i].Date < ts.history[j].Date
	})
}

// dropSegmentsFromHistoryLocked strips undone segments from cached days other
// than today, which was just reloaded from storage.
func (ts *TrackerService) dropSegmentsFromHistoryLocked(segments []entity.Session, todayKey string) {
	for i := range ts.history {
		if ts.history[i].Date == todayKey {
			continue
		}
		kept := make([]entity.Session, 0, len(ts.history[i].Sessions))
		for _, s := range ts.history[i].Sessions {
			if matchesAnySegment(s, ts.history[i].Date, segments, ts.loc) {
				continue
			}
			kept = append(kept, s)
		}
		ts.history[i].Sessions = kept
	}
}

func matchesAnySegment(s entity.Session, date string, segments []entity.Session, loc *time.Location) bool {
	for _, seg := range segments {
		if timeutil.DayKey(seg.Start, loc) != date {
			continue
		}
		if s.Activity == seg.Activity && s.Start.Equal(seg.Start) && s.End.Equal(seg.End) {
			return true
		}
	}
	return false
}

func copyDayLog(day entity.DayLog) entity.DayLog {
	return entity.DayLog{
		Date:     day.Date,
		Sessions: append([]entity.Session(nil), day.Sessions...),
	}
}
