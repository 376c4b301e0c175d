// Package vacation holds the set of calendar days excluded from streaks and
// historical aggregation. Changes are persisted to local state and broadcast
// to in-process subscribers so dependent views recompute immediately.
package vacation

import (
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/nmehta/activityclock/internal/localstate"
	"github.com/nmehta/activityclock/internal/timeutil"
	"github.com/nmehta/activityclock/pkg/entity"
)

const stateKey = "vacation_days"

type Listener func(days []string)

type Store struct {
	mu        sync.Mutex
	state     *localstate.Store
	days      []string
	set       map[string]struct{}
	listeners map[int]Listener
	nextID    int
}

func NewStore(state *localstate.Store) *Store {
	s := &Store{
		state:     state,
		listeners: make(map[int]Listener),
	}
	s.apply(state.GetStrings(stateKey), false)
	return s
}

// Days returns the sorted vacation days.
func (s *Store) Days() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.days...)
}

// Set replaces the vacation set. Inputs are trimmed, validated against the
// YYYY-MM-DD shape, deduplicated and sorted before being stored.
func (s *Store) Set(days []string) []string {
	next := s.apply(days, true)
	s.mu.Lock()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()
	for _, l := range listeners {
		l(append([]string(nil), next...))
	}
	return next
}

// Subscribe registers a listener for vacation-set changes and returns an
// unsubscribe func.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// Contains reports whether the day key is a vacation day.
func (s *Store) Contains(dayKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.set[dayKey]
	return ok
}

// FilterLogs drops vacation days from a day-log sequence.
func (s *Store) FilterLogs(logs []entity.DayLog) []entity.DayLog {
	out := make([]entity.DayLog, 0, len(logs))
	for _, l := range logs {
		if !s.Contains(l.Date) {
			out = append(out, l)
		}
	}
	return out
}

// FilterMap drops vacation days from a habit history map.
func (s *Store) FilterMap(history map[string]map[string]any) map[string]map[string]any {
	out := make(map[string]map[string]any, len(history))
	for k, v := range history {
		if !s.Contains(k) {
			out[k] = v
		}
	}
	return out
}

func (s *Store) apply(days []string, persist bool) []string {
	seen := make(map[string]struct{}, len(days))
	next := make([]string, 0, len(days))
	for _, d := range days {
		d = strings.TrimSpace(d)
		if !timeutil.IsDayKey(d) {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		next = append(next, d)
	}
	sort.Strings(next)
	s.mu.Lock()
	s.days = next
	s.set = seen
	s.mu.Unlock()
	if persist {
		// best effort, the in-memory set is already updated
		if err := s.state.SetStrings(stateKey, next); err != nil {
			slog.Warn("persisting vacation days failed", slog.String("error", err.Error()))
		}
	}
	return next
}
