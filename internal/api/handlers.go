package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/nmehta/activityclock/internal/error_values"
	"github.com/nmehta/activityclock/internal/service"
	"github.com/nmehta/activityclock/pkg/entity"
	"github.com/nmehta/activityclock/pkg/httputil"
)

type LoginRequest struct {
	Password string `json:"password"`
}

type SessionMutationRequest struct {
	Date     string    `json:"date"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Activity string    `json:"activity"`
}

type EnsureNameRequest struct {
	Name string `json:"name"`
}

type TrackerLogRequest struct {
	Activity string  `json:"activity"`
	Minutes  float64 `json:"minutes,omitempty"`
}

type TrackerStatusResponse struct {
	Cursor     time.Time `json:"cursor"`
	ElapsedMin float64   `json:"elapsed_min"`
	CanUndo    bool      `json:"can_undo"`
}

type PutVacationsRequest struct {
	Days []string `json:"days"`
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.authService.Login(req.Password); err != nil {
		logger.Error("login error: wrong password")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "wrong password")
		return
	}
	token, err := s.jwtService.GenerateToken()
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) AuthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"ok": true})
}

func (s *Server) GetDayLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.logsService.GetDay(ctx, r.URL.Query().Get("date"))
	if err != nil {
		writeLogsError(w, logger, "get day log", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
}

func (s *Server) AppendSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SessionMutationRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("append session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.logsService.Append(ctx, req.Date, entity.Session{
		Start:    req.Start,
		End:      req.End,
		Activity: req.Activity,
	})
	if err != nil {
		writeLogsError(w, logger, "append session", err)
		return
	}
	if err := s.logsService.EnsureName(ctx, req.Activity); err != nil {
		logger.Warn("persisting activity name failed", slog.String("error", err.Error()))
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, day)
	logger.Info("session appended", slog.String("date", req.Date))
}

func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SessionMutationRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("delete session error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.logsService.Delete(ctx, req.Date, entity.Session{
		Start:    req.Start,
		End:      req.End,
		Activity: req.Activity,
	})
	if err != nil {
		writeLogsError(w, logger, "delete session", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
	logger.Info("session deleted", slog.String("date", req.Date))
}

func (s *Server) GetLogsRange(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	logs, err := s.logsService.Range(ctx, r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeLogsError(w, logger, "get logs range", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, logs)
}

func (s *Server) GetActivityNames(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	names, err := s.logsService.ListNames(ctx)
	if err != nil {
		writeLogsError(w, logger, "get activity names", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"names": names})
}

func (s *Server) EnsureActivityName(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req EnsureNameRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("ensure name error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := s.logsService.EnsureName(ctx, req.Name); err != nil {
		writeLogsError(w, logger, "ensure name", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, nil)
	logger.Info("activity name ensured")
}

func (s *Server) TrackerLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req TrackerLogRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("tracker log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	err = s.trackerService.Append(ctx, req.Activity, req.Minutes)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyActivity):
			logger.Error("tracker log error: empty activity")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "activity name is empty")
		case errors.Is(err, errorvalues.ErrPersistence):
			logger.Error("tracker log error: persistence", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error saving session")
		default:
			logger.Error("tracker log error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging")
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, s.trackerStatus())
	logger.Info("interval logged", slog.String("activity", req.Activity))
}

func (s *Server) TrackerUndo(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	err := s.trackerService.Undo(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrNothingToUndo) {
			logger.Error("tracker undo error: nothing to undo")
			httputil.WriteErrorResponse(w, http.StatusConflict, "nothing to undo")
			return
		}
		logger.Error("tracker undo error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while undoing")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.trackerStatus())
	logger.Info("last logged chunk undone")
}

func (s *Server) TrackerStatus(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.trackerStatus())
}

func (s *Server) trackerStatus() TrackerStatusResponse {
	cursor := s.trackerService.Cursor()
	return TrackerStatusResponse{
		Cursor:     cursor,
		ElapsedMin: time.Since(cursor).Minutes(),
		CanUndo:    s.trackerService.CanUndo(),
	}
}

func (s *Server) GetToday(w http.ResponseWriter, r *http.Request) {
	opts := service.DayViewOptions{
		MergeAdjacent:  queryBool(r, "merge", true),
		ShowGaps:       queryBool(r, "gaps", true),
		ActivityFilter: r.URL.Query().Get("activity"),
	}
	today := s.trackerService.Today()
	view := service.BuildDayView(today.Sessions, opts)
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"date": today.Date,
		"view": view,
	})
}

func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, s.analyticsService.Summary())
}

func (s *Server) GetTrends(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	days, _ := strconv.Atoi(q.Get("days"))
	top, _ := strconv.Atoi(q.Get("top"))
	report := s.analyticsService.Trends(days, service.TrendScope(q.Get("scope")), top)
	httputil.WriteJSONResponse(w, http.StatusOK, report)
}

func (s *Server) GetHabitDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.habitsService.GetDay(ctx, r.PathValue("date"))
	if err != nil {
		writeHabitsError(w, logger, "get habit day", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
}

func (s *Server) PutHabitDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var data map[string]any
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&data)
	if err != nil {
		logger.Error("put habit day error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.habitsService.SaveDay(ctx, r.PathValue("date"), data)
	if err != nil {
		writeHabitsError(w, logger, "put habit day", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
	logger.Info("habit day saved", slog.String("date", day.Date))
}

func (s *Server) GetHabitsRange(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	days, err := s.habitsService.Range(ctx, r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeHabitsError(w, logger, "get habits range", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, days)
}

func (s *Server) GetStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	name := r.URL.Query().Get("name")
	if name == "" {
		logger.Error("get streak error: missing habit name")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "habit name is required")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	streak, err := s.habitsService.Streak(ctx, name)
	if err != nil {
		writeHabitsError(w, logger, "get streak", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"habit":  name,
		"streak": streak,
	})
}

func (s *Server) GetVacations(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"days": s.vacations.Days(),
	})
}

func (s *Server) PutVacations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req PutVacationsRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("put vacations error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	days := s.vacations.Set(req.Days)
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"days": days})
	logger.Info("vacation days replaced", slog.Int("count", len(days)))
}

func writeLogsError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidDate):
		logger.Error(op + " error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	case errors.Is(err, errorvalues.ErrEmptyActivity):
		logger.Error(op + " error: empty activity")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "activity name is empty")
	case errors.Is(err, errorvalues.ErrInvalidInterval):
		logger.Error(op + " error: invalid interval")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "interval end must be after start")
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

func writeHabitsError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrInvalidDate):
		logger.Error(op + " error: invalid date")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
	}
}

func queryBool(r *http.Request, key string, def bool) bool {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return parsed
}
