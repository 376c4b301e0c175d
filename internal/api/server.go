package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nmehta/activityclock/internal/service"
	"github.com/nmehta/activityclock/internal/vacation"
)

type Server struct {
	mx               *chi.Mux
	authService      service.AuthServiceI
	jwtService       JWTServiceI
	trackerService   service.TrackerServiceI
	logsService      service.LogsServiceI
	analyticsService service.AnalyticsServiceI
	habitsService    service.HabitsServiceI
	vacations        *vacation.Store
}

type ServicesList struct {
	AuthService      service.AuthServiceI
	JwtService       JWTServiceI
	TrackerService   service.TrackerServiceI
	LogsService      service.LogsServiceI
	AnalyticsService service.AnalyticsServiceI
	HabitsService    service.HabitsServiceI
	Vacations        *vacation.Store
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:               chi.NewMux(),
		authService:      servicesOptions.AuthService,
		jwtService:       servicesOptions.JwtService,
		trackerService:   servicesOptions.TrackerService,
		logsService:      servicesOptions.LogsService,
		analyticsService: servicesOptions.AnalyticsService,
		habitsService:    servicesOptions.HabitsService,
		vacations:        servicesOptions.Vacations,
	}
	if s.vacations != nil {
		s.vacations.Subscribe(func(days []string) {
			slog.Info("vacation days updated", slog.Int("count", len(days)))
		})
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Get("/auth/check", s.AuthCheck)
			r.Route("/activity", func(r chi.Router) {
				r.Get("/logs", s.GetDayLog)
				r.Post("/logs", s.AppendSession)
				r.Delete("/logs", s.DeleteSession)
				r.Get("/logs/range", s.GetLogsRange)
				r.Get("/names", s.GetActivityNames)
				r.Post("/names", s.EnsureActivityName)
				r.Get("/today", s.GetToday)
				r.Get("/summary", s.GetSummary)
				r.Get("/trends", s.GetTrends)
			})
			r.Route("/tracker", func(r chi.Router) {
				r.Post("/log", s.TrackerLog)
				r.Post("/undo", s.TrackerUndo)
				r.Get("/status", s.TrackerStatus)
			})
			r.Route("/habits", func(r chi.Router) {
				r.Get("/", s.GetHabitsRange)
				r.Get("/streaks", s.GetStreak)
				r.Get("/{date}", s.GetHabitDay)
				r.Put("/{date}", s.PutHabitDay)
			})
			r.Get("/vacations", s.GetVacations)
			r.Put("/vacations", s.PutVacations)
		})
	})
}

func (s *Server) Run(address string) error {
	slog.Info("server listening", slog.String("address", address))
	return http.ListenAndServe(address, s.mx)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
