// @title Activity-clock API
// @description API for the personal time and habit tracker "activityclock"
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/nmehta/activityclock/internal/api"
	"github.com/nmehta/activityclock/internal/localstate"
	"github.com/nmehta/activityclock/internal/repository"
	"github.com/nmehta/activityclock/internal/service"
	"github.com/nmehta/activityclock/internal/timeutil"
	"github.com/nmehta/activityclock/internal/vacation"
	"github.com/nmehta/activityclock/pkg/cleanup"
	"github.com/nmehta/activityclock/pkg/config"
	jwtservice "github.com/nmehta/activityclock/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}

	loc, err := time.LoadLocation(cfg.GetStringOr("APP_TIMEZONE", "America/Edmonton"))
	if err != nil {
		log.Fatal("loading timezone error: ", err)
	}
	state, err := localstate.New(cfg.GetStringOr("APP_STATE_FILE", "./activityclock_state.json"))
	if err != nil {
		log.Fatal("opening local state error: ", err)
	}
	startDate := cfg.GetStringOr("APP_START_DATE", "2024-01-01")
	if !timeutil.IsDayKey(startDate) {
		log.Fatal("invalid APP_START_DATE, expected YYYY-MM-DD: " + startDate)
	}

	sessionDays, err := strconv.Atoi(cfg.GetStringOr("APP_SESSION_DAYS", "30"))
	if err != nil || sessionDays < 1 {
		sessionDays = 30
	}

	vacations := vacation.NewStore(state)
	logsRepo := repository.NewDayLogsRepo(&dbCfg)
	namesRepo := repository.NewActivityNamesRepo(&dbCfg)
	habitsRepo := repository.NewHabitDaysRepo(&dbCfg)

	trackerService := service.NewTrackerService(logsRepo, namesRepo, state, loc, startDate)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	err = trackerService.Load(ctx)
	cancel()
	if err != nil {
		log.Fatal("loading tracker state error: ", err)
	}

	serv := api.New(&api.ServicesList{
		AuthService:      service.NewAuthService(cfg.GetString("APP_PASSWORD_HASH")),
		JwtService:       jwtservice.New(cfg.GetString("APP_SESSION_SECRET"), time.Duration(sessionDays)*24*time.Hour),
		TrackerService:   trackerService,
		LogsService:      service.NewLogsService(logsRepo, namesRepo),
		AnalyticsService: service.NewAnalyticsService(trackerService, vacations, loc),
		HabitsService:    service.NewHabitsService(habitsRepo, vacations, loc, startDate),
		Vacations:        vacations,
	})
	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
