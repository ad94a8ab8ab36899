package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/healthydev/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mx              *chi.Mux
	mu              sync.Mutex
	httpServer      *http.Server
	userService     service.UserServiceI
	scheduleService service.ScheduleServiceI
	streakService   service.StreakServiceI
	activityService service.ActivityServiceI
	jwtService      JWTServiceI
	reconciler      ReconcilerI
	changes         ChangeListener
}

type ServicesList struct {
	UserService     service.UserServiceI
	ScheduleService service.ScheduleServiceI
	StreakService   service.StreakServiceI
	ActivityService service.ActivityServiceI
	JwtService      JWTServiceI
	Reconciler      ReconcilerI
	Changes         ChangeListener
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		scheduleService: servicesOptions.ScheduleService,
		streakService:   servicesOptions.StreakService,
		activityService: servicesOptions.ActivityService,
		jwtService:      servicesOptions.JwtService,
		reconciler:      servicesOptions.Reconciler,
		changes:         servicesOptions.Changes,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer, s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Get("/health", s.Health)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)

			r.Get("/schedule/today", s.GetTodaySchedule)
			r.Post("/schedule/blocks", s.CreateBlock)
			r.Patch("/schedule/blocks/{id}/status", s.UpdateBlockStatus)
			r.Get("/schedule/progress", s.GetProgress)
			r.Post("/progress/reset", s.ResetProgress)

			r.Get("/streaks", s.GetStreaks)
			r.Get("/streaks/{type}", s.GetStreak)

			r.Get("/activities", s.GetActivities)
			r.Post("/activities", s.AppendActivity)
			r.Get("/activities/date/{date}", s.GetActivitiesForDate)
			r.Get("/activities/heatmap", s.GetHeatmap)
			r.Get("/activities/weekly", s.GetWeeklyStats)

			r.Get("/events", s.Events)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until Shutdown is called. No write timeout is set so that
// event streams stay open.
func (s *Server) Run(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.mu.Lock()
	s.httpServer = srv
	s.mu.Unlock()
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return srv.Shutdown(ctx)
}
