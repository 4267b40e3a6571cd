package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/limbo/frisfocus/internal/service"
	"github.com/limbo/frisfocus/pkg/httputil"
)

type Server struct {
	mx                 *chi.Mux
	userService        service.UserServiceI
	awardService       service.AwardServiceI
	activityService    service.ActivityServiceI
	leaderboardService service.LeaderboardServiceI
	jwtService         JWTServiceI
	serviceKey         string
	metricsEnabled     bool
	loc                *time.Location
	limiters           *limiterStore
	logger             *zap.Logger
}

type ServicesList struct {
	UserService        service.UserServiceI
	AwardService       service.AwardServiceI
	ActivityService    service.ActivityServiceI
	LeaderboardService service.LeaderboardServiceI
	JwtService         JWTServiceI
}

type Options struct {
	// Shared secret expected in X-Service-Key on internal routes. Empty rejects every internal call.
	ServiceKey         string
	RateLimitPerMinute int
	MetricsEnabled     bool
	// Zone of "today" when a tracker request omits as_of.
	Location *time.Location
	Logger   *zap.Logger
}

func New(services *ServicesList, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	s := &Server{
		mx:                 chi.NewMux(),
		userService:        services.UserService,
		awardService:       services.AwardService,
		activityService:    services.ActivityService,
		leaderboardService: services.LeaderboardService,
		jwtService:         services.JwtService,
		serviceKey:         opts.ServiceKey,
		metricsEnabled:     opts.MetricsEnabled,
		loc:                opts.Location,
		limiters:           newLimiterStore(opts.RateLimitPerMinute),
		logger:             opts.Logger,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(middleware.RealIP)
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.MetricsMiddleware)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if s.metricsEnabled {
		s.mx.Handle("/metrics", promhttp.Handler())
	}

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RateLimitMiddleware)
		r.Get("/fp/rules", s.GetRules)
		r.Route("/tracker", func(r chi.Router) {
			r.Post("/due-dates/derive", s.DeriveDueDates)
			r.Post("/due-dates/next", s.ScheduleNextDueDate)
			r.Post("/boosters/derive", s.DeriveBoosters)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Get("/fp/total", s.GetTotal)
			r.Get("/fp/activity", s.GetActivity)
			r.Get("/fp/leaderboard", s.GetLeaderboard)
		})
	})

	s.mx.Route("/internal/v1", func(r chi.Router) {
		r.Use(s.ServiceKeyMiddleware)
		r.Post("/fp/award", s.AwardFp)
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server listening", zap.String("address", addr))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	s.logger.Info("api server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
