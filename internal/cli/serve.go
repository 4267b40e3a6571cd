package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limbo/frisfocus/internal/api"
	"github.com/limbo/frisfocus/internal/cache"
	"github.com/limbo/frisfocus/internal/repository"
	"github.com/limbo/frisfocus/internal/service"
	"github.com/limbo/frisfocus/pkg/cleanup"
	jwtservice "github.com/limbo/frisfocus/pkg/jwt_service"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	service.InitValidator()
	cfg := loadConfig()
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()
	defer cleanup.CleanUp(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	table, err := loadRules(cfg)
	if err != nil {
		return err
	}
	pool, err := repository.Connect(ctx, pgConfig(cfg))
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	usersRepo := repository.NewUsersRepoWithConn(pool)
	activityRepo := repository.NewActivityRepoWithConn(pool)
	friendsRepo := repository.NewFriendshipsRepoWithConn(pool)

	clock := service.SystemClock(cfg.Location())
	awardService := service.NewAwardService(table, activityRepo, usersRepo, clock, logger)
	leaderboardService := service.NewLeaderboardService(usersRepo, activityRepo, friendsRepo, clock, logger)
	if lbCache := connectCache(ctx, cfg.GetString("REDIS_ADDRESS"), cfg.GetString("REDIS_PASSWORD"),
		cfg.GetInt("REDIS_DB", 0), cfg.GetDuration("LEADERBOARD_CACHE_TTL", 30*time.Second), logger); lbCache != nil {
		awardService.WithCache(lbCache)
		leaderboardService.WithCache(lbCache)
	}

	serv := api.New(&api.ServicesList{
		UserService:        service.NewUserService(usersRepo),
		AwardService:       awardService,
		ActivityService:    service.NewActivityService(activityRepo, usersRepo),
		LeaderboardService: leaderboardService,
		JwtService:         jwtservice.New(cfg.GetString("JWT_SECRET")),
	}, api.Options{
		ServiceKey:         cfg.GetString("INTERNAL_API_KEY"),
		RateLimitPerMinute: cfg.GetInt("RATE_LIMIT_PER_MINUTE", 120),
		MetricsEnabled:     cfg.GetBool("METRICS_ENABLED", true),
		Location:           cfg.Location(),
		Logger:             logger,
	})
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		logger.Error("server error", zap.Error(err))
		return err
	}
	return nil
}

// connectCache returns nil when Redis is not configured or unreachable.
// Leaderboards are then always read from Postgres.
func connectCache(ctx context.Context, addr, password string, db int, ttl time.Duration, logger *zap.Logger) *cache.LeaderboardCache {
	if addr == "" {
		logger.Info("leaderboard cache disabled")
		return nil
	}
	rdb, err := cache.NewRedisClient(ctx, cache.RedisCfg{
		Address:  addr,
		Password: password,
		DB:       db,
	})
	if err != nil {
		logger.Warn("leaderboard cache unavailable", zap.Error(err))
		return nil
	}
	return cache.NewLeaderboardCache(rdb, ttl)
}
