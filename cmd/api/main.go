// @title HealthyDeveloper API
// @description Daily schedule, streaks and activity log of the "HealthyDeveloper" tracker
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/limbo/healthydev/internal/api"
	"github.com/limbo/healthydev/internal/events"
	"github.com/limbo/healthydev/internal/publisher"
	"github.com/limbo/healthydev/internal/reconcile"
	"github.com/limbo/healthydev/internal/repository"
	"github.com/limbo/healthydev/internal/service"
	"github.com/limbo/healthydev/pkg/cleanup"
	"github.com/limbo/healthydev/pkg/config"
	jwtservice "github.com/limbo/healthydev/pkg/jwt_service"
	"github.com/pressly/goose"
)

func init() {
	service.InitValidator()
}

type stores struct {
	users      repository.UsersRepositoryI
	schedule   repository.ScheduleRepositoryI
	streaks    repository.StreaksRepositoryI
	activities repository.ActivitiesRepositoryI
	feed       repository.ChangeFeedI
}

func main() {
	cfg := config.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st := openStores(ctx, cfg, logger)

	var activityPublisher service.ActivityPublisher = publisher.Noop{}
	if len(cfg.KafkaBrokers) > 0 {
		kp := publisher.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaActivityTopic)
		cleanup.Register(&cleanup.Job{Name: "closing kafka writer", F: kp.Close})
		activityPublisher = kp
	}

	hub := events.NewHub(16)
	clock := service.SystemClock{Location: cfg.Location()}
	streakService := service.NewStreakService(st.streaks, clock, hub)
	activityService := service.NewActivityService(st.activities, clock, hub, logger,
		service.WithPublisher(activityPublisher),
		service.WithWindowDays(cfg.ActivityWindowDays),
	)
	scheduleService := service.NewScheduleService(st.schedule, streakService, activityService, clock, hub, logger)
	reconciler := reconcile.New(st.feed, scheduleService, streakService, activityService, logger)

	serv := api.New(&api.ServicesList{
		UserService:     service.NewUserService(st.users),
		ScheduleService: scheduleService,
		StreakService:   streakService,
		ActivityService: activityService,
		JwtService:      jwtservice.New(cfg.JWTSecret, cfg.JWTTTL),
		Reconciler:      reconciler,
		Changes:         hub,
	})
	cleanup.Register(&cleanup.Job{
		Name: "stopping http server",
		F: func() error {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return serv.Shutdown(shutdownCtx)
		},
	})

	go func() {
		logger.Info("server started", slog.String("address", cfg.APIAddress), slog.String("store", cfg.StoreDriver))
		if err := serv.Run(cfg.APIAddress); err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()
	<-ctx.Done()
	logger.Info("shutting down")
	cleanup.CleanUp()
}

func openStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) stores {
	if cfg.StoreDriver == "memory" {
		mem := repository.NewMemoryStore()
		return stores{
			users:      mem.Users(),
			schedule:   mem.Schedule(),
			streaks:    mem.Streaks(),
			activities: mem.Activities(),
			feed:       mem,
		}
	}
	if cfg.StoreDriver != "postgres" {
		log.Fatal("unknown STORE_DRIVER: " + cfg.StoreDriver)
	}
	dbCfg := repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
	}
	if cfg.MigrateOnStart {
		migrate(dbCfg.ConnString(), cfg.MigrationsDir)
	}
	pool := repository.NewPool(&dbCfg)
	feed := repository.NewPgChangeFeed(pool, logger)
	feedCtx, cancel := context.WithCancel(ctx)
	feedDone := make(chan struct{})
	go func() {
		defer close(feedDone)
		if err := feed.Run(feedCtx); err != nil {
			logger.Error("change feed stopped", slog.String("error", err.Error()))
		}
	}()
	cleanup.Register(&cleanup.Job{
		Name: "stopping change feed",
		F: func() error {
			cancel()
			<-feedDone
			return nil
		},
	})
	return stores{
		users:      repository.NewUsersRepoWithConn(pool),
		schedule:   repository.NewScheduleRepoWithConn(pool),
		streaks:    repository.NewStreaksRepoWithConn(pool),
		activities: repository.NewActivitiesRepoWithConn(pool),
		feed:       feed,
	}
}

func migrate(connStr, dir string) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		log.Fatal("opening migrations connection error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		log.Fatal(err)
	}
	if err = goose.Up(db, dir); err != nil {
		log.Fatal("applying migrations error: " + err.Error())
	}
}
