package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	httpapi "github.com/yetkin-kariyer/botfleet/internal/api/http"
	"github.com/yetkin-kariyer/botfleet/internal/application/apply"
	"github.com/yetkin-kariyer/botfleet/internal/application/auth"
	"github.com/yetkin-kariyer/botfleet/internal/application/chance"
	"github.com/yetkin-kariyer/botfleet/internal/application/dispatch"
	"github.com/yetkin-kariyer/botfleet/internal/application/executor"
	"github.com/yetkin-kariyer/botfleet/internal/application/orchestrator"
	"github.com/yetkin-kariyer/botfleet/internal/application/schedule"
	"github.com/yetkin-kariyer/botfleet/internal/application/teamform"
	"github.com/yetkin-kariyer/botfleet/internal/config"
	"github.com/yetkin-kariyer/botfleet/internal/generator"
	"github.com/yetkin-kariyer/botfleet/internal/infrastructure/metrics"
	"github.com/yetkin-kariyer/botfleet/internal/infrastructure/postgres"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db error: %v", err)
	}
	defer pool.Close()

	if err := postgres.RunMigrations(ctx, pool, "internal/migrations"); err != nil {
		log.Fatalf("migration error: %v", err)
	}

	// repositories
	actorRepo := postgres.NewActorRepository(pool)
	fleetRepo := postgres.NewFleetRepository(pool)
	contentRepo := postgres.NewContentRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	objectiveRepo := postgres.NewObjectiveRepository(pool)
	badgeRepo := postgres.NewBadgeRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)

	collector, err := metrics.NewCollector()
	if err != nil {
		log.Fatalf("metrics error: %v", err)
	}

	var gen generator.Generator
	if cfg.OpenAIAPIKey != "" {
		genCfg := generator.DefaultOpenAIConfig()
		genCfg.APIKey = cfg.OpenAIAPIKey
		if cfg.OpenAIModel != "" {
			genCfg.Model = cfg.OpenAIModel
		}
		genCfg.RequestsPerSecond = cfg.GeneratorRPS
		gen = generator.NewOpenAIGenerator(genCfg, logger)
	} else {
		logger.Warn().Msg("OPENAI_API_KEY not set, using mock generator")
		gen = generator.NewMockGenerator()
	}

	// services
	pick := chance.New()
	limiter := schedule.NewLimiter(contentRepo, logger)
	execSvc := executor.NewService(actorRepo, contentRepo, badgeRepo, gen, pick, logger)
	dispatchSvc := dispatch.NewService(actorRepo, fleetRepo, limiter, execSvc, logger)
	orch := orchestrator.NewOrchestrator(actorRepo, fleetRepo, limiter, execSvc, pick, logger)
	teamSvc := teamform.NewService(teamRepo, logger)
	applySvc := apply.NewService(actorRepo, objectiveRepo, teamSvc, gen, logger)
	authSvc := auth.NewService(userRepo, sessionRepo, cfg.SessionTTL, logger)

	// API server
	apiServer := httpapi.NewServer(authSvc, dispatchSvc, orch, applySvc, fleetRepo, collector, cfg.DispatchAPIKey, cfg.SessionCookieName, cfg.SessionCookieSecure)

	httpServer := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      apiServer.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// background loops
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if n, err := sessionRepo.DeleteExpired(context.Background()); err == nil && n > 0 {
				logger.Info().Int("count", n).Msg("expired sessions removed")
			}
		}
	}()

	var scheduler *cron.Cron
	if cfg.BatchCron != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.BatchCron, func() {
			runCtx, cancel := context.WithTimeout(context.Background(), 60*time.Minute)
			defer cancel()
			fc, err := fleetRepo.Get(runCtx)
			if err != nil {
				logger.Error().Err(err).Msg("scheduled run: load fleet config")
				return
			}
			if fc == nil || !fc.ScheduleEnabled {
				logger.Debug().Msg("scheduled run skipped, scheduler disabled")
				return
			}
			report, err := orch.Run(runCtx, orchestrator.RunOptions{})
			if err != nil {
				collector.ObserveRun("cron", "error", 0, 0, 0)
				logger.Error().Err(err).Msg("scheduled run failed")
				return
			}
			collector.ObserveRun("cron", "ok", report.Successful, report.Failed, report.Skipped)
			logger.Info().
				Int("processed", report.Processed).
				Int("successful", report.Successful).
				Int("failed", report.Failed).
				Int("skipped", report.Skipped).
				Msg("scheduled run complete")
		})
		if err != nil {
			log.Fatalf("invalid BATCH_CRON: %v", err)
		}
		scheduler.Start()
	}

	// start server
	go func() {
		logger.Info().Str("addr", cfg.ServerAddr).Msg("http server started")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	if scheduler != nil {
		scheduler.Stop()
	}
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctxShutdown)
}
