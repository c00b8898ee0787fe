package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lifemap/internal/config"
	"lifemap/internal/db"
	"lifemap/internal/email"
	apihttp "lifemap/internal/http"
	"lifemap/internal/repository"
	"lifemap/internal/scheduler"
	"lifemap/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}
	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}

	userRepo := repository.NewPgUserRepository(pool)
	goalRepo := repository.NewPgGoalRepository(pool)
	mentorshipRepo := repository.NewPgMentorshipRepository(pool)
	mentorRepo := repository.NewPgMentorRepository(pool)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	window := time.Duration(cfg.SubmissionWindowMinutes) * time.Minute
	var (
		limiter     service.RateLimiter = service.NewRateLimiter(window, cfg.SubmissionMax)
		statsCache  service.StatsCache
		redisClient *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			limiter = service.NewRedisRateLimiter(redisClient, window, cfg.SubmissionMax)
			statsCache = service.NewRedisStatsCache(redisClient)
		}
		cancel()
	}

	verifier := service.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	if len(cfg.AdminUserIDs) == 0 {
		logger.Warn("no admin users configured")
	}

	statsInterval := time.Duration(cfg.StatsRefreshMinutes) * time.Minute
	userSvc := service.NewUserService(logger, userRepo)
	assessmentSvc := service.NewAssessmentService(logger, userRepo, service.ScopedRateLimiter("assessment", limiter))
	resourceSvc := service.NewResourceService(logger, userRepo)
	goalSvc := service.NewGoalService(logger, goalRepo)
	mentorshipSvc := service.NewMentorshipService(logger, mentorshipRepo, userRepo, service.ScopedRateLimiter("mentorship", limiter), emailSender, cfg.MentorshipNotifyEmail)
	analyticsSvc := service.NewAnalyticsService(logger, userRepo, goalRepo, mentorshipRepo)
	adminSvc := service.NewAdminService(logger, userRepo, mentorRepo, goalRepo, mentorshipRepo, statsCache, 2*statsInterval)

	jobs := scheduler.New(logger, adminSvc, statsInterval)
	if err := jobs.Start(); err != nil {
		logger.Fatal("scheduler start", zap.Error(err))
	}
	defer jobs.Stop()

	router := apihttp.NewRouter(logger, verifier, cfg.AdminUserIDs, apihttp.Handlers{
		Users:      apihttp.NewUserHandler(logger, userSvc),
		Assessment: apihttp.NewAssessmentHandler(logger, assessmentSvc),
		Resources:  apihttp.NewResourceHandler(logger, resourceSvc),
		Goals:      apihttp.NewGoalHandler(logger, goalSvc),
		Mentorship: apihttp.NewMentorshipHandler(logger, mentorshipSvc),
		Analytics:  apihttp.NewAnalyticsHandler(logger, analyticsSvc),
		Admin:      apihttp.NewAdminHandler(logger, adminSvc),
	})

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
