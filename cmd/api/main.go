package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"tax-practice-management/config"
	_ "tax-practice-management/docs" // Swagger docs
	"tax-practice-management/internal/httpserver"
	"tax-practice-management/pkg/cache"
	"tax-practice-management/pkg/gcalendar"
	"tax-practice-management/pkg/log"
	"tax-practice-management/pkg/openai"
	"tax-practice-management/pkg/response"
	"tax-practice-management/pkg/scope"
)

// @title       Tax Practice Management API
// @description Multi-tenant accounting practice management: projects, tasks, templates, clients, and tax returns.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Tax Practice Management...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	response.SetEnvironment(cfg.Environment.Name)

	// 3. PostgreSQL via the pgx stdlib driver
	db, err := sql.Open("pgx", cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf(ctx, "Failed to open database: %v", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxConns)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		logger.Warnf(ctx, "Database not reachable at startup: %v", err)
	}
	cancel()

	// 4. Auth, response cache, classification client
	ttl, err := time.ParseDuration(cfg.Auth.TokenTTL)
	if err != nil {
		ttl = 24 * time.Hour
	}
	jwtManager := scope.NewManager(cfg.Auth.JWTSecret, ttl)

	respCache := cache.New(cfg.Cache.MaxEntries, time.Duration(cfg.Cache.TTLSeconds)*time.Second)

	var aiClient openai.IOpenAI
	if cfg.OpenAI.APIKey != "" {
		client, aiErr := openai.New(openai.Config{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		})
		if aiErr != nil {
			logger.Warnf(ctx, "Classification client not available (optional): %v", aiErr)
		} else {
			aiClient = client
			logger.Info(ctx, "Classification client initialized")
		}
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY missing, task classification falls back to default category")
	}

	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Calendar client not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Calendar client initialized")
		}
	} else {
		logger.Warn(ctx, "Google Calendar credentials missing, deadline events disabled")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:     logger,
		Config:     cfg,
		PostgresDB: db,
		JWTManager: jwtManager,
		RespCache:  respCache,
		AIClient:   aiClient,
		Calendar:   calendarClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
