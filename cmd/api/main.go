package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-dashboard/config"
	_ "project-dashboard/docs" // Swagger docs
	"project-dashboard/internal/httpserver"
	"project-dashboard/internal/project/repository/docstore"
	"project-dashboard/internal/project/usecase"
	"project-dashboard/internal/stats"
	"project-dashboard/internal/sync"
	"project-dashboard/pkg/dateutil"
	"project-dashboard/pkg/gcalendar"
	"project-dashboard/pkg/log"
	"project-dashboard/pkg/telemetry"
)

// @title       Project Dashboard API
// @description Project tracking dashboard with deadlines, functional areas, tasks and urgency bands.
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

	logger.Info(ctx, "Starting Project Dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store URL: %s", cfg.Store.URL)

	// 3. Date calculator
	calc, err := dateutil.NewCalc(cfg.Dashboard.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Dashboard.Timezone, err)
		calc, _ = dateutil.NewCalc("UTC")
	}

	labels := dateutil.DefaultLabels()
	if cfg.Labels.OverdueBy != "" {
		labels.OverdueBy = cfg.Labels.OverdueBy
	}
	if cfg.Labels.DueToday != "" {
		labels.DueToday = cfg.Labels.DueToday
	}
	if cfg.Labels.OneDayLeft != "" {
		labels.OneDayLeft = cfg.Labels.OneDayLeft
	}
	if cfg.Labels.DaysLeft != "" {
		labels.DaysLeft = cfg.Labels.DaysLeft
	}

	// 4. Document store repository
	storeClient := docstore.NewClient(cfg.Store.URL, cfg.Store.Collection, cfg.Store.AccessToken)
	mapper := docstore.NewMapper(calc, time.Now)
	repo := docstore.New(storeClient, mapper, logger)

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Project controller
	statsSvc := stats.New(calc)
	projectUC := usecase.New(
		logger,
		repo,
		statsSvc,
		calc,
		labels,
		calendarClient,
		cfg.GoogleCalendar.CalendarID,
		cfg.Dashboard.Timezone,
		time.Now,
	)

	// First load. A failure leaves an empty but interactive dashboard;
	// persistence stays suppressed until a load succeeds.
	if err := projectUC.Load(ctx); err != nil {
		logger.Warnf(ctx, "Initial load failed, starting with empty working set: %v", err)
	}

	// 7. Store webhook sync (optional)
	var webhookHandler sync.Handler
	if cfg.Webhook.Enabled && cfg.Webhook.Secret != "" {
		security := sync.NewSecurityValidator(sync.SecurityConfig{
			Secret:          cfg.Webhook.Secret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		})
		webhookHandler = sync.NewWebhookHandler(projectUC, security, logger)
		logger.Info(ctx, "Store webhook sync enabled")
	} else {
		logger.Info(ctx, "Store webhook sync disabled")
	}

	// 8. Telemetry (optional, fire-and-forget)
	reporter := telemetry.New(cfg.Telemetry.Endpoint, "project-dashboard")
	reporter.Emit("service.started", map[string]any{"environment": cfg.Environment.Name})

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		ProjectUC:      projectUC,
		WebhookHandler: webhookHandler,
		Reporter:       reporter,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
