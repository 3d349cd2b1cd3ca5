package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sdrops-service/internal/infrastructure/config"
	"sdrops-service/internal/infrastructure/oauth"
	"sdrops-service/internal/infrastructure/persistence"
	"sdrops-service/internal/interface/api"
	"sdrops-service/internal/interface/repository"
	"sdrops-service/internal/interface/sheets"
	domainRepo "sdrops-service/internal/domain/repository"
	"sdrops-service/internal/usecase"
	"sdrops-service/pkg/logger"
	"sdrops-service/pkg/metrics"
	"sdrops-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting SDR Ops Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection for the activity log
	log.Info("Connecting to MongoDB")
	mongoClient, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}

	gormDB, err := gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	// Set up repositories
	appointmentRepo := repository.NewGormAppointmentRepository(gormDB)
	statisticRepo := repository.NewGormDailyStatisticRepository(gormDB)
	incentiveRepo := repository.NewGormIncentiveRepository(gormDB)
	meetingRepo := repository.NewGormWeeklyMeetingRepository(gormDB)
	activityRepo := repository.NewMongoActivityRepository(db)
	notifier := repository.NewWebhookNotifierRepository(
		cfg.NotifyWebhookURL,
		cfg.NotifyTokenURL,
		cfg.NotifyClientID,
		cfg.NotifyClientSecret,
		log,
	)

	// Set up metrics
	m := metrics.NewMetrics("sdrops")

	// Set up the Sheets report exporter when credentials are present
	var exporter domainRepo.ReportExporter
	if cfg.GoogleRefreshToken != "" && cfg.ReportSpreadsheetID != "" {
		googleOAuth := oauth.NewGoogleOAuth(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRefreshToken,
			log,
		)
		tokenSource := googleOAuth.GetTokenSource(ctx)

		sheetsExporter, err := sheets.NewSheetsExporter(ctx, tokenSource, cfg.ReportSpreadsheetID, log)
		if err != nil {
			log.Fatal("Failed to create Sheets exporter", "error", err)
		}
		exporter = sheetsExporter
	} else {
		log.Info("Report export disabled, no Google credentials configured")
	}

	// Set up usecase services
	csvParser := utils.NewAppointmentCSVParser(log)
	appointmentService := usecase.NewAppointmentService(appointmentRepo, activityRepo, notifier, csvParser, m, log)
	statisticService := usecase.NewStatisticService(statisticRepo, activityRepo, notifier, m, log)
	incentiveService := usecase.NewIncentiveService(incentiveRepo, activityRepo, notifier, m, log)
	meetingService := usecase.NewMeetingService(meetingRepo, appointmentRepo, activityRepo, notifier, exporter, m, log)

	// Set up HTTP server
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	apiServer := api.NewServer(appointmentService, statisticService, incentiveService, meetingService, m, log)
	apiServer.Register(mux)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	// Disconnect from MongoDB
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error("MongoDB disconnect error", "error", err)
	}

	log.Info("SDR Ops Service stopped")
}
