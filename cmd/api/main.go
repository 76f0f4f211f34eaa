package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-attendance-core/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-attendance-core/internal/handler/http"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/database"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-attendance-core/internal/repository/postgresql"
	attendanceService "github.com/cmlabs-hris/hris-attendance-core/internal/service/attendance"
	periodService "github.com/cmlabs-hris/hris-attendance-core/internal/service/period"
	recordService "github.com/cmlabs-hris/hris-attendance-core/internal/service/record"
	reportService "github.com/cmlabs-hris/hris-attendance-core/internal/service/report"
	"github.com/jonboulle/clockwork"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbHandle := database.NewHandle(cfg.DatabaseURL())
	defer dbHandle.Close()

	db, err := dbHandle.Get(ctx)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}

	loc := cfg.Business.Location
	clock := clockwork.NewRealClock()

	eventRepo := postgresql.NewAttendanceEventRepository(db, loc)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	transactor := postgresql.NewTransactor(db)

	resolver := periodService.NewResolver(loc, clock)
	classifier := attendanceService.NewClassifier()

	attendanceSvc := attendanceService.NewAttendanceService(eventRepo, employeeRepo, transactor, classifier, cfg.Policy, loc, clock)
	reportSvc := reportService.NewReportService(eventRepo, employeeRepo, resolver, cfg.Policy, cfg.Business.TrendDays)
	recordSvc := recordService.NewRecordQueryService(recordRepo, resolver, cfg.Business.RecordPageLimit)

	var jwtService jwt.Service
	if cfg.JWT.Secret != "" {
		jwtService = jwt.NewJWTService(cfg.JWT.Secret, clock)
	} else {
		slog.Warn("JWT_SECRET_KEY is not set, API is unauthenticated")
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			JWTService:     jwtService,
			AllowedOrigins: cfg.App.CORSAllowedOrigins,
			Env:            cfg.App.Env,
			Version:        version,
			LogLevel:       cfg.SlogLevel(),
		},
		appHTTP.NewPeriodHandler(resolver),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewRecordHandler(recordSvc, cfg.Business.RecordPageLimit),
	)

	scheduler := cron.NewScheduler(clock)
	cron.NewAttendanceJobs(reportSvc, cfg.Business.DigestInterval, slog.Default()).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "timezone", loc.String(), "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
	slog.Info("Server stopped")
}
