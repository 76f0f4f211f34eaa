package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/hris-attendance-core/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-attendance-core/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterOptions struct {
	// JWTService enables token verification on /api/v1 when set.
	JWTService     jwt.Service
	AllowedOrigins []string
	Env            string
	Version        string
	LogLevel       slog.Level
	// Logger overrides the ECS JSON access logger.
	Logger *slog.Logger
}

func NewRouter(
	opts RouterOptions,
	periodHandler PeriodHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	recordHandler RecordHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logger := opts.Logger
	if logger == nil {
		logFormat := httplog.SchemaECS.Concise(opts.Env != "production")
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level:       opts.LogLevel,
			ReplaceAttr: logFormat.ReplaceAttr,
		})).With(
			slog.String("app", "hris-attendance-core"),
			slog.String("version", opts.Version),
			slog.String("env", opts.Env),
		)
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		if opts.JWTService != nil {
			r.Use(jwtauth.Verifier(opts.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)
		}

		r.Get("/periods/{period}", periodHandler.Resolve)

		r.Route("/attendance", func(r chi.Router) {
			r.With(chiMiddleware.AllowContentType("application/json")).Post("/events", attendanceHandler.RecordEvent)
			r.With(chiMiddleware.AllowContentType("application/json")).Post("/classify", attendanceHandler.Classify)

			r.Get("/roster", reportHandler.Roster)
			r.Get("/employees/{employeeID}/performance", reportHandler.EmployeePerformance)
			r.Get("/departments/punctuality", reportHandler.DepartmentPunctuality)
			r.Get("/trend", reportHandler.Trend)

			// Admin only
			r.Group(func(r chi.Router) {
				if opts.JWTService != nil {
					r.Use(middleware.AdminOnly)
				}
				r.Get("/dashboard", reportHandler.Dashboard)
				r.Get("/reports/punctuality.xlsx", reportHandler.ExportPunctuality)
			})
		})

		r.Get("/records/{period}", recordHandler.List)
	})
	return r
}
