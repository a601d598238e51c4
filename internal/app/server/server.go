package server

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"ems/internal/domain/access"
	"ems/internal/domain/attendance"
	"ems/internal/domain/directory"
	"ems/internal/domain/leave"
	"ems/internal/domain/payroll"
	"ems/internal/domain/session"
	"ems/internal/platform/config"
	"ems/internal/platform/demo"
	"ems/internal/platform/metrics"
	attendancehandler "ems/internal/transport/http/handlers/attendance"
	authhandler "ems/internal/transport/http/handlers/auth"
	directoryhandler "ems/internal/transport/http/handlers/directory"
	leavehandler "ems/internal/transport/http/handlers/leave"
	payrollhandler "ems/internal/transport/http/handlers/payroll"
	"ems/internal/transport/http/middleware"
)

type App struct {
	Config   config.Config
	Router   http.Handler
	Sessions *session.Registry
	Leave    *leave.Service
}

func New(cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	secret := cfg.SessionSecret
	if secret == "" {
		// Development fallback: sessions do not survive a restart.
		secret = randomSecret()
	}

	sessions := session.NewRegistry()
	guard := access.Guard{LoginPath: cfg.LoginPath, LandingPath: cfg.LandingPath}

	directoryStore := directory.NewStore()
	payrollStore := payroll.NewStore()
	attendanceStore := attendance.NewStore()
	leaveService := leave.NewService(leave.NewStore())
	payrollService := payroll.NewService(payrollStore, attendanceStore)

	if cfg.SeedDemoData {
		if err := demo.Seed(directoryStore, payrollStore, attendanceStore); err != nil {
			return nil, err
		}
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.New()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(secret, sessions))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if collector != nil {
		router.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(secret, cfg.SessionTTL, sessions).RegisterRoutes(r)
		leavehandler.NewHandler(leaveService, directoryStore, guard).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollService, directoryStore, guard).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceStore, directoryStore, guard).RegisterRoutes(r)
		directoryhandler.NewHandler(directoryStore, guard).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	return &App{Config: cfg, Router: router, Sessions: sessions, Leave: leaveService}, nil
}

func Run() {
	cfg := config.Load()
	app, err := New(cfg)
	if err != nil {
		log.Fatalf("server setup failed: %v", err)
	}
	log.Printf("EMS portal listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func randomSecret() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Fatalf("failed to generate session secret: %v", err)
	}
	return hex.EncodeToString(buf)
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
