package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/studyflow/internal/config"
	"github.com/mmynk/studyflow/internal/gateway"
	"github.com/mmynk/studyflow/internal/middleware"
	"github.com/mmynk/studyflow/internal/service"
	"github.com/mmynk/studyflow/internal/storage/sqlite"
	"github.com/mmynk/studyflow/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup()
		return fmt.Errorf("load config: %w", err)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.Logging.Level))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize SQLite storage
	if dir := filepath.Dir(cfg.Server.DatabasePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create data dir: %w", err)
		}
	}
	store, err := sqlite.New(cfg.Server.DatabasePath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Server.DatabasePath)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	timeout, err := cfg.AI.TimeoutDuration()
	if err != nil {
		return err
	}
	tutor := gateway.New(ctx, cfg.AI.APIKey, gateway.Options{
		Model:      cfg.AI.Model,
		Timeout:    timeout,
		Registerer: reg,
	})
	slog.Info("AI gateway ready", "model", cfg.AI.Model, "api_key_set", cfg.AI.APIKey != "")

	interceptors := connect.WithInterceptors(
		middleware.NewRPCMetrics(reg).Interceptor(),
		middleware.ProfileInterceptor(store),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(service.NewProfileServiceHandler(service.NewProfileService(store), interceptors))
	mux.Handle(service.NewPlanServiceHandler(service.NewPlanService(store, tutor), interceptors))
	mux.Handle(service.NewSocialServiceHandler(service.NewSocialService(store), interceptors))
	mux.Handle(service.NewTutorServiceHandler(service.NewTutorService(tutor), interceptors))

	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if cfg.Server.StaticPath != "" {
		static, err := staticHandler(cfg.Server.StaticPath)
		if err != nil {
			return err
		}
		mux.Handle("/", static)
	}

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(middleware.HTTPLogging(middleware.CORS(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// staticHandler serves a built frontend from dir. Unknown paths get
// index.html so client-side routes work.
func staticHandler(dir string) (http.Handler, error) {
	staticDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve static path: %w", err)
	}
	slog.Info("Serving static files", "path", staticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Unregistered RPC paths are not pages.
		if strings.HasPrefix(r.URL.Path, "/studyflow.v1.") {
			http.NotFound(w, r)
			return
		}

		urlPath := r.URL.Path
		if urlPath == "/" {
			urlPath = "/index.html"
		}

		filePath := filepath.Join(staticDir, filepath.Clean(urlPath))
		if _, err := os.Stat(filePath); os.IsNotExist(err) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		http.ServeFile(w, r, filePath)
	}), nil
}
