package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/neurobridge-education-mock/internal/config"
	"github.com/yungbote/neurobridge-education-mock/internal/domain/education"
	httpx "github.com/yungbote/neurobridge-education-mock/internal/http"
	httpH "github.com/yungbote/neurobridge-education-mock/internal/http/handlers"
	"github.com/yungbote/neurobridge-education-mock/internal/observability"
	"github.com/yungbote/neurobridge-education-mock/internal/platform/logger"
)

type App struct {
	Log     *logger.Logger
	Config  *config.Config
	Catalog *education.Catalog
	Router  *gin.Engine

	server        *http.Server
	traceShutdown observability.ShutdownFunc
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log.Mode, logger.WithRedaction(cfg.Log.Redact, cfg.Log.HashSalt))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	return NewWithConfig(ctx, cfg, log)
}

// NewWithConfig wires the app from an already loaded config and logger.
func NewWithConfig(ctx context.Context, cfg *config.Config, log *logger.Logger) (*App, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	traceShutdown, err := observability.InitTracing(ctx, log, cfg.Tracing, cfg.Log.Mode)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	catalog, err := education.DefaultCatalog()
	if err != nil {
		_ = traceShutdown(ctx)
		log.Sync()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	serviceName := ""
	if cfg.Tracing.Enabled {
		serviceName = cfg.Tracing.ServiceName
	}
	router := httpx.NewRouter(httpx.RouterConfig{
		Log:         log,
		ServiceName: serviceName,
		EducationHandler: httpH.NewEducationHandler(httpH.EducationHandlerDeps{
			Log:             log,
			Catalog:         catalog,
			MaxRequestBytes: cfg.HTTP.MaxRequestBytes,
		}),
	})

	return &App{
		Log:           log,
		Config:        cfg,
		Catalog:       catalog,
		Router:        router,
		server:        httpx.NewServer(cfg, router),
		traceShutdown: traceShutdown,
	}, nil
}

// Run binds the listen address and serves until ctx is cancelled, then shuts
// the server down gracefully.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return errors.New("app not initialized")
	}
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on a caller-provided listener.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	a.logStartup(ln.Addr())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.HTTP.ShutdownTimeout.Duration)
		defer cancel()
		a.Log.Info("education api shutting down")
		return a.server.Shutdown(shutdownCtx)
	})

	err := g.Wait()
	a.Close()
	return err
}

func (a *App) logStartup(addr net.Addr) {
	port := strings.TrimPrefix(config.ListenAddr, ":")
	if tcp, ok := addr.(*net.TCPAddr); ok {
		port = strconv.Itoa(tcp.Port)
	}
	a.Log.Info("education api test server listening", "port", port)
	a.Log.Info("education api ready for testing", "url", fmt.Sprintf("http://localhost:%s/api/chapters", port))
	a.Log.Info("education api serving mock data to app clients")
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.traceShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), a.Config.HTTP.ShutdownTimeout.Duration)
		if err := a.traceShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
		a.traceShutdown = nil
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
