package http

import (
	"context"
	"errors"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"regexlab/internal/app/adapters/http/handlers"
	"regexlab/internal/app/adapters/http/middlewares"
	"regexlab/internal/app/infrastructure/config"
	"regexlab/pkg/logger"
	"time"
)

type Router struct {
	router      *gin.Engine
	handlers    *handlers.Handlers
	middlewares *middlewares.Middlewares

	log     logger.Logger
	manager *config.Manager
}

func NewRouter(log logger.Logger, manager *config.Manager, h *handlers.Handlers) *Router {
	r := &Router{
		router:      gin.New(),
		handlers:    h,
		middlewares: middlewares.New(log),
		log:         log,
		manager:     manager,
	}
	cfg := manager.Get()

	r.router.Use(gin.Recovery())
	if gin.Mode() == gin.DebugMode {
		r.router.Use(gin.Logger())
	}

	if cfg.App.AuthToken != "" {
		pprofGroup := r.router.Group("/", gin.BasicAuth(gin.Accounts{
			"admin": cfg.App.AuthToken,
		}))
		pprof.Register(pprofGroup)

		r.router.GET("/metrics", gin.BasicAuth(gin.Accounts{
			"admin": cfg.App.AuthToken,
		}), gin.WrapH(promhttp.Handler()))
	}

	r.router.GET("/", r.handlers.IndexHandler)

	api := r.router.Group("/api", r.middlewares.RateLimit(cfg.Limiter.Requests, cfg.Limiter.Per))
	api.GET("/presets", r.handlers.ListPresets)
	api.GET("/status", r.handlers.Status)
	api.PUT("/admin/log-level", r.middlewares.Auth(cfg.App.AuthToken), r.handlers.SetLogLevel)

	sessions := api.Group("/sessions")
	sessions.POST("", r.handlers.CreateSession)
	sessions.GET("/:id", r.handlers.GetSession)
	sessions.DELETE("/:id", r.handlers.DeleteSession)
	sessions.GET("/:id/evaluate", r.handlers.Evaluate)
	sessions.PUT("/:id/pattern", r.handlers.SetPattern)
	sessions.POST("/:id/preset", r.handlers.ApplyPreset)
	sessions.POST("/:id/strings", r.handlers.AddTestString)
	sessions.DELETE("/:id/strings/:index", r.handlers.RemoveTestString)
	sessions.GET("/:id/ws", r.handlers.Live)

	return r
}

func (r *Router) Handler() http.Handler {
	return r.router
}

// Run слушает addr до отмены ctx, затем плавно останавливает сервер.
func (r *Router) Run(ctx context.Context, addr string) error {
	srv := r.newServer(addr, r.router)

	errCh := make(chan error, 1)
	go func() {
		r.log.Info("HTTP server started", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	r.log.Info("HTTP server stopped")
	return nil
}

func (r *Router) newServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}
}
