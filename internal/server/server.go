package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	assistantdomain "github.com/shoplight/shoplight/internal/assistant/domain"
	catalogdomain "github.com/shoplight/shoplight/internal/catalog/domain"
	"github.com/shoplight/shoplight/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewHTTPMetrics),
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogging(log))
	r.Use(MetricsMiddleware(metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	log          *zap.Logger
	metrics      *HTTPMetrics
	catalogSvc   catalogdomain.Service
	assistantSvc assistantdomain.Service
	started      time.Time
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	Log          *zap.Logger
	Metrics      *HTTPMetrics
	CatalogSvc   catalogdomain.Service
	AssistantSvc assistantdomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		log:          p.Log.Named("server"),
		metrics:      p.Metrics,
		catalogSvc:   p.CatalogSvc,
		assistantSvc: p.AssistantSvc,
		started:      time.Now(),
	}

	svc.registerRoutes()
	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.HandleIndex)
	s.engine.GET("/health", s.HandleHealth)

	webhooks := s.engine.Group("/webhooks")
	{
		webhooks.POST("/products", s.HandleProductWebhook)
	}

	s.engine.POST("/chat", s.HandleChat)
}

func (s *Server) HandleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Shoplight API",
		"version": s.cfg.AppVersion,
		"endpoints": gin.H{
			"health":   "/health",
			"webhooks": "/webhooks/products",
			"chat":     "/chat",
		},
	})
}

func (s *Server) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"uptime":      time.Since(s.started).Seconds(),
		"environment": s.cfg.Environment,
	})
}
