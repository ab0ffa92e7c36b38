// Package api поднимает HTTP-сервер только для чтения: состояние мира, узлы и
// метрики. Все обращения к миру идут через engine.Loop.Do.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/steaphangreene/acidmud-sub001/internal/engine"
	"github.com/steaphangreene/acidmud-sub001/internal/logging"
	"github.com/steaphangreene/acidmud-sub001/internal/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Server представляет REST API для инспекции мира
type Server struct {
	router  *gin.Engine
	http    *http.Server
	loop    *engine.Loop
	process *processMetrics
	timeout time.Duration
	log     *logging.Logger
}

// Config содержит конфигурацию для REST сервера
type Config struct {
	Port     string                // адрес, например ":8088"
	Loop     *engine.Loop          // игровой цикл, владеющий миром
	Registry prometheus.Registerer // nil означает дефолтный регистр
	Timeout  time.Duration         // ожидание ответа цикла на запрос
}

// GenericResponse: общий конверт ответа.
type GenericResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewServer создает REST сервер. Порт не открывается до Start.
func NewServer(cfg Config) *Server {
	if cfg.Port == "" {
		cfg.Port = ":8088"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}

	gin.SetMode(gin.ReleaseMode)

	router := gin.New()        // без стандартного logger/recovery
	router.Use(gin.Recovery()) // добавим только recovery

	// === Observability middleware ===
	router.Use(otelgin.Middleware("inspect_api"))
	router.Use(middleware.NewRequestLogger(nil).Handler())

	promMw := middleware.NewPrometheusMiddleware("inspect_api", cfg.Registry)
	router.Use(promMw.Handler())
	promMw.RegisterMetricsEndpoint(router)

	s := &Server{
		router:  router,
		loop:    cfg.Loop,
		process: newProcessMetrics(),
		timeout: cfg.Timeout,
		log:     logging.GetAPILogger(),
	}
	s.http = &http.Server{
		Addr:              cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	api := s.router.Group("/api")
	{
		api.GET("/server", s.handleServer)
		api.GET("/world/stats", s.handleWorldStats)
		api.GET("/nodes/:id", s.handleNode)
		api.GET("/nodes/:id/touching", s.handleTouching)
	}
}

// Handler отдаёт http.Handler, удобно для httptest.
func (s *Server) Handler() http.Handler { return s.router }

// Start блокирует до остановки сервера.
func (s *Server) Start() error {
	s.log.Info("🌐 REST API слушает %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop выполняет graceful shutdown.
func (s *Server) Stop(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
