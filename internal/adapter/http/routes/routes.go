package routes

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "smt_scheduler/docs"
	"smt_scheduler/internal/adapter/http/handlers"
	"smt_scheduler/internal/adapter/http/middleware"
	"smt_scheduler/internal/bootstrap"
	"smt_scheduler/internal/config"
	"smt_scheduler/internal/domain/scheduling"
	"smt_scheduler/internal/infrastructure/logging"
	"smt_scheduler/internal/infrastructure/metrics"
	"smt_scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the usecases and infrastructure the router serves.
type Dependencies struct {
	AutoSchedule   usecase.IAutoScheduleUseCase
	ProductionLine usecase.IProductionLineUseCase
	WorkOrder      usecase.IWorkOrderUseCase
	Metrics        *metrics.Metrics
	Log            *logging.Logger
	Location       *time.Location
	// Clock defaults to the system clock.
	Clock scheduling.Clock
	// Events is optional; when set /health reports its circuit state.
	Events handlers.BreakerState
}

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.DefaultConfig("smt-scheduler")).WithError(err).Error("failed to load configuration")
		os.Exit(1)
	}

	logCfg := logging.DefaultConfig("smt-scheduler")
	logCfg.Level = logging.LogLevel(cfg.LogLevel)
	logCfg.Environment = cfg.Environment
	logger := logging.New(logCfg)
	logger.SetDefault()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := metrics.New(metrics.DefaultConfig())
	container, err := bootstrap.New(ctx, cfg, logger, m)
	if err != nil {
		logger.WithError(err).Error("failed to startup the application")
		os.Exit(1)
	}
	defer container.Close()

	deps := Dependencies{
		AutoSchedule:   container.AutoSchedule,
		ProductionLine: container.ProductionLine,
		WorkOrder:      container.WorkOrder,
		Metrics:        m,
		Log:            logger,
		Location:       container.Location,
		Clock:          scheduling.SystemClock{},
	}
	if container.Events != nil {
		deps.Events = container.Events
	}
	router := NewRouter(deps)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	// A run in flight is allowed to finish its budget.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Scheduler.Budget+5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
	logger.Info("http server stopped")
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Log == nil {
		deps.Log = logging.Nop()
	}
	if deps.Location == nil {
		deps.Location = time.UTC
	}
	if deps.Clock == nil {
		deps.Clock = scheduling.SystemClock{}
	}

	router := gin.New()
	setMiddlewares(router, deps)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", middleware.MetricsEndpoint(deps.Metrics))
	}

	scheduleHandler := handlers.NewScheduleHandler(deps.AutoSchedule, deps.Location, deps.Clock, deps.Log)
	lineHandler := handlers.NewLineHandler(deps.ProductionLine, deps.Location, deps.Clock, deps.Events)
	workOrderHandler := handlers.NewWorkOrderHandler(deps.WorkOrder)

	router.GET("/health", lineHandler.Health)

	v1 := router.Group("/v1")
	addPingRoutes(v1, lineHandler)
	addScheduleRoutes(v1, scheduleHandler)
	addLineRoutes(v1, lineHandler)
	addWorkOrderRoutes(v1, workOrderHandler)
	return router
}

func setMiddlewares(router *gin.Engine, deps Dependencies) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		deps.Log.Error("recovered from panic", "panic", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}
}
