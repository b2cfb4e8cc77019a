package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sodamelon/kanban/docs"
	"github.com/sodamelon/kanban/internal/board"
	"github.com/sodamelon/kanban/internal/config"
	"github.com/sodamelon/kanban/internal/drag"
	"github.com/sodamelon/kanban/internal/handler"
	"github.com/sodamelon/kanban/internal/middleware"
	"github.com/sodamelon/kanban/internal/repository"
	"github.com/sodamelon/kanban/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Server struct {
	Engine *gin.Engine
	Store  *store.Store
	Boards *repository.BoardRepository
	Config *config.Config

	log *logrus.Entry
}

func Init(ctx context.Context, cfg *config.Config) (*Server, error) {
	log := logrus.WithField("component", "server")

	// Setup storage
	backend, err := store.Open(ctx, StoreOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("❌ failed to open %s store: %w", cfg.StoreDriver, err)
	}
	log.WithField("driver", cfg.StoreDriver).Info("✅ Storage ready")

	s := store.New(backend, logrus.NewEntry(logrus.StandardLogger()))
	boards := repository.NewBoardRepository(ctx, s, cfg.StorageKey, nil)

	srv := New(boards, cfg, log)
	srv.Store = s
	return srv, nil
}

// New builds the router around an already loaded repository.
func New(boards *repository.BoardRepository, cfg *config.Config, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.WithField("component", "server")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(log), middleware.Recovery(log))

	s := &Server{
		Engine: r,
		Boards: boards,
		Config: cfg,
		log:    log,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	tree := board.NewTree()

	// Initialize handlers
	boardHandler := handler.NewBoardHandler(s.Boards, tree)
	columnHandler := handler.NewColumnHandler(s.Boards, tree)
	cardHandler := handler.NewCardHandler(s.Boards, tree)
	dragHandler := handler.NewDragHandler(s.Boards, tree, DragOptions(s.Config), s.log.WithField("component", "drag"))

	api := s.Engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		// Board routes
		api.GET("/boards", boardHandler.GetAll)
		api.POST("/boards", boardHandler.Create)
		api.GET("/boards/:id", boardHandler.GetByID)
		api.PUT("/boards/:id", boardHandler.Update)
		api.DELETE("/boards/:id", boardHandler.Delete)

		// Column routes
		api.POST("/boards/:id/columns", columnHandler.Create)
		api.PUT("/boards/:id/columns/:column_id", columnHandler.Update)
		api.DELETE("/boards/:id/columns/:column_id", columnHandler.Delete)

		// Card routes
		api.POST("/boards/:id/columns/:column_id/cards", cardHandler.Create)
		api.PUT("/boards/:id/columns/:column_id/cards/:card_id", cardHandler.Update)
		api.DELETE("/boards/:id/columns/:column_id/cards/:card_id", cardHandler.Delete)

		// Drag gesture routes
		api.GET("/boards/:id/drag", dragHandler.Get)
		api.POST("/boards/:id/drag/start", dragHandler.Start)
		api.POST("/boards/:id/drag/over", dragHandler.Over)
		api.POST("/boards/:id/drag/end", dragHandler.End)
		api.POST("/boards/:id/drag/cancel", dragHandler.Cancel)
	}

	docs.SwaggerInfo.Host = s.Config.Addr()
	s.Engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	s.mountStatic()
}

// handleHealth godoc
// @Summary      Readiness probe
// @Description  Reports that the server is up and whether the last write reached storage
// @Tags         System
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /healthz [get]
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "durable": s.Boards.Durable()})
}

// StoreOptions maps the configuration onto the storage backend options.
func StoreOptions(cfg *config.Config) store.Options {
	return store.Options{
		Driver:     cfg.StoreDriver,
		DataDir:    cfg.DataDir,
		SQLitePath: cfg.SQLitePath,
		Postgres: store.PostgresConfig{
			Host:     cfg.DBHost,
			Port:     cfg.DBPort,
			User:     cfg.DBUser,
			Password: cfg.DBPassword,
			Name:     cfg.DBName,
		},
		RedisURL:    cfg.RedisURL,
		RedisPrefix: "kanban:",
	}
}

func DragOptions(cfg *config.Config) drag.Options {
	return drag.Options{
		PersistOnOver:    cfg.PersistDragOver,
		RevertOnNoTarget: cfg.RevertDragNoTarget,
	}
}

// Run serves until SIGINT/SIGTERM and then shuts down gracefully.
func (s *Server) Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.Serve(ctx); err != nil {
		s.log.Fatalf("❌ Server stopped: %s", err)
	}
}

// Serve listens until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Config.Addr(),
		Handler: s.Engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infof("🚀 Server running on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to listen: %w", err)
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	s.log.Info("🛑 Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	if s.Store != nil {
		if err := s.Store.Close(); err != nil {
			s.log.WithError(err).Warn("store close failed")
		}
	}

	s.log.Info("✅ Server exited properly")
	return nil
}

