package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lost-woods/mechanica/src/api"
	"github.com/lost-woods/mechanica/src/rng"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	port   string
	router *gin.Engine
	log    *zap.SugaredLogger
}

func New(port, apiKey string, src rng.Source, h *rng.Health, log *zap.SugaredLogger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"X-API-KEY", "Accept"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowAllOrigins:  true,
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(api.CheckHeader("X-API-KEY", apiKey))

	handlers := api.NewHandlers(src, h, log)
	router.GET("/", handlers.RandomNumber)
	router.GET("/bytes", handlers.RandomBytes)
	router.GET("/strings", handlers.RandomStrings)
	router.GET("/shuffle", handlers.RandomShuffle)
	router.GET("/percent", handlers.RandomPercent)
	router.GET("/uuid", handlers.RandomUUID)
	router.GET("/health", handlers.Health)

	return &Server{port: port, router: router, log: log}
}

func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Infow("listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
