package httpserver

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tax-practice-management/config"
	"tax-practice-management/pkg/cache"
	"tax-practice-management/pkg/gcalendar"
	"tax-practice-management/pkg/log"
	"tax-practice-management/pkg/openai"
	"tax-practice-management/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin  *gin.Engine
	l    log.Logger
	cfg  *config.Config
	port int
	mode string

	postgresDB *sql.DB
	jwtManager scope.Manager
	respCache  *cache.ResponseCache
	aiClient   openai.IOpenAI
	calendar   *gcalendar.Client
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger log.Logger
	Config *config.Config

	PostgresDB *sql.DB
	JWTManager scope.Manager
	RespCache  *cache.ResponseCache
	AIClient   openai.IOpenAI
	Calendar   *gcalendar.Client
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Config.HTTPServer.Mode)

	srv := &HTTPServer{
		l:          cfg.Logger,
		gin:        gin.New(),
		cfg:        cfg.Config,
		port:       cfg.Config.HTTPServer.Port,
		mode:       cfg.Config.HTTPServer.Mode,
		postgresDB: cfg.PostgresDB,
		jwtManager: cfg.JWTManager,
		respCache:  cfg.RespCache,
		aiClient:   cfg.AIClient,
		calendar:   cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres db is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	return nil
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", srv.port),
		Handler: srv.gin,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on :%d", srv.port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
