package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	clientHTTP "tax-practice-management/internal/client/delivery/http"
	clientRepo "tax-practice-management/internal/client/repository/postgre"
	clientUC "tax-practice-management/internal/client/usecase"
	"tax-practice-management/internal/middleware"
	projectHTTP "tax-practice-management/internal/project/delivery/http"
	projectRepo "tax-practice-management/internal/project/repository/postgre"
	projectUC "tax-practice-management/internal/project/usecase"
	taskHTTP "tax-practice-management/internal/task/delivery/http"
	taskRepo "tax-practice-management/internal/task/repository/postgre"
	taskUC "tax-practice-management/internal/task/usecase"
	taxreturnHTTP "tax-practice-management/internal/taxreturn/delivery/http"
	taxreturnRepo "tax-practice-management/internal/taxreturn/repository/postgre"
	taxreturnUC "tax-practice-management/internal/taxreturn/usecase"
	templateHTTP "tax-practice-management/internal/template/delivery/http"
	templateRepo "tax-practice-management/internal/template/repository/postgre"
	templateUC "tax-practice-management/internal/template/usecase"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.cfg, srv.respCache)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	return srv.registerDomainRoutes(mw)
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.CORS())
	srv.gin.Use(mw.Metrics())
	srv.gin.Use(mw.RateLimit())
	if srv.cfg.Cache.Enabled {
		srv.gin.Use(mw.Cache())
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/metrics", gin.WrapH(promhttp.Handler()))

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes wires every domain under /api/v1. Repositories,
// use cases, and handlers are built here so main stays a thin bootstrap.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	loc, err := time.LoadLocation(srv.cfg.Server.Timezone)
	if err != nil {
		srv.l.Warnf(ctx, "invalid timezone %q, falling back to UTC: %v", srv.cfg.Server.Timezone, err)
		loc = time.UTC
	}

	// Project domain, plus the advisory tx hooks shared with tax returns.
	pRepo := projectRepo.New(srv.postgresDB, srv.l)
	hooks := projectRepo.NewTxHooks(srv.postgresDB, srv.l)
	pUC := projectUC.New(srv.l, pRepo, hooks, projectUC.Config{
		Location:   loc,
		Calendar:   srv.calendar,
		CalendarID: srv.cfg.GoogleCalendar.CalendarID,
	})
	projectHTTP.RegisterRoutes(api, projectHTTP.New(srv.l, pUC), mw)

	// Task domain. The classification client is optional.
	tRepo := taskRepo.New(srv.postgresDB, srv.l)
	tUC := taskUC.New(srv.l, tRepo, srv.aiClient)
	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, tUC), mw)

	// Template domain depends on task validation and persistence.
	tplRepo := templateRepo.New(srv.postgresDB, srv.l)
	tplUC := templateUC.New(srv.l, tplRepo, tRepo, tUC)
	templateHTTP.RegisterRoutes(api, templateHTTP.New(srv.l, tplUC), mw)

	// Client domain.
	cRepo := clientRepo.New(srv.postgresDB, srv.l)
	cUC := clientUC.New(srv.l, cRepo)
	clientHTTP.RegisterRoutes(api, clientHTTP.New(srv.l, cUC), mw)

	// Tax return domain cascades completion into projects.
	trRepo := taxreturnRepo.New(srv.postgresDB, srv.l)
	trUC := taxreturnUC.New(srv.l, trRepo, pRepo, hooks)
	taxreturnHTTP.RegisterRoutes(api, taxreturnHTTP.New(srv.l, trUC), mw)

	srv.l.Infof(ctx, "registered domains: projects, tasks, templates, clients, tax-returns")
	return nil
}
