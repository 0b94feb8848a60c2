package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/julinemart/vendorid/internal/config"
	"github.com/julinemart/vendorid/internal/directory"
	"github.com/julinemart/vendorid/internal/login"
	logindomain "github.com/julinemart/vendorid/internal/login/domain"
	"github.com/julinemart/vendorid/internal/provisioning"
	provisioningdomain "github.com/julinemart/vendorid/internal/provisioning/domain"
	"github.com/julinemart/vendorid/internal/token"
	"github.com/julinemart/vendorid/internal/vendors"
	vendordomain "github.com/julinemart/vendorid/internal/vendors/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	vendors.Module,
	directory.Module,
	token.Module,
	provisioning.Module,
	login.Module,
	fx.Provide(NewEngine),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
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
	engine          *gin.Engine
	cfg             config.Config
	provisioningsvc provisioningdomain.Service
	loginsvc        logindomain.Service
	vendorsvc       vendordomain.Service
}

type ServerParams struct {
	fx.In

	Gin             *gin.Engine
	Cfg             config.Config
	Provisioningsvc provisioningdomain.Service
	Loginsvc        logindomain.Service
	Vendorsvc       vendordomain.Service
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:          p.Gin,
		cfg:             p.Cfg,
		provisioningsvc: p.Provisioningsvc,
		loginsvc:        p.Loginsvc,
		vendorsvc:       p.Vendorsvc,
	}

	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api/vendors")

	api.POST("/provision", s.ProvisionVendor)
	api.POST("/login", s.VendorLogin)
	api.GET("/:code", s.GetVendor)
}
