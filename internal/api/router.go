package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/arencloud/hestia/internal/config"
	"github.com/arencloud/hestia/internal/middleware"
	"github.com/arencloud/hestia/internal/models"
	"github.com/arencloud/hestia/internal/provisioner"
	"github.com/arencloud/hestia/internal/s3"
	"github.com/arencloud/hestia/internal/version"
)

// TenantStore is the repository surface the handlers need.
type TenantStore interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	Save(ctx context.Context, tenant *models.Tenant) error
	FindByKey(ctx context.Context, key string) (*models.Tenant, error)
	List(ctx context.Context) ([]models.Tenant, error)
	Delete(ctx context.Context, key string) error
}

// Provisioner is the bucket lifecycle surface the handlers need.
type Provisioner interface {
	CreateTenantBucket(ctx context.Context, tenant *models.Tenant) provisioner.Result
	DeleteTenantBucket(ctx context.Context, tenant *models.Tenant) provisioner.Result
}

type Server struct {
	store   TenantStore
	buckets Provisioner
	log     *zap.Logger
}

// Router assembles the gin engine: request IDs, structured request logs,
// panic recovery, health/version/metrics, and the v1 tenant API.
func Router(cfg *config.Config, store TenantStore, buckets Provisioner, log *zap.Logger) *gin.Engine {
	if cfg.Env != "dev" && cfg.Env != "test" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(requestid.New())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))

	s := &Server{store: store, buckets: buckets, log: log}

	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":         "hestia",
			"version":      version.Version,
			"s3ApiVersion": s3.APIVersion,
		})
	})

	v1 := api.Group("/v1")
	if cfg.AdminToken != "" {
		v1.Use(middleware.BearerAuth(cfg.AdminToken))
	}
	s.register(v1)

	return r
}

func (s *Server) register(r *gin.RouterGroup) {
	r.GET("/tenants", s.listTenants)
	r.POST("/tenants", s.createTenant)
	r.GET("/tenants/:key", s.getTenant)
	r.DELETE("/tenants/:key", s.deleteTenant)

	r.POST("/tenants/:key/bucket", s.provisionBucket)
	r.DELETE("/tenants/:key/bucket", s.deprovisionBucket)
}
