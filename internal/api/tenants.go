package api

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arencloud/hestia/internal/db"
	"github.com/arencloud/hestia/internal/models"
)

// keyPattern constrains tenant keys to what a bucket name suffix allows:
// lowercase alphanumerics and hyphens, starting with an alphanumeric.
var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}$`)

type tenantInput struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	AccessKey string `json:"accessKey"`
	SecretKey string `json:"secretKey"`
}

func (s *Server) listTenants(c *gin.Context) {
	tenants, err := s.store.List(c.Request.Context())
	if err != nil {
		s.log.Error("list tenants failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tenants"})
		return
	}
	c.JSON(http.StatusOK, tenants)
}

func (s *Server) createTenant(c *gin.Context) {
	var in tenantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !keyPattern.MatchString(in.Key) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant key"})
		return
	}

	tenant := &models.Tenant{
		Key:       in.Key,
		Name:      in.Name,
		AccessKey: in.AccessKey,
		SecretKey: in.SecretKey,
	}
	if err := s.store.Create(c.Request.Context(), tenant); err != nil {
		if isDuplicateKey(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "tenant already exists"})
			return
		}
		s.log.Error("create tenant failed", zap.String("tenant", in.Key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tenant"})
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

func (s *Server) getTenant(c *gin.Context) {
	tenant, ok := s.lookupTenant(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, tenant)
}

func (s *Server) deleteTenant(c *gin.Context) {
	key := c.Param("key")
	if err := s.store.Delete(c.Request.Context(), key); err != nil {
		if errors.Is(err, db.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return
		}
		s.log.Error("delete tenant failed", zap.String("tenant", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete tenant"})
		return
	}
	c.Status(http.StatusNoContent)
}

// lookupTenant resolves :key or writes the error response.
func (s *Server) lookupTenant(c *gin.Context) (*models.Tenant, bool) {
	key := c.Param("key")
	tenant, err := s.store.FindByKey(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, db.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "tenant not found"})
			return nil, false
		}
		s.log.Error("find tenant failed", zap.String("tenant", key), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tenant"})
		return nil, false
	}
	return tenant, true
}

// isDuplicateKey reports whether the error is a unique-constraint
// violation, matched on the driver message.
func isDuplicateKey(err error) bool {
	m := strings.ToLower(err.Error())
	return strings.Contains(m, "duplicate key") || strings.Contains(m, "unique constraint")
}
