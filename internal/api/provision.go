package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/arencloud/hestia/internal/provisioner"
)

// provisionBucket creates and configures the tenant's bucket. Provider
// failures surface as 502 with the captured error message; the response
// still carries the bucket name when the bucket itself was created.
func (s *Server) provisionBucket(c *gin.Context) {
	tenant, ok := s.lookupTenant(c)
	if !ok {
		return
	}
	result := s.buckets.CreateTenantBucket(c.Request.Context(), tenant)
	if result.Failed() {
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  result.ErrorMessage(),
			"bucket": result.BucketName,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenant": tenant.Key, "bucket": result.BucketName})
}

// deprovisionBucket deletes the tenant's recorded bucket. A tenant with
// no bucket is a 409; the record keeps its bucket name on success.
func (s *Server) deprovisionBucket(c *gin.Context) {
	tenant, ok := s.lookupTenant(c)
	if !ok {
		return
	}
	result := s.buckets.DeleteTenantBucket(c.Request.Context(), tenant)
	if result.Failed() {
		if errors.Is(result.Err, provisioner.ErrNoBucket) {
			c.JSON(http.StatusConflict, gin.H{"error": result.ErrorMessage()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": result.ErrorMessage()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tenant": tenant.Key, "bucket": result.BucketName})
}
