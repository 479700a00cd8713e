package middleware

import (
	"strings"

	"assessment_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	tenantContextKey = "tenantId"
	tenantHeader     = "x-tenant-id"
)

// TenantContext normalizes the tenant scope for all multi-tenant routes:
// path parameter first, x-tenant-id header as fallback. Requests without a
// tenant are rejected before any query can run, so no predicate is ever
// built without a tenant id.
func TenantContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.Param("tenantId"))
		if tenantID == "" {
			tenantID = strings.TrimSpace(c.GetHeader(tenantHeader))
		}

		if tenantID == "" {
			util.Fail(c, util.NewMissingTenant("Tenant id must be provided as path parameter or x-tenant-id header"))
			c.Abort()
			return
		}

		c.Set(tenantContextKey, tenantID)
		c.Next()
	}
}

// TenantFromContext returns the tenant id attached by TenantContext, or ""
// when the middleware has not run.
func TenantFromContext(c *gin.Context) string {
	v, ok := c.Get(tenantContextKey)
	if !ok {
		return ""
	}
	tenantID, _ := v.(string)
	return tenantID
}
