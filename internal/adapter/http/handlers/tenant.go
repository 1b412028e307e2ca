package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// TenantHeader carries the caller's tenant. Verification happens upstream
	// at the gateway; this service only scopes queries by the value.
	TenantHeader = "X-Tenant-ID"

	// defaultTenantID serves single-tenant deployments that run without a
	// gateway in front.
	defaultTenantID = "550e8400-e29b-41d4-a716-446655440000"
)

func tenantID(c *gin.Context) string {
	if v := strings.TrimSpace(c.GetHeader(TenantHeader)); v != "" {
		return v
	}
	return defaultTenantID
}
