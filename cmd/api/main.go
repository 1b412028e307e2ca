package main

import (
	_ "goplan-erp/docs"
	"goplan-erp/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           GoPlan ERP API
// @version         1.0
// @description     Production scheduling and sales quotations for garment manufacturers, backed by PostgreSQL.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey TenantID
// @in header
// @name X-Tenant-ID
// @description Tenant identifier forwarded by the gateway.

func main() {
	routes.Run()
}
