// Package server assembles the HTTP surface of the service.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "staffaudit/internal/docs" // Import swagger docs
	"staffaudit/internal/handlers"
	"staffaudit/internal/middleware"
	"staffaudit/internal/services"
)

// Deps are the services the router dispatches to.
type Deps struct {
	EmployeeService services.EmployeeServicer
	AuditService    services.AuditServicer
}

// NewRouter builds the Gin engine with middleware, docs, health and the
// employee routes under /api/v1.
func NewRouter(deps Deps) *gin.Engine {
	employeeHandler := handlers.NewEmployeeHandler(deps.EmployeeService, deps.AuditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	employees := v1.Group("/employees")
	employees.GET("/:id", employeeHandler.GetEmployee)
	employees.POST("", employeeHandler.CreateEmployee)
	employees.PUT("/:id", employeeHandler.UpdateEmployee)
	employees.DELETE("/:id", employeeHandler.DeleteEmployee)

	return router
}
