package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"waterpolo-backend/internal/shared/middleware"
	"waterpolo-backend/internal/shared/response"
	"waterpolo-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}
}

// setupPublicRoutes wires the read-only endpoints the site renders from.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	seasons := v1.Group("/seasons")
	{
		seasons.GET("", c.SeasonHandler.List)
		seasons.GET("/current", c.SeasonHandler.GetCurrent)
		seasons.GET("/:id", c.SeasonHandler.GetByID)
	}

	roster := v1.Group("/roster")
	{
		roster.GET("", c.RosterHandler.ListBySeason)
		roster.GET("/:id", c.RosterHandler.GetByID)
	}

	v1.POST("/recruits", c.RecruitHandler.Submit)
}

// setupAdminRoutes wires the roster editor behind the auth and admin gates.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.POST("/roster", c.RosterHandler.Create)
		admin.PUT("/roster/:id", c.RosterHandler.Update)
		admin.DELETE("/roster/:id", c.RosterHandler.Delete)
		admin.GET("/roster/export", c.RosterHandler.Export)
	}
}

// healthCheckHandler reports database and storage reachability.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		overall := "UP"
		checks := gin.H{
			"database": "up",
			"storage":  "up",
		}

		if err := c.DB.HealthCheck(checkCtx); err != nil {
			checks["database"] = "down"
			status = http.StatusServiceUnavailable
			overall = "DEGRADED"
		}
		if err := c.Storage.HealthCheck(checkCtx); err != nil {
			checks["storage"] = "down"
			status = http.StatusServiceUnavailable
			overall = "DEGRADED"
		}

		response.Success(ctx, status, gin.H{
			"status": overall,
			"checks": checks,
		})
	}
}
