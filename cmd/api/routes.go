package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})

	// Dashboard state
	app.router.GET("/dashboard", app.handleGetDashboard)

	// Inbound limit on endpoints that reach OpenWeatherMap. Excess requests get
	// 429 and are not queued; upstream quota is not tracked here.
	limited := app.router.Group("/", rateLimit(app.limiter))
	limited.GET("/weather", app.handleGetWeather)
	limited.POST("/dashboard/search", app.handleSearch)
}
