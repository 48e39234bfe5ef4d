package main

import (
	"errors"
	"net/http"

	"clima-ja/internal/dashboard"

	"github.com/gin-gonic/gin"
)

const (
	weatherSourceHeader = "X-Weather-Source"
	sourceLive          = "live"
	sourceFallback      = "fallback"
)

// GetWeatherInput defines the query parameters for the weather endpoint
type GetWeatherInput struct {
	City string `form:"city" binding:"required"` // City name as typed by the user
}

// handleGetWeather godoc
// @Summary Get the weather dashboard for a city
// @Description Fetch current conditions and the 5 day forecast for a city and reshape them for display. Upstream failures are answered with fixed fallback data for the requested city, flagged by the X-Weather-Source header.
// @Tags weather
// @Produce json
// @Param city query string true "City name" example(São Paulo)
// @Success 200 {object} weather.DisplayModel
// @Header 200 {string} X-Weather-Source "live or fallback"
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input GetWeatherInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	city, err := dashboard.CleanCity(input.City)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	model, fromFallback := app.weatherService.GetDashboard(c.Request.Context(), city)

	c.Header(weatherSourceHeader, weatherSource(fromFallback))
	c.JSON(http.StatusOK, model)
}

// SearchRequest is the body of a dashboard search
type SearchRequest struct {
	City string `json:"city" form:"city" example:"Rio de Janeiro"`
}

// handleGetDashboard godoc
// @Summary Get the dashboard state
// @Description Active city, loading flag and the most recently committed weather model
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.Snapshot
// @Router /dashboard [get]
func (app *App) handleGetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, app.dashboard.Snapshot())
}

// handleSearch godoc
// @Summary Search a city
// @Description Load a new city into the dashboard. When several searches overlap only the most recent one updates the dashboard.
// @Tags dashboard
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body SearchRequest true "City to load"
// @Success 200 {object} dashboard.Snapshot
// @Header 200 {string} X-Weather-Source "live or fallback"
// @Failure 400 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /dashboard/search [post]
func (app *App) handleSearch(c *gin.Context) {
	var req SearchRequest

	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := app.dashboard.Load(c.Request.Context(), req.City)
	if err != nil {
		if errors.Is(err, dashboard.ErrEmptyCity) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		app.logger.Error("failed to load city", "city", req.City, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load city"})
		return
	}

	c.Header(weatherSourceHeader, weatherSource(result.FromFallback))
	c.JSON(http.StatusOK, app.dashboard.Snapshot())
}

func weatherSource(fromFallback bool) string {
	if fromFallback {
		return sourceFallback
	}
	return sourceLive
}
