package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse is the liveness answer of the Clima Já API
type PingResponse struct {
	Message     string `json:"message" example:"pong"`
	DefaultCity string `json:"default_city" example:"São Paulo"` // City shown when the dashboard opens
}

// handlePing godoc
// @Summary Liveness check
// @Description Report that the Clima Já API is up and which city the dashboard opens with. Never calls OpenWeatherMap.
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message:     "pong",
		DefaultCity: app.cfg.Weather.DefaultCity,
	})
}
