package main

// General API information for swag

// @title Clima Já API
// @version 1.0
// @description Single-city weather dashboard backed by OpenWeatherMap current conditions and 5 day forecast.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
// @schemes http
