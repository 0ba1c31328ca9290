package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tripmap/internal/http/middleware"
	"tripmap/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/weather?lat=43.06&lon=141.35&date=2025-12-01
//
// Used by the editor's auto-fetch button. Failures come back as the "Error"
// display string with a 200, never as an HTTP error: weather is decoration,
// not data.
func (a *API) GetWeather(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(strings.TrimSpace(c.Query("lat")), 64)
	lon, err2 := strconv.ParseFloat(strings.TrimSpace(c.Query("lon")), 64)
	date := strings.TrimSpace(c.Query("date"))
	if err1 != nil || err2 != nil || date == "" {
		RespondError(c, http.StatusBadRequest, "lat, lon dan date wajib diisi", nil)
		return
	}

	result := a.Resolver.Resolve(c.Request.Context(), lat, lon, date)
	c.JSON(http.StatusOK, gin.H{"weather": result})
}

// GET /api/weather/sidebar
func (a *API) GetSidebarWeather(c *gin.Context) {
	svc := services.WeatherService{
		Store:     a.Store,
		Resolver:  a.Resolver,
		RequestID: middleware.GetRequestID(c),
	}
	c.JSON(http.StatusOK, gin.H{"weather": svc.SidebarWeather(c.Request.Context())})
}

// POST /api/weather/refresh
func (a *API) RefreshTodayWeather(c *gin.Context) {
	svc := services.WeatherService{
		Store:     a.Store,
		Resolver:  a.Resolver,
		RequestID: middleware.GetRequestID(c),
	}
	filled := svc.RefreshToday(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"filled": filled})
}
