package api

import (
	stdhttp "net/http"
	"time"

	"tripmap/internal/config"
	h "tripmap/internal/http/handlers"
	"tripmap/internal/http/middleware"
	"tripmap/internal/metrics"
	"tripmap/internal/trip"
	"tripmap/internal/weather"
	"tripmap/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the gin engine: middleware chain, the API surface, the
// print view and the metrics endpoint.
func NewRouter(cfg *config.Config, store *trip.Store, resolver *weather.Resolver, mcol *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	_ = r.SetTrustedProxies(nil)

	r.SetHTMLTemplate(web.Templates())

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	a := &h.API{Store: store, Resolver: resolver, Cfg: cfg, Metrics: mcol}

	r.GET("/print", a.PrintView)
	r.GET("/metrics", gin.WrapH(mcol.Handler()))

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", a.Health)
		apiGroup.GET("/routes", a.Routes)

		trips := apiGroup.Group("/trips")
		trips.GET("", a.GetTrips)
		trips.GET("/:id", a.GetTripByID)

		edit := trips.Group("")
		edit.Use(middleware.EditGuard(cfg.EditingEnabled))
		edit.POST("", a.CreateTrip)
		edit.PUT("/:id", a.UpdateTrip)
		edit.DELETE("/:id", a.DeleteTrip)
		edit.POST("/:id/move-activity", a.MoveActivity)

		apiGroup.GET("/days", a.GetDays)
		apiGroup.GET("/stats", a.GetStats)

		apiGroup.GET("/weather", a.GetWeather)
		apiGroup.GET("/weather/sidebar", a.GetSidebarWeather)
		apiGroup.POST("/weather/refresh", a.RefreshTodayWeather)

		exportGroup := apiGroup.Group("/export")
		exportGroup.GET("/text", a.ExportText)
		exportGroup.GET("/pdf", a.ExportPDF)
		exportGroup.GET("/ics", a.ExportICS)
		exportGroup.GET("/image", a.ExportImage)
	}

	h.SetRouter(r)
	return r
}
