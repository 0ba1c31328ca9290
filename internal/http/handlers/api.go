package handlers

import (
	"sync"

	"tripmap/internal/config"
	"tripmap/internal/metrics"
	"tripmap/internal/trip"
	"tripmap/internal/weather"

	"github.com/gin-gonic/gin"
)

// API bundles the handler dependencies. Handlers are methods so the router
// can wire one value instead of package globals.
type API struct {
	Store    *trip.Store
	Resolver *weather.Resolver
	Cfg      *config.Config
	Metrics  *metrics.Collector
}

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (/api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}
