package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"tripmap/internal/domain/models"
	"tripmap/internal/http/middleware"
	"tripmap/internal/trip"
	"tripmap/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/trips?q=otaru&type=stay
func (a *API) GetTrips(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	typeFilter := strings.TrimSpace(c.DefaultQuery("type", "all"))

	entries := trip.Filter(a.Store.List(), q, typeFilter)
	a.Metrics.SetEntries(len(a.Store.List()))
	c.JSON(http.StatusOK, entries)
}

// GET /api/trips/:id
func (a *API) GetTripByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	entry, err := a.Store.Get(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// POST /api/trips
func (a *API) CreateTrip(c *gin.Context) {
	var payload models.TripEntry
	if !BindJSONOrError(c, &payload) {
		return
	}

	entry, err := a.Store.Create(payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "trips", "create", "id="+strconv.FormatInt(entry.ID, 10))
	a.Metrics.SetEntries(len(a.Store.List()))
	c.JSON(http.StatusCreated, entry)
}

// PUT /api/trips/:id
func (a *API) UpdateTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload models.TripEntry
	if !BindJSONOrError(c, &payload) {
		return
	}

	entry, err := a.Store.Update(id, payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "trips", "update", "id="+strconv.FormatInt(id, 10))
	c.JSON(http.StatusOK, entry)
}

// DELETE /api/trips/:id
func (a *API) DeleteTrip(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := a.Store.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "trips", "delete", "id="+strconv.FormatInt(id, 10))
	a.Metrics.SetEntries(len(a.Store.List()))
	c.JSON(http.StatusOK, gin.H{"message": "entry berhasil dihapus"})
}

type moveActivityPayload struct {
	FromDate      string `json:"fromDate" binding:"required"`
	ToDate        string `json:"toDate" binding:"required"`
	ActivityIndex int    `json:"activityIndex"`
	ActivityText  string `json:"activityText" binding:"required"`
}

// POST /api/trips/:id/move-activity
//
// A stale index (the note list changed between read and move) is a silent
// no-op by contract, so the response is 200 either way.
func (a *API) MoveActivity(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var payload moveActivityPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if err := a.Store.MoveActivity(id, payload.FromDate, payload.ToDate, payload.ActivityIndex, payload.ActivityText); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "aktivitas dipindahkan"})
}

// GET /api/stats
func (a *API) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, trip.ComputeStats(a.Store.List()))
}

// GET /api/days
func (a *API) GetDays(c *gin.Context) {
	entries := a.Store.List()
	if len(entries) == 0 {
		// Empty-state guard: expansion has no defined date bounds.
		c.JSON(http.StatusOK, gin.H{"days": []trip.Day{}, "message": "belum ada entry"})
		return
	}
	days, err := trip.Expand(entries)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal menyusun itinerary harian", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "id tidak valid", err)
		return 0, false
	}
	return id, true
}
