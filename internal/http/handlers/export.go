package handlers

import (
	"fmt"
	"net/http"

	"tripmap/internal/export"
	"tripmap/internal/trip"

	"github.com/gin-gonic/gin"
)

// GET /api/export/text
func (a *API) ExportText(c *gin.Context) {
	entries := a.Store.List()
	doc := export.BuildText(entries, trip.ComputeStats(entries))

	a.Metrics.ObserveExport("text")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.TextFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(doc))
}

// GET /api/export/pdf
func (a *API) ExportPDF(c *gin.Context) {
	entries := a.Store.List()
	pdfBytes, filename, err := export.BuildPDF(entries, trip.ComputeStats(entries))
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat PDF itinerary", err)
		return
	}

	a.Metrics.ObserveExport("pdf")
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// GET /api/export/ics
func (a *API) ExportICS(c *gin.Context) {
	doc := export.BuildICS(a.Store.List())

	a.Metrics.ObserveExport("ics")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.ICSFilename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(doc))
}

// GET /api/export/image
//
// Renders the server's own /print view through headless Chromium at 2x. A
// capture failure is reported to the caller and changes no state.
func (a *API) ExportImage(c *gin.Context) {
	png, err := export.CaptureSnapshot(c.Request.Context(), export.SnapshotOptions{
		URL: a.Cfg.SnapshotBaseURL + "/print",
	})
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "gagal membuat snapshot PNG", err)
		return
	}

	a.Metrics.ObserveExport("image")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, export.SnapshotFilename))
	c.Data(http.StatusOK, "image/png", png)
}

// GET /print — server-rendered day-by-day view, also the snapshot source.
func (a *API) PrintView(c *gin.Context) {
	entries := a.Store.List()
	days, err := trip.Expand(entries)
	if err != nil {
		days = []trip.Day{}
	}
	c.HTML(http.StatusOK, "itinerary.html", gin.H{
		"Days":  days,
		"Stats": trip.ComputeStats(entries),
		"Theme": a.Cfg.Theme,
	})
}
