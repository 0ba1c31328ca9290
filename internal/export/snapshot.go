package export

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Defaults for the print-view capture. The scale of 2 matches the quality
// the in-browser export used.
const (
	SnapshotWidth      = 900
	SnapshotHeight     = 1200
	SnapshotScale      = 2.0
	SnapshotTimeoutSec = 30
)

// SnapshotFilename is the fixed download name for the PNG export.
const SnapshotFilename = "Japan_Trip_Daily_View.png"

// SnapshotOptions parameterizes a headless-Chromium capture of the print view.
type SnapshotOptions struct {
	// URL of the page to capture, e.g. "http://127.0.0.1:8080/print".
	URL string

	// Viewport in CSS pixels; the device scale factor doubles the output
	// resolution. Zero values take the defaults.
	Width  int
	Height int
	Scale  float64

	// Timeout bounds the whole capture. Zero takes the default.
	Timeout time.Duration
}

// CaptureSnapshot navigates a headless Chromium to opts.URL and returns a
// full-page PNG. The print view has no scroll containers, so a full
// screenshot captures the entire itinerary regardless of viewport height.
// Any failure leaves no state behind beyond the cancelled browser context.
func CaptureSnapshot(parentCtx context.Context, opts SnapshotOptions) ([]byte, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("snapshot: URL is required")
	}
	if opts.Width <= 0 {
		opts.Width = SnapshotWidth
	}
	if opts.Height <= 0 {
		opts.Height = SnapshotHeight
	}
	if opts.Scale <= 0 {
		opts.Scale = SnapshotScale
	}
	if opts.Timeout <= 0 {
		opts.Timeout = SnapshotTimeoutSec * time.Second
	}

	ctx, cancel := chromedp.NewContext(parentCtx)
	defer cancel()

	ctx, timeoutCancel := context.WithTimeout(ctx, opts.Timeout)
	defer timeoutCancel()

	var png []byte
	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(opts.Width), int64(opts.Height), chromedp.EmulateScale(opts.Scale)),
		chromedp.Navigate(opts.URL),
		chromedp.WaitVisible(`#itinerary-list-view`, chromedp.ByID),
		// Let the final paint settle before capturing.
		chromedp.Sleep(300 * time.Millisecond),
		chromedp.FullScreenshot(&png, 100),
	}

	if err := chromedp.Run(ctx, tasks); err != nil {
		return nil, fmt.Errorf("snapshot: chromedp run failed: %w", err)
	}
	return png, nil
}
