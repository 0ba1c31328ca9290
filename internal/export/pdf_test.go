package export

import (
	"bytes"
	"testing"

	"tripmap/internal/domain/models"
	"tripmap/internal/trip"
)

func TestBuildPDF(t *testing.T) {
	entries := exportFixture()
	data, filename, err := BuildPDF(entries, trip.ComputeStats(entries))
	if err != nil {
		t.Fatalf("BuildPDF: %v", err)
	}
	if filename != "Japan_Trip_Itinerary.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("output does not start with a PDF header")
	}
	if len(data) < 500 {
		t.Fatalf("document suspiciously small: %d bytes", len(data))
	}
}

func TestBuildPDFEmptyCollection(t *testing.T) {
	data, _, err := BuildPDF(nil, models.Stats{TotalDays: 28})
	if err != nil {
		t.Fatalf("BuildPDF on empty collection: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatal("empty collection should still yield a valid document")
	}
}
