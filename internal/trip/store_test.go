package trip

import (
	"testing"

	"tripmap/internal/domain"
	"tripmap/internal/domain/models"
)

func testStore() *Store {
	return NewStore([]models.TripEntry{
		{
			ID: 1, Name: "Tokyo (Start)", Type: models.TypeStay,
			StartDate: "2025-11-28", EndDate: "2025-11-29",
			DailyItinerary: map[string][]string{
				"2025-11-28": {"Arrive at Haneda", "Check in"},
			},
		},
		{
			ID: 2, Name: "Sapporo", Type: models.TypeStay,
			StartDate: "2025-11-29", EndDate: "2025-12-03",
		},
	})
}

func TestStoreCreateAssignsIDAndCoords(t *testing.T) {
	s := testStore()

	created, err := s.Create(models.TripEntry{
		Name: "Osaka", Type: models.TypeStay,
		StartDate: "2025-12-15", EndDate: "2025-12-18",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected a generated id")
	}
	if created.Coords != DefaultCoords {
		t.Fatalf("expected default coords, got %v", created.Coords)
	}

	got, err := s.Get(created.ID)
	if err != nil {
		t.Fatalf("Get after Create: %v", err)
	}
	if got.Name != "Osaka" {
		t.Fatalf("stored name mismatch: %q", got.Name)
	}
}

func TestStoreCreateGeneratedIDsUnique(t *testing.T) {
	s := testStore()
	seen := map[int64]bool{}
	for i := 0; i < 5; i++ {
		e, err := s.Create(models.TripEntry{Name: "X", StartDate: "2025-12-01", EndDate: "2025-12-01"})
		if err != nil {
			t.Fatalf("Create %d: %v", i, err)
		}
		if seen[e.ID] {
			t.Fatalf("duplicate generated id %d", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestStoreCreateDuplicateID(t *testing.T) {
	s := testStore()
	_, err := s.Create(models.TripEntry{ID: 1, Name: "Dup", StartDate: "2025-12-01", EndDate: "2025-12-01"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict on duplicate id, got %v", err)
	}
}

func TestStoreCreateValidation(t *testing.T) {
	s := testStore()
	cases := []models.TripEntry{
		{Name: "  ", StartDate: "2025-12-01", EndDate: "2025-12-01"},
		{Name: "X", StartDate: "01-12-2025", EndDate: "2025-12-01"},
		{Name: "X", StartDate: "2025-12-01", EndDate: "nope"},
		{Name: "X", StartDate: "2025-12-05", EndDate: "2025-12-01"},
	}
	for i, e := range cases {
		if _, err := s.Create(e); !domain.IsValidation(err) {
			t.Errorf("case %d: expected validation error, got %v", i, err)
		}
	}
}

func TestStoreUpdate(t *testing.T) {
	s := testStore()

	updated, err := s.Update(2, models.TripEntry{
		Name: "Sapporo (extended)", Type: models.TypeStay,
		StartDate: "2025-11-29", EndDate: "2025-12-04",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != 2 {
		t.Fatalf("update must preserve the id, got %d", updated.ID)
	}

	got, _ := s.Get(2)
	if got.Name != "Sapporo (extended)" || got.EndDate != "2025-12-04" {
		t.Fatalf("update not persisted: %+v", got)
	}

	// Collection order must not change.
	list := s.List()
	if list[0].ID != 1 || list[1].ID != 2 {
		t.Fatalf("order changed after update: %v, %v", list[0].ID, list[1].ID)
	}
}

func TestStoreUpdateUnknownID(t *testing.T) {
	s := testStore()
	_, err := s.Update(999, models.TripEntry{Name: "X", StartDate: "2025-12-01", EndDate: "2025-12-01"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStoreSaveLegacySemantics(t *testing.T) {
	s := testStore()

	// Present id: update in place.
	saved, err := s.Save(models.TripEntry{ID: 1, Name: "Tokyo (renamed)", StartDate: "2025-11-28", EndDate: "2025-11-29"})
	if err != nil {
		t.Fatalf("Save update: %v", err)
	}
	if saved.ID != 1 {
		t.Fatalf("expected id 1 kept, got %d", saved.ID)
	}
	if len(s.List()) != 2 {
		t.Fatal("save with known id must not grow the collection")
	}

	// Absent id: create.
	saved, err = s.Save(models.TripEntry{Name: "Nara", StartDate: "2025-12-10", EndDate: "2025-12-10"})
	if err != nil {
		t.Fatalf("Save create: %v", err)
	}
	if saved.ID == 0 {
		t.Fatal("expected a generated id on create-via-save")
	}
	if len(s.List()) != 3 {
		t.Fatal("save with no id must append")
	}
}

func TestStoreDelete(t *testing.T) {
	s := testStore()
	if err := s.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(1); !domain.IsNotFound(err) {
		t.Fatalf("expected entry gone, got %v", err)
	}
	if err := s.Delete(1); !domain.IsNotFound(err) {
		t.Fatalf("second delete should be not found, got %v", err)
	}
}

func TestStoreListReturnsCopies(t *testing.T) {
	s := testStore()
	list := s.List()
	list[0].Name = "mutated"
	list[0].DailyItinerary["2025-11-28"][0] = "mutated note"

	got, _ := s.Get(1)
	if got.Name == "mutated" {
		t.Fatal("List leaked a reference to the stored entry")
	}
	if got.DailyItinerary["2025-11-28"][0] == "mutated note" {
		t.Fatal("List leaked the dailyItinerary backing array")
	}
}

func TestStoreMoveActivity(t *testing.T) {
	s := testStore()

	err := s.MoveActivity(1, "2025-11-28", "2025-11-29", 0, "Arrive at Haneda")
	if err != nil {
		t.Fatalf("MoveActivity: %v", err)
	}

	got, _ := s.Get(1)
	from := got.DailyItinerary["2025-11-28"]
	to := got.DailyItinerary["2025-11-29"]
	if len(from) != 1 || from[0] != "Check in" {
		t.Fatalf("source list wrong after move: %v", from)
	}
	if len(to) != 1 || to[0] != "Arrive at Haneda" {
		t.Fatalf("target list wrong after move: %v", to)
	}
}

func TestStoreMoveActivityStaleIndex(t *testing.T) {
	s := testStore()

	// The caller thinks index 0 holds "Check in" but the list has changed.
	if err := s.MoveActivity(1, "2025-11-28", "2025-11-29", 0, "Check in"); err != nil {
		t.Fatalf("stale move should be a silent no-op, got %v", err)
	}

	got, _ := s.Get(1)
	if len(got.DailyItinerary["2025-11-28"]) != 2 {
		t.Fatal("stale move must not remove anything")
	}
	if _, ok := got.DailyItinerary["2025-11-29"]; ok {
		t.Fatal("stale move must not append anything")
	}
}

func TestStoreMoveActivityOutOfRange(t *testing.T) {
	s := testStore()
	if err := s.MoveActivity(1, "2025-11-28", "2025-11-29", 7, "whatever"); err != nil {
		t.Fatalf("out-of-range index should no-op, got %v", err)
	}
	if err := s.MoveActivity(1, "2099-01-01", "2025-11-29", 0, "whatever"); err != nil {
		t.Fatalf("missing source date should no-op, got %v", err)
	}
	if err := s.MoveActivity(404, "2025-11-28", "2025-11-29", 0, "Arrive at Haneda"); !domain.IsNotFound(err) {
		t.Fatalf("unknown entry should be not found, got %v", err)
	}
}

func TestStoreSetDailyWeatherFillIfAbsent(t *testing.T) {
	s := testStore()

	if !s.SetDailyWeather(2, "2025-11-29", "☀️ Clear sky 5°C / -1°C") {
		t.Fatal("first write should be stored")
	}
	if s.SetDailyWeather(2, "2025-11-29", "🌧️ Rain 4°C / 0°C") {
		t.Fatal("second write for the same date must be rejected")
	}

	got, _ := s.Get(2)
	if got.DailyWeather["2025-11-29"] != "☀️ Clear sky 5°C / -1°C" {
		t.Fatalf("cache overwritten: %q", got.DailyWeather["2025-11-29"])
	}

	if s.SetDailyWeather(404, "2025-11-29", "x") {
		t.Fatal("unknown entry must not store")
	}
}
