package trip

import (
	"strings"
	"sync"
	"time"

	"tripmap/internal/domain"
	"tripmap/internal/domain/models"
	"tripmap/internal/utils"
)

// Store holds the ordered entry collection in memory. All reads return deep
// copies; the slice itself is only mutated under the lock.
type Store struct {
	mu      sync.RWMutex
	entries []models.TripEntry
	lastID  int64
}

func NewStore(seed []models.TripEntry) *Store {
	s := &Store{entries: make([]models.TripEntry, 0, len(seed))}
	for _, e := range seed {
		s.entries = append(s.entries, e.Clone())
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	return s
}

// List returns the entries in collection order.
func (s *Store) List() []models.TripEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TripEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.Clone())
	}
	return out
}

func (s *Store) Get(id int64) (models.TripEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e.Clone(), nil
		}
	}
	return models.TripEntry{}, domain.NotFoundError{Resource: "trip entry"}
}

// Create appends a new entry. A fresh identifier is assigned when the caller
// supplies none, and coords default to the fallback location when absent.
func (s *Store) Create(e models.TripEntry) (models.TripEntry, error) {
	if err := validateEntry(e); err != nil {
		return models.TripEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if e.ID == 0 {
		e.ID = s.nextID()
	} else {
		for _, existing := range s.entries {
			if existing.ID == e.ID {
				return models.TripEntry{}, domain.ConflictError{Resource: "trip entry", Msg: "id already in use"}
			}
		}
		if e.ID > s.lastID {
			s.lastID = e.ID
		}
	}
	if e.Coords == ([2]float64{}) {
		e.Coords = DefaultCoords
	}

	s.entries = append(s.entries, e.Clone())
	return e, nil
}

// Update replaces the entry with a matching identifier in place, preserving
// collection order.
func (s *Store) Update(id int64, e models.TripEntry) (models.TripEntry, error) {
	if err := validateEntry(e); err != nil {
		return models.TripEntry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.entries {
		if existing.ID == id {
			e.ID = id
			s.entries[i] = e.Clone()
			return e, nil
		}
	}
	return models.TripEntry{}, domain.NotFoundError{Resource: "trip entry"}
}

// Save keeps the editor's legacy semantics: a present id updates, an absent
// id creates. Prefer the explicit Create/Update operations for new callers.
func (s *Store) Save(e models.TripEntry) (models.TripEntry, error) {
	if e.ID != 0 {
		if _, err := s.Get(e.ID); err == nil {
			return s.Update(e.ID, e)
		}
	}
	e.ID = 0
	return s.Create(e)
}

func (s *Store) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return domain.NotFoundError{Resource: "trip entry"}
}

// MoveActivity removes the note at activityIndex from dailyItinerary[fromDate]
// and appends it to dailyItinerary[toDate], creating the key if absent. The
// index is re-validated against the current note text before removal: if the
// list changed since the caller read it, the move is dropped silently rather
// than relocating the wrong note.
func (s *Store) MoveActivity(id int64, fromDate, toDate string, activityIndex int, activityText string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		e := &s.entries[i]
		notes, ok := e.DailyItinerary[fromDate]
		if !ok || activityIndex < 0 || activityIndex >= len(notes) {
			return nil
		}
		if notes[activityIndex] != activityText {
			return nil
		}
		e.DailyItinerary[fromDate] = append(notes[:activityIndex:activityIndex], notes[activityIndex+1:]...)
		e.DailyItinerary[toDate] = append(e.DailyItinerary[toDate], activityText)
		return nil
	}
	return domain.NotFoundError{Resource: "trip entry"}
}

// SetDailyWeather caches a resolved weather string for one date. The cache is
// fill-if-absent: once a value exists it is never overwritten, which also
// keeps a slow lookup from clobbering a value committed after it started.
// Returns whether the value was stored.
func (s *Store) SetDailyWeather(id int64, date, weather string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		e := &s.entries[i]
		if e.DailyWeather == nil {
			e.DailyWeather = map[string]string{}
		}
		if _, exists := e.DailyWeather[date]; exists {
			return false
		}
		e.DailyWeather[date] = weather
		return true
	}
	return false
}

func (s *Store) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func validateEntry(e models.TripEntry) error {
	if strings.TrimSpace(e.Name) == "" {
		return domain.ValidationError{Field: "name", Msg: "wajib diisi"}
	}
	start, err := utils.ParseDate(e.StartDate)
	if err != nil {
		return domain.ValidationError{Field: "startDate", Msg: "format harus YYYY-MM-DD", Err: err}
	}
	end, err := utils.ParseDate(e.EndDate)
	if err != nil {
		return domain.ValidationError{Field: "endDate", Msg: "format harus YYYY-MM-DD", Err: err}
	}
	if end.Before(start) {
		return domain.ValidationError{Field: "endDate", Msg: "harus >= startDate"}
	}
	return nil
}
