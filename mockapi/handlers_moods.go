package mockapi

import (
	"net/http"
	"slices"
	"time"

	"clementus360/ai-helper-client/types"

	"github.com/go-chi/chi/v5"
)

// GetMoodsHandler lists a user's entries, optionally limited by the
// startDate and endDate query parameters.
func (s *Server) GetMoodsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	q := r.URL.Query()
	start, end := q.Get("startDate"), q.Get("endDate")

	s.mu.Lock()
	defer s.mu.Unlock()
	entries := []types.MoodEntry{}
	for _, e := range s.moods {
		if e.UserID == uid && inRange(e.Date, start, end) {
			entries = append(entries, e)
		}
	}
	slices.SortStableFunc(entries, func(a, b types.MoodEntry) int {
		switch {
		case a.Date < b.Date:
			return -1
		case a.Date > b.Date:
			return 1
		}
		return 0
	})
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) GetMoodHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.moodIndex(func(e types.MoodEntry) bool { return e.UserID == uid && e.ID == id })
	if i < 0 {
		writeError(w, "Mood entry not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.moods[i])
}

func (s *Server) GetMoodByDateHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	date := chi.URLParam(r, "date")
	if _, err := time.Parse(types.DateLayout, date); err != nil {
		writeError(w, "Invalid date", http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.moodIndex(func(e types.MoodEntry) bool { return e.UserID == uid && e.Date == date })
	if i < 0 {
		writeError(w, "No mood entry for date", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.moods[i])
}

func (s *Server) CreateMoodHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	var req types.MoodEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.Mood.Valid() {
		writeError(w, "Invalid mood", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		req.Date = s.today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.moodIndex(func(e types.MoodEntry) bool { return e.UserID == uid && e.Date == req.Date }) >= 0 {
		writeError(w, "Mood already recorded for date", http.StatusConflict)
		return
	}
	entry := types.MoodEntry{
		ID:        s.id(),
		UserID:    uid,
		Date:      req.Date,
		Mood:      req.Mood,
		Notes:     req.Notes,
		CreatedAt: s.stamp(),
	}
	s.moods = append(s.moods, entry)
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) UpdateMoodHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.MoodEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !req.Mood.Valid() {
		writeError(w, "Invalid mood", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.moodIndex(func(e types.MoodEntry) bool { return e.UserID == uid && e.ID == id })
	if i < 0 {
		writeError(w, "Mood entry not found", http.StatusNotFound)
		return
	}
	e := &s.moods[i]
	if req.Date != "" {
		e.Date = req.Date
	}
	e.Mood = req.Mood
	e.Notes = req.Notes
	writeJSON(w, http.StatusOK, *e)
}

func (s *Server) DeleteMoodHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.moodIndex(func(e types.MoodEntry) bool { return e.UserID == uid && e.ID == id })
	if i < 0 {
		writeError(w, "Mood entry not found", http.StatusNotFound)
		return
	}
	s.moods = slices.Delete(s.moods, i, i+1)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) moodIndex(match func(types.MoodEntry) bool) int {
	return slices.IndexFunc(s.moods, match)
}

func (s *Server) SeedMood(e types.MoodEntry) types.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.reserve(e.ID)
	s.moods = append(s.moods, e)
	return e
}
