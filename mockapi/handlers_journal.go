package mockapi

import (
	"net/http"
	"slices"
	"strings"

	"clementus360/ai-helper-client/types"
)

func (s *Server) GetJournalHandler(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, nonNil(s.journal[userID(r)]))
}

func (s *Server) GetJournalEntryHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	i := s.journalIndex(owner, id)
	if i < 0 {
		writeError(w, "Entry not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.journal[owner][i])
}

func (s *Server) CreateJournalHandler(w http.ResponseWriter, r *http.Request) {
	var req types.JournalEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Content) == "" {
		writeError(w, "Missing title or content", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	now := s.stamp()
	entry := types.JournalEntry{
		ID:        s.id(),
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.journal[owner] = append(s.journal[owner], entry)
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) UpdateJournalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.JournalEntryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	i := s.journalIndex(owner, id)
	if i < 0 {
		writeError(w, "Entry not found", http.StatusNotFound)
		return
	}
	e := &s.journal[owner][i]
	e.Title = req.Title
	e.Content = req.Content
	e.Mood = req.Mood
	e.UpdatedAt = s.stamp()
	writeJSON(w, http.StatusOK, *e)
}

func (s *Server) DeleteJournalHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	owner := userID(r)
	i := s.journalIndex(owner, id)
	if i < 0 {
		writeError(w, "Entry not found", http.StatusNotFound)
		return
	}
	s.journal[owner] = slices.Delete(s.journal[owner], i, i+1)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) journalIndex(owner, id int64) int {
	return slices.IndexFunc(s.journal[owner], func(e types.JournalEntry) bool { return e.ID == id })
}
