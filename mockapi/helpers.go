package mockapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/types"

	"github.com/go-chi/chi/v5"
)

type errorResponse struct {
	Success      bool   `json:"success"`
	ErrorMessage string `json:"error_message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, errorResponse{Success: false, ErrorMessage: message})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		config.Logger.Error("Failed to decode request JSON:", err)
		writeError(w, "Invalid JSON body", http.StatusBadRequest)
		return false
	}
	return true
}

// pathID parses a numeric URL parameter, answering 400 when it is not one.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, "Invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func userID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}

func (s *Server) stamp() types.Timestamp {
	return types.NewTimestamp(s.now().UTC())
}

func (s *Server) today() string {
	return s.now().Format(types.DateLayout)
}

// nonNil keeps empty collections encoding as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
