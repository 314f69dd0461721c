package mockapi

import (
	"net/http"
	"regexp"
	"slices"
	"strconv"

	"clementus360/ai-helper-client/types"
)

var reminderTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// settingsFor returns the user's settings, creating the defaults on first
// access. Callers hold s.mu.
func (s *Server) settingsFor(uid int64) *types.NotificationSettings {
	if st, ok := s.settings[uid]; ok {
		return st
	}
	now := s.stamp()
	st := &types.NotificationSettings{
		ID:                    s.id(),
		UserID:                uid,
		EnableDailyReminders:  true,
		ReminderTime:          "09:00",
		EnableWeeklyReport:    true,
		WeeklyReportDay:       types.WeekDaySunday,
		EnableMoodReminders:   true,
		MoodReminderFrequency: types.MoodReminderDaily,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
	s.settings[uid] = st
	return st
}

func (s *Server) GetNotificationSettingsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, http.StatusOK, *s.settingsFor(uid))
}

func (s *Server) UpdateNotificationSettingsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	var req types.UpdateNotificationSettingsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ReminderTime != nil && !reminderTimePattern.MatchString(*req.ReminderTime) {
		writeError(w, "reminderTime must be HH:MM", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.settingsFor(uid)
	if req.EnableDailyReminders != nil {
		st.EnableDailyReminders = *req.EnableDailyReminders
	}
	if req.ReminderTime != nil {
		st.ReminderTime = *req.ReminderTime
	}
	if req.EnableWeeklyReport != nil {
		st.EnableWeeklyReport = *req.EnableWeeklyReport
	}
	if req.WeeklyReportDay != nil {
		st.WeeklyReportDay = *req.WeeklyReportDay
	}
	if req.EnableMoodReminders != nil {
		st.EnableMoodReminders = *req.EnableMoodReminders
	}
	if req.MoodReminderFrequency != nil {
		st.MoodReminderFrequency = *req.MoodReminderFrequency
	}
	st.UpdatedAt = s.stamp()
	writeJSON(w, http.StatusOK, *st)
}

// GetNotificationsHandler pages the inbox, newest first.
func (s *Server) GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size <= 0 {
		size = 10
	}
	if page < 0 {
		page = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all := slices.Clone(s.notifications[uid])
	slices.Reverse(all)
	from := min(page*size, len(all))
	to := min(from+size, len(all))
	writeJSON(w, http.StatusOK, types.NotificationPage{
		Content:       nonNil(all[from:to]),
		TotalElements: len(all),
	})
}

func (s *Server) MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
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
	items := s.notifications[uid]
	i := slices.IndexFunc(items, func(n types.Notification) bool { return n.ID == id })
	if i < 0 {
		writeError(w, "Notification not found", http.StatusNotFound)
		return
	}
	items[i].IsRead = true
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) MarkAllNotificationsReadHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications[uid] {
		s.notifications[uid][i].IsRead = true
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) DeleteNotificationHandler(w http.ResponseWriter, r *http.Request) {
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
	items := s.notifications[uid]
	i := slices.IndexFunc(items, func(n types.Notification) bool { return n.ID == id })
	if i < 0 {
		writeError(w, "Notification not found", http.StatusNotFound)
		return
	}
	s.notifications[uid] = slices.Delete(items, i, i+1)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ClearNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := pathID(w, r, "uid")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.notifications, uid)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) SeedNotification(uid int64, n types.Notification) types.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.reserve(n.ID)
	if n.CreatedAt.IsZero() {
		n.CreatedAt = s.stamp()
	}
	s.notifications[uid] = append(s.notifications[uid], n)
	return n
}
