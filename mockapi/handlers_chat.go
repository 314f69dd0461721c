package mockapi

import (
	"net/http"
	"strings"

	"clementus360/ai-helper-client/types"
)

func (s *Server) CreateConversationHandler(w http.ResponseWriter, r *http.Request) {
	if s.opts.DenyConversations {
		writeError(w, "Assistant access denied", http.StatusForbidden)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := &conversation{
		owner: userID(r),
		conv:  types.Conversation{ID: s.id(), StartedAt: s.stamp(), Messages: []types.Message{}},
	}
	s.conversations[c.conv.ID] = c
	writeJSON(w, http.StatusCreated, c.conv)
}

func (s *Server) GetConversationHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[id]
	if !ok || c.owner != userID(r) {
		writeError(w, "Conversation not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, c.conv)
}

// SendMessageHandler stores the user message and the assistant's reply but
// answers with the user message only.
func (s *Server) SendMessageHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req types.MessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, "Missing content", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[id]
	if !ok || c.owner != userID(r) {
		writeError(w, "Conversation not found", http.StatusNotFound)
		return
	}
	msg := types.Message{ID: s.id(), Sender: types.SenderUser, Content: req.Content, SentAt: s.stamp()}
	reply := types.Message{
		ID:      s.id(),
		Sender:  types.SenderAssistant,
		Content: assistantReply(c.conv.Messages, req.Content),
		SentAt:  s.stamp(),
	}
	c.conv.Messages = append(c.conv.Messages, msg, reply)
	writeJSON(w, http.StatusCreated, msg)
}

// Conversation returns a stored conversation.
func (s *Server) Conversation(id int64) (types.Conversation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.conversations[id]
	if !ok {
		return types.Conversation{}, false
	}
	conv := c.conv
	conv.Messages = append([]types.Message(nil), c.conv.Messages...)
	return conv, true
}
