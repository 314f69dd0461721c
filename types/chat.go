package types

type Sender string

const (
	SenderUser      Sender = "USER"
	SenderAssistant Sender = "ASSISTANT"
	// SenderSystem marks client-side notices in the transcript; never sent.
	SenderSystem Sender = "SYSTEM"
)

type Message struct {
	ID      int64     `json:"id"`
	Sender  Sender    `json:"sender"`
	Content string    `json:"content"`
	SentAt  Timestamp `json:"sentAt"`
	LocalID string    `json:"-"` // set on messages built by the client
}

type MessageRequest struct {
	Content string `json:"content"`
}

type Conversation struct {
	ID        int64     `json:"id"`
	StartedAt Timestamp `json:"startedAt"`
	Messages  []Message `json:"messages"`
}

// IsLocal reports whether the conversation exists only in memory.
func (c Conversation) IsLocal() bool { return c.ID == 0 }
