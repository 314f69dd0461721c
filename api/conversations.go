package api

import (
	"context"
	"fmt"

	"clementus360/ai-helper-client/types"
)

type Conversations struct {
	r Requester
}

func NewConversations(r Requester) *Conversations {
	return &Conversations{r: r}
}

// Create starts a conversation. The backend may answer 403 when the account
// has no assistant access.
func (c *Conversations) Create(ctx context.Context) (types.Conversation, error) {
	var conv types.Conversation
	err := c.r.Post(ctx, "/ai/conversations", nil, &conv)
	return conv, err
}

func (c *Conversations) Get(ctx context.Context, id int64) (types.Conversation, error) {
	var conv types.Conversation
	err := c.r.Get(ctx, fmt.Sprintf("/ai/conversations/%d", id), nil, &conv)
	return conv, err
}

// Send posts a user message. The reply is not returned; fetch the
// conversation again to read it.
func (c *Conversations) Send(ctx context.Context, id int64, content string) (types.Message, error) {
	var msg types.Message
	err := c.r.Post(ctx, fmt.Sprintf("/ai/conversations/%d/messages", id), types.MessageRequest{Content: content}, &msg)
	return msg, err
}
