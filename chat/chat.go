// Package chat drives one assistant conversation. When the backend refuses
// to create a conversation (403) the session falls back to a local,
// never-persisted conversation with id 0 and stays there for its lifetime.
package chat

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"clementus360/ai-helper-client/client"
	"clementus360/ai-helper-client/config"
	"clementus360/ai-helper-client/types"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Mode string

const (
	Remote   Mode = "REMOTE"
	Degraded Mode = "DEGRADED"
)

type State string

const (
	Uninitialized State = "UNINITIALIZED"
	Loading       State = "LOADING"
	Active        State = "ACTIVE"
	Failed        State = "FAILED"
)

var ErrNotReady = errors.New("conversation not initialized")

type Conversations interface {
	Create(ctx context.Context) (types.Conversation, error)
	Get(ctx context.Context, id int64) (types.Conversation, error)
	Send(ctx context.Context, id int64, content string) (types.Message, error)
}

// SessionState is the part of session.Store a conversation reads and writes.
type SessionState interface {
	ConversationID() int64
	SetConversationID(ctx context.Context, id int64) error
	IsFirstLogin() bool
	ConsumeFirstLogin(ctx context.Context) error
}

type Session struct {
	api   Conversations
	sess  SessionState
	delay time.Duration
	now   func() time.Time
	log   *logrus.Entry

	mu    sync.Mutex
	state State
	mode  Mode
	conv  types.Conversation
	// epoch changes on Reset; results of calls started before it are dropped.
	epoch uint64
}

type Option func(*Session)

// WithOfflineDelay sets how long the degraded reply takes.
func WithOfflineDelay(d time.Duration) Option {
	return func(s *Session) {
		if d >= 0 {
			s.delay = d
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(api Conversations, sess SessionState, opts ...Option) *Session {
	s := &Session{
		api:   api,
		sess:  sess,
		delay: 1500 * time.Millisecond,
		now:   time.Now,
		log:   config.Component("chat"),
		state: Uninitialized,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initialize resumes the persisted conversation or creates a new one. A 403
// on create switches to degraded mode and is not returned. Calling it on an
// active session is a no-op.
func (s *Session) Initialize(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case Active:
		s.mu.Unlock()
		return nil
	case Loading:
		s.mu.Unlock()
		return types.Wrap(types.ErrFetch, "conversation init", types.ErrBusy)
	}
	s.state = Loading
	epoch := s.epoch
	s.mu.Unlock()

	if id := s.sess.ConversationID(); id != 0 {
		conv, err := s.api.Get(ctx, id)
		if err == nil {
			s.activate(epoch, conv, Remote)
			return nil
		}
		s.log.WithField("conversation_id", id).Warn("Failed to resume conversation: ", err)
	}

	conv, err := s.api.Create(ctx)
	if err != nil {
		if client.IsForbidden(err) {
			s.log.Info("Conversation creation denied, continuing offline")
			s.activate(epoch, s.localConversation(ctx), Degraded)
			return nil
		}
		s.mu.Lock()
		if s.epoch == epoch {
			s.state = Failed
		}
		s.mu.Unlock()
		return types.Wrap(types.ErrFetch, "conversation create", err)
	}

	if !s.current(epoch) {
		return nil
	}
	if err := s.sess.SetConversationID(ctx, conv.ID); err != nil {
		s.log.Warn("Failed to persist conversation id: ", err)
	}
	if s.sess.IsFirstLogin() {
		conv = s.welcome(ctx, conv)
	}
	s.activate(epoch, conv, Remote)
	return nil
}

// welcome sends the onboarding message and returns the refreshed
// conversation. Failures keep the conversation as created.
func (s *Session) welcome(ctx context.Context, conv types.Conversation) types.Conversation {
	if _, err := s.api.Send(ctx, conv.ID, config.WelcomeMessage); err != nil {
		s.log.Warn("Failed to send welcome message: ", err)
		return conv
	}
	s.consumeFirstLogin(ctx)
	fresh, err := s.api.Get(ctx, conv.ID)
	if err != nil {
		s.log.Warn("Failed to refresh conversation after welcome: ", err)
		return conv
	}
	return fresh
}

func (s *Session) localConversation(ctx context.Context) types.Conversation {
	conv := types.Conversation{
		StartedAt: types.NewTimestamp(s.now()),
		Messages:  []types.Message{},
	}
	if s.sess.IsFirstLogin() {
		conv.Messages = append(conv.Messages, s.localMessage(types.SenderAssistant, config.WelcomeMessage))
		s.consumeFirstLogin(ctx)
	}
	return conv
}

func (s *Session) consumeFirstLogin(ctx context.Context) {
	if err := s.sess.ConsumeFirstLogin(ctx); err != nil {
		s.log.Warn("Failed to clear first-login flag: ", err)
	}
}

func (s *Session) activate(epoch uint64, conv types.Conversation, mode Mode) {
	if conv.Messages == nil {
		conv.Messages = []types.Message{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return
	}
	s.conv = conv
	s.mode = mode
	s.state = Active
}

func (s *Session) current(epoch uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.epoch == epoch
}

// Reset drops the conversation so the next Initialize starts over for
// whoever is logged in then.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.epoch++
	s.state = Uninitialized
	s.mode = ""
	s.conv = types.Conversation{}
}

func (s *Session) localMessage(sender types.Sender, content string) types.Message {
	return types.Message{
		Sender:  sender,
		Content: content,
		SentAt:  types.NewTimestamp(s.now()),
		LocalID: uuid.NewString(),
	}
}

func (s *Session) appendLocal(epoch uint64, sender types.Sender, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch == epoch {
		s.conv.Messages = append(s.conv.Messages, s.localMessage(sender, content))
	}
}

// SendMessage shows the user message immediately. In degraded mode the
// offline reply follows after the configured delay without any network
// call. Otherwise the message is posted and the conversation re-fetched for
// the assistant's reply; a failure adds a system notice to the transcript
// and is returned.
func (s *Session) SendMessage(ctx context.Context, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	s.mu.Lock()
	if s.state != Active {
		s.mu.Unlock()
		return types.Wrap(types.ErrMutation, "chat send", ErrNotReady)
	}
	s.conv.Messages = append(s.conv.Messages, s.localMessage(types.SenderUser, content))
	mode, id, epoch := s.mode, s.conv.ID, s.epoch
	s.mu.Unlock()

	if mode == Degraded {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
		s.appendLocal(epoch, types.SenderAssistant, config.OfflineReply)
		return nil
	}

	if _, err := s.api.Send(ctx, id, content); err != nil {
		s.appendLocal(epoch, types.SenderSystem, config.SendFailedText)
		return types.Wrap(types.ErrMutation, "chat send", err)
	}
	conv, err := s.api.Get(ctx, id)
	if err != nil {
		s.appendLocal(epoch, types.SenderSystem, config.SendFailedText)
		return types.Wrap(types.ErrFetch, "chat refresh", err)
	}
	if conv.Messages == nil {
		conv.Messages = []types.Message{}
	}
	s.mu.Lock()
	if s.epoch == epoch {
		s.conv = conv
	}
	s.mu.Unlock()
	return nil
}

// Transcript returns a copy of the messages in send order.
func (s *Session) Transcript() []types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.conv.Messages)
}

func (s *Session) ID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conv.ID
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
