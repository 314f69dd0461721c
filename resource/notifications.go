package resource

import (
	"context"
	"slices"
	"sync"

	"clementus360/ai-helper-client/types"
)

type SettingsEndpoint interface {
	Settings(ctx context.Context) (types.NotificationSettings, error)
	UpdateSettings(ctx context.Context, req types.UpdateNotificationSettingsRequest) (types.NotificationSettings, error)
}

// NotificationSettings is the singleton settings record, held under the
// same pessimistic rule as the collections.
type NotificationSettings struct {
	ep    SettingsEndpoint
	guard *Guard

	mu      sync.RWMutex
	current *types.NotificationSettings
}

func NewNotificationSettings(ep SettingsEndpoint) *NotificationSettings {
	return &NotificationSettings{ep: ep, guard: NewGuard()}
}

func (n *NotificationSettings) Load(ctx context.Context) (types.NotificationSettings, error) {
	settings, err := n.ep.Settings(ctx)
	if err != nil {
		return types.NotificationSettings{}, types.Wrap(types.ErrFetch, "notification settings load", err)
	}
	n.mu.Lock()
	n.current = &settings
	n.mu.Unlock()
	return settings, nil
}

func (n *NotificationSettings) Update(ctx context.Context, req types.UpdateNotificationSettingsRequest) (types.NotificationSettings, error) {
	release, err := n.guard.AcquireCollection()
	if err != nil {
		return types.NotificationSettings{}, types.Wrap(types.ErrMutation, "notification settings update", err)
	}
	defer release()

	settings, err := n.ep.UpdateSettings(ctx, req)
	if err != nil {
		return types.NotificationSettings{}, types.Wrap(types.ErrMutation, "notification settings update", err)
	}
	n.mu.Lock()
	n.current = &settings
	n.mu.Unlock()
	return settings, nil
}

func (n *NotificationSettings) Current() (types.NotificationSettings, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.current == nil {
		return types.NotificationSettings{}, false
	}
	return *n.current, true
}

func (n *NotificationSettings) Reset() {
	n.mu.Lock()
	n.current = nil
	n.mu.Unlock()
}

type InboxEndpoint interface {
	Page(ctx context.Context, page, size int) (types.NotificationPage, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
	ClearAll(ctx context.Context) error
}

// Notifications is one loaded page of the inbox.
type Notifications struct {
	ep    InboxEndpoint
	guard *Guard

	mu    sync.RWMutex
	items []types.Notification
	total int
}

func NewNotifications(ep InboxEndpoint) *Notifications {
	return &Notifications{ep: ep, guard: NewGuard(), items: []types.Notification{}}
}

func (n *Notifications) LoadPage(ctx context.Context, page, size int) error {
	p, err := n.ep.Page(ctx, page, size)
	if err != nil {
		return types.Wrap(types.ErrFetch, "notifications load", err)
	}
	if p.Content == nil {
		p.Content = []types.Notification{}
	}
	n.mu.Lock()
	n.items = p.Content
	n.total = p.TotalElements
	n.mu.Unlock()
	return nil
}

func (n *Notifications) MarkRead(ctx context.Context, id int64) error {
	release, err := n.guard.Acquire(id)
	if err != nil {
		return types.Wrap(types.ErrMutation, "notifications mark read", err)
	}
	defer release()

	if err := n.ep.MarkRead(ctx, id); err != nil {
		return types.Wrap(types.ErrMutation, "notifications mark read", err)
	}
	n.mu.Lock()
	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].IsRead = true
		}
	}
	n.mu.Unlock()
	return nil
}

func (n *Notifications) MarkAllRead(ctx context.Context) error {
	release, err := n.guard.AcquireCollection()
	if err != nil {
		return types.Wrap(types.ErrMutation, "notifications mark all read", err)
	}
	defer release()

	if err := n.ep.MarkAllRead(ctx); err != nil {
		return types.Wrap(types.ErrMutation, "notifications mark all read", err)
	}
	n.mu.Lock()
	for i := range n.items {
		n.items[i].IsRead = true
	}
	n.mu.Unlock()
	return nil
}

func (n *Notifications) Delete(ctx context.Context, id int64) error {
	release, err := n.guard.Acquire(id)
	if err != nil {
		return types.Wrap(types.ErrMutation, "notifications delete", err)
	}
	defer release()

	if err := n.ep.Delete(ctx, id); err != nil {
		return types.Wrap(types.ErrMutation, "notifications delete", err)
	}
	n.mu.Lock()
	before := len(n.items)
	n.items = slices.DeleteFunc(n.items, func(it types.Notification) bool { return it.ID == id })
	if len(n.items) < before && n.total > 0 {
		n.total--
	}
	n.mu.Unlock()
	return nil
}

func (n *Notifications) ClearAll(ctx context.Context) error {
	release, err := n.guard.AcquireCollection()
	if err != nil {
		return types.Wrap(types.ErrMutation, "notifications clear", err)
	}
	defer release()

	if err := n.ep.ClearAll(ctx); err != nil {
		return types.Wrap(types.ErrMutation, "notifications clear", err)
	}
	n.mu.Lock()
	n.items = []types.Notification{}
	n.total = 0
	n.mu.Unlock()
	return nil
}

func (n *Notifications) Reset() {
	n.mu.Lock()
	n.items = []types.Notification{}
	n.total = 0
	n.mu.Unlock()
}

func (n *Notifications) Items() []types.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return slices.Clone(n.items)
}

// Total is the server-side count across all pages.
func (n *Notifications) Total() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.total
}

func (n *Notifications) Unread() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	c := 0
	for _, it := range n.items {
		if !it.IsRead {
			c++
		}
	}
	return c
}
