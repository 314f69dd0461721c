package api

import (
	"context"
	"net/url"
	"strconv"

	"clementus360/ai-helper-client/types"
)

type Notifications struct {
	r    Requester
	user UserID
}

func NewNotifications(r Requester, user UserID) *Notifications {
	return &Notifications{r: r, user: user}
}

func (n *Notifications) Settings(ctx context.Context) (types.NotificationSettings, error) {
	var settings types.NotificationSettings
	err := n.r.Get(ctx, userPath(n.user, "/notification-settings"), nil, &settings)
	return settings, err
}

func (n *Notifications) UpdateSettings(ctx context.Context, req types.UpdateNotificationSettingsRequest) (types.NotificationSettings, error) {
	var settings types.NotificationSettings
	err := n.r.Put(ctx, userPath(n.user, "/notification-settings"), req, &settings)
	return settings, err
}

// Page returns one zero-based page of the inbox.
func (n *Notifications) Page(ctx context.Context, page, size int) (types.NotificationPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	var p types.NotificationPage
	err := n.r.Get(ctx, userPath(n.user, "/notifications"), q, &p)
	return p, err
}

func (n *Notifications) MarkRead(ctx context.Context, id int64) error {
	return n.r.Put(ctx, userPath(n.user, "/notifications/%d/read", id), nil, nil)
}

func (n *Notifications) MarkAllRead(ctx context.Context) error {
	return n.r.Put(ctx, userPath(n.user, "/notifications/read-all"), nil, nil)
}

func (n *Notifications) Delete(ctx context.Context, id int64) error {
	return n.r.Delete(ctx, userPath(n.user, "/notifications/%d", id))
}

func (n *Notifications) ClearAll(ctx context.Context) error {
	return n.r.Delete(ctx, userPath(n.user, "/notifications/clear-all"))
}
