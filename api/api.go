// Package api maps each backend resource onto typed calls. It holds no state;
// collections live in package resource.
package api

import (
	"context"
	"fmt"
	"net/url"
)

// Requester is the subset of *client.Client the endpoints need.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

// UserID resolves the account the user-scoped paths are built for. It is
// called per request so a new login is picked up immediately.
type UserID func() int64

func userPath(uid UserID, format string, args ...any) string {
	return fmt.Sprintf("/users/%d", uid()) + fmt.Sprintf(format, args...)
}
