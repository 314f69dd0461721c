package api

import (
	"context"
	"net/url"

	"clementus360/ai-helper-client/types"
)

type Moods struct {
	r    Requester
	user UserID
}

func NewMoods(r Requester, user UserID) *Moods {
	return &Moods{r: r, user: user}
}

func (m *Moods) List(ctx context.Context) ([]types.MoodEntry, error) {
	var entries []types.MoodEntry
	err := m.r.Get(ctx, userPath(m.user, "/moods"), nil, &entries)
	return entries, err
}

// Range returns the entries between two YYYY-MM-DD dates, inclusive.
func (m *Moods) Range(ctx context.Context, start, end string) ([]types.MoodEntry, error) {
	q := url.Values{}
	q.Set("startDate", start)
	q.Set("endDate", end)
	var entries []types.MoodEntry
	err := m.r.Get(ctx, userPath(m.user, "/moods"), q, &entries)
	return entries, err
}

func (m *Moods) Get(ctx context.Context, id int64) (types.MoodEntry, error) {
	var entry types.MoodEntry
	err := m.r.Get(ctx, userPath(m.user, "/moods/%d", id), nil, &entry)
	return entry, err
}

// ByDate returns the entry of one day. The backend answers 404 when there is none.
func (m *Moods) ByDate(ctx context.Context, date string) (types.MoodEntry, error) {
	var entry types.MoodEntry
	err := m.r.Get(ctx, userPath(m.user, "/moods/date/%s", url.PathEscape(date)), nil, &entry)
	return entry, err
}

func (m *Moods) Create(ctx context.Context, req types.MoodEntryRequest) (types.MoodEntry, error) {
	var entry types.MoodEntry
	err := m.r.Post(ctx, userPath(m.user, "/moods"), req, &entry)
	return entry, err
}

func (m *Moods) Update(ctx context.Context, id int64, req types.MoodEntryRequest) (types.MoodEntry, error) {
	var entry types.MoodEntry
	err := m.r.Put(ctx, userPath(m.user, "/moods/%d", id), req, &entry)
	return entry, err
}

func (m *Moods) Delete(ctx context.Context, id int64) error {
	return m.r.Delete(ctx, userPath(m.user, "/moods/%d", id))
}
