package api

import (
	"context"
	"fmt"

	"clementus360/ai-helper-client/types"
)

type Journal struct {
	r Requester
}

func NewJournal(r Requester) *Journal {
	return &Journal{r: r}
}

func (j *Journal) List(ctx context.Context) ([]types.JournalEntry, error) {
	var entries []types.JournalEntry
	err := j.r.Get(ctx, "/journal", nil, &entries)
	return entries, err
}

func (j *Journal) Get(ctx context.Context, id int64) (types.JournalEntry, error) {
	var entry types.JournalEntry
	err := j.r.Get(ctx, fmt.Sprintf("/journal/%d", id), nil, &entry)
	return entry, err
}

func (j *Journal) Create(ctx context.Context, req types.JournalEntryRequest) (types.JournalEntry, error) {
	var entry types.JournalEntry
	err := j.r.Post(ctx, "/journal", req, &entry)
	return entry, err
}

func (j *Journal) Update(ctx context.Context, id int64, req types.JournalEntryRequest) (types.JournalEntry, error) {
	var entry types.JournalEntry
	err := j.r.Put(ctx, fmt.Sprintf("/journal/%d", id), req, &entry)
	return entry, err
}

func (j *Journal) Delete(ctx context.Context, id int64) error {
	return j.r.Delete(ctx, fmt.Sprintf("/journal/%d", id))
}
