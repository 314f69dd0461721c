package resource

import (
	"context"

	"clementus360/ai-helper-client/client"
	"clementus360/ai-helper-client/types"
)

type MoodEndpoint interface {
	Endpoint[types.MoodEntry, types.MoodEntryRequest]
	Range(ctx context.Context, start, end string) ([]types.MoodEntry, error)
	ByDate(ctx context.Context, date string) (types.MoodEntry, error)
}

type Moods struct {
	*Sync[types.MoodEntry, types.MoodEntryRequest]
	ep MoodEndpoint
}

func NewMoods(ep MoodEndpoint) *Moods {
	return &Moods{Sync: New("moods", ep), ep: ep}
}

// LoadRange replaces the collection with the entries between start and end.
func (m *Moods) LoadRange(ctx context.Context, start, end string) error {
	entries, err := m.ep.Range(ctx, start, end)
	if err != nil {
		m.log.Warn("Range load failed: ", err)
		return types.Wrap(types.ErrFetch, "moods load range", err)
	}
	m.set(entries)
	return nil
}

// ForDate returns nil without error when the day has no entry.
func (m *Moods) ForDate(ctx context.Context, date string) (*types.MoodEntry, error) {
	entry, err := m.ep.ByDate(ctx, date)
	if client.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, types.Wrap(types.ErrFetch, "moods for date", err)
	}
	return &entry, nil
}

// Summary aggregates the loaded entries dated within [start, end]. Empty
// bounds are open.
func (m *Moods) Summary(start, end string) types.MoodSummary {
	sum := types.MoodSummary{
		MoodCounts: make(map[types.MoodType]int),
		StartDate:  start,
		EndDate:    end,
	}
	total := 0
	for _, e := range m.Items() {
		if (start != "" && e.Date < start) || (end != "" && e.Date > end) {
			continue
		}
		if !e.Mood.Valid() {
			continue
		}
		sum.MoodCounts[e.Mood]++
		sum.TotalEntries++
		total += e.Mood.Value()
	}
	if sum.TotalEntries > 0 {
		sum.AverageMood = float64(total) / float64(sum.TotalEntries)
	}
	return sum
}

// Days counts the distinct dates that have an entry.
func (m *Moods) Days() int {
	seen := make(map[string]struct{})
	for _, e := range m.Items() {
		seen[e.Date] = struct{}{}
	}
	return len(seen)
}
