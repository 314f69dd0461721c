package resource

import "clementus360/ai-helper-client/types"

type Journal struct {
	*Sync[types.JournalEntry, types.JournalEntryRequest]
}

func NewJournal(ep Endpoint[types.JournalEntry, types.JournalEntryRequest]) *Journal {
	return &Journal{Sync: New("journal", ep)}
}
