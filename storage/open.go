package storage

import (
	"fmt"

	"clementus360/ai-helper-client/config"
)

// Open returns the store selected by the settings.
func Open(s config.Settings) (Store, error) {
	switch s.StoreDriver {
	case config.StoreFile, "":
		return NewFileStore(s.StorePath), nil
	case config.StoreSQLite:
		return OpenSQLite(s.StorePath)
	case config.StoreMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", s.StoreDriver)
	}
}
