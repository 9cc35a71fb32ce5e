package viewmode

import (
	"sync"
)

var (
	modesMu sync.RWMutex
	modes   = make(map[ID]Config)
)

// Register adds or replaces a view-mode configuration by id
func Register(cfg Config) {
	modesMu.Lock()
	defer modesMu.Unlock()
	modes[cfg.ID] = cfg
}

// Get retrieves a mode configuration by id
func Get(id ID) (Config, bool) {
	modesMu.RLock()
	defer modesMu.RUnlock()
	cfg, ok := modes[id]
	return cfg, ok
}

// MustGet retrieves a mode configuration, falling back to Realistic for
// unknown ids so callers always hold a usable config
func MustGet(id ID) Config {
	if cfg, ok := Get(id); ok {
		return cfg
	}
	cfg, _ := Get(Realistic)
	return cfg
}

// Names returns all registered mode ids
func Names() []ID {
	modesMu.RLock()
	defer modesMu.RUnlock()
	names := make([]ID, 0, len(modes))
	for id := range modes {
		names = append(names, id)
	}
	return names
}
