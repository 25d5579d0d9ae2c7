// FILE: strata/global.go
package strata

import (
	"sync"
	"sync/atomic"
)

// Process-wide configuration handle. Loaded once, immutable afterwards;
// Reload swaps the pointer in a single atomic update so readers never
// observe a partially built tree.
var (
	globalMu  sync.Mutex // Serializes first load and reload
	globalCfg atomic.Pointer[Config]
)

// Init loads the configuration at path and installs it as the
// process-wide handle. A second Init fails with ErrAlreadyInitialized;
// use Reload to replace an installed configuration.
func Init(path string) (*Config, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalCfg.Load() != nil {
		return nil, ErrAlreadyInitialized
	}

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	globalCfg.Store(cfg)
	return cfg, nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) *Config {
	cfg, err := Init(path)
	if err != nil {
		panic("config initialization failed: " + err.Error())
	}
	return cfg
}

// Global returns the process-wide configuration, discovering and loading
// it on first use.
func Global() (*Config, error) {
	if cfg := globalCfg.Load(); cfg != nil {
		return cfg, nil
	}

	globalMu.Lock()
	defer globalMu.Unlock()

	// Another goroutine may have won the race
	if cfg := globalCfg.Load(); cfg != nil {
		return cfg, nil
	}

	cfg, err := Load("")
	if err != nil {
		return nil, err
	}
	globalCfg.Store(cfg)
	return cfg, nil
}

// Reload re-resolves the document the global handle was loaded from and
// swaps the handle atomically. On error the previous configuration stays
// installed.
func Reload() (*Config, error) {
	globalMu.Lock()
	defer globalMu.Unlock()

	current := globalCfg.Load()
	if current == nil {
		return nil, ErrNotInitialized
	}

	cfg, err := Load(current.path)
	if err != nil {
		return nil, err
	}
	globalCfg.Store(cfg)
	return cfg, nil
}

// ResetGlobal clears the process-wide handle. Intended for tests.
func ResetGlobal() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg.Store(nil)
}
