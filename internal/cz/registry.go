package cz

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/czkit/czkit/config"
)

// Factory builds a convention bound to the shared settings.
type Factory func(*config.Settings) Plugin

var (
	regMu    sync.Mutex
	registry = map[string]Factory{}
)

// Register makes a convention available under name. Conventions register
// themselves from package init; a later registration under the same name
// replaces the earlier one.
func Register(name string, factory Factory) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[name] = factory
}

// New builds the named convention against the shared settings.
func New(name string, settings *config.Settings) (Plugin, error) {
	regMu.Lock()
	factory, ok := registry[name]
	regMu.Unlock()
	if !ok {
		return nil, fmt.Errorf("unknown convention %q (known: %s)", name, strings.Join(Names(), ", "))
	}
	return factory(settings), nil
}

// Names returns the registered convention names, sorted.
func Names() []string {
	regMu.Lock()
	defer regMu.Unlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
