// Package plugin implements the staged plugin registry that framing
// decoders run after building a model: a process-wide, append-only table
// keyed by (model type, stage) populated through package init()
// registrations (plus the demo CLI's one runtime registration), plus the per-line parse cache and mutation helpers shared
// by every concrete plugin.
//
// Grounded on the older core_data_processing message_decoder_plugins.py
// registry (decorator-based registration into a map keyed by model type),
// extended with the stage dimension the newer decoders require; the
// sync.RWMutex-guarded map follows gastrolog's internal/logging package
// style for a read-mostly, init()-populated global.
package plugin

import (
	"reflect"
	"sync"

	"github.com/ziggiz-courier/courier-decode/internal/model"
)

// ModelType identifies which framing decoder's output a plugin applies
// to. Lookup never walks an inheritance chain: a plugin that should run
// for more than one model type must register under each explicitly.
type ModelType int

const (
	SyslogBaseType ModelType = iota
	RFC3164Type
	RFC5424Type
)

// Stage is one of the four fixed phases run, in this order, after a
// framing decoder builds its model.
type Stage int

const (
	FirstPass Stage = iota
	SecondPass
	UnprocessedStructured
	UnprocessedMessages
)

// stages lists the run order; Run iterates this slice.
var stages = [...]Stage{FirstPass, SecondPass, UnprocessedStructured, UnprocessedMessages}

// Plugin decodes a model in place, returning true if it recognised and
// handled the payload. Decode must not mutate EventData or HandlerData
// entries owned by another plugin.
type Plugin interface {
	Decode(m model.Model, cache *Cache) bool
}

// Factory constructs a fresh Plugin instance for one line.
type Factory func() Plugin

type registryKey struct {
	modelType ModelType
	stage     Stage
}

var (
	mu       sync.RWMutex
	registry = make(map[registryKey][]Factory)
)

// Register appends factory to the ordered list for (modelType, stage).
// Idempotent: registering the exact same factory value twice for the
// same key is a no-op. Intended to be called from package init().
func Register(modelType ModelType, stage Stage, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	key := registryKey{modelType, stage}
	ptr := reflect.ValueOf(factory).Pointer()
	for _, existing := range registry[key] {
		if reflect.ValueOf(existing).Pointer() == ptr {
			return
		}
	}
	registry[key] = append(registry[key], factory)
}

// Run executes every registered stage, in order, for modelType against m,
// sharing one cache across the whole run. Within a stage, factories run
// in registration order. The first Decode to return true ends the entire
// run; no later stage or plugin executes.
func Run(modelType ModelType, m model.Model, cache *Cache) bool {
	mu.RLock()
	defer mu.RUnlock()
	for _, stage := range stages {
		for _, factory := range registry[registryKey{modelType, stage}] {
			if factory().Decode(m, cache) {
				return true
			}
		}
	}
	return false
}

// resetForTest clears the registry. Unexported: only the package's own
// tests may call it, to register synthetic plugins without leaking state
// across test cases.
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[registryKey][]Factory)
}
