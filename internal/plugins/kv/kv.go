// Package kv registers the generic key=value plugin.
//
// Grounded on the generic KV plugin (generic/kv) in the retrieved source
// pack.
package kv

import (
	"strings"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/payload"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

const cacheKey = "KVParser"

// KVPlugin recognises and decodes messages that contain at least one
// key=value token.
type KVPlugin struct{}

func (KVPlugin) Decode(m model.Model, cache *plugin.Cache) bool {
	message := m.GetMessage()
	if !strings.Contains(message, "=") {
		return false
	}

	parsed, _ := cache.GetOrCompute(cacheKey, func() any {
		return payload.ParseKV(message)
	}).(map[string]string)
	if len(parsed) == 0 {
		return false
	}

	eventData := make(map[string]any, len(parsed))
	for k, v := range parsed {
		eventData[k] = v
	}

	identity := plugin.Identity(KVPlugin{})
	plugin.ApplyFieldMapping(m, identity, eventData, "unknown", nil)
	plugin.SetSourceProducer(m, "generic", "unknown_kv", "")
	return true
}

func init() {
	factory := func() plugin.Plugin { return KVPlugin{} }
	plugin.Register(plugin.SyslogBaseType, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC3164Type, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC5424Type, plugin.UnprocessedStructured, factory)
}
