// Package jsonplugin registers the generic JSON object plugin.
//
// Grounded on the generic JSON plugin (generic/json) in the retrieved
// source pack.
package jsonplugin

import (
	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/payload"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

const cacheKey = "JSONParser"

// JSONPlugin recognises and decodes messages that are bare JSON objects.
type JSONPlugin struct{}

func (JSONPlugin) Decode(m model.Model, cache *plugin.Cache) bool {
	message := m.GetMessage()

	parsed, _ := cache.GetOrCompute(cacheKey, func() any {
		return payload.ParseJSON(message)
	}).(map[string]any)
	if parsed == nil {
		return false
	}

	identity := plugin.Identity(JSONPlugin{})
	plugin.ApplyFieldMapping(m, identity, parsed, "unknown", nil)
	plugin.SetSourceProducer(m, "generic", "unknown_json", "")
	return true
}

func init() {
	factory := func() plugin.Plugin { return JSONPlugin{} }
	plugin.Register(plugin.SyslogBaseType, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC3164Type, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC5424Type, plugin.UnprocessedStructured, factory)
}
