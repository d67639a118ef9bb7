// Package leef1 registers the generic LEEF 1.0 plugin.
//
// Grounded on the generic LEEF1 plugin (generic/leef1) in the retrieved
// source pack.
package leef1

import (
	"strings"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/payload"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
	"github.com/ziggiz-courier/courier-decode/internal/textcase"
)

const cacheKey = "LEEF1Parser"

// LEEF1Plugin recognises and decodes LEEF 1.0-formatted messages.
type LEEF1Plugin struct{}

func (LEEF1Plugin) Decode(m model.Model, cache *plugin.Cache) bool {
	message := m.GetMessage()
	if !strings.HasPrefix(message, "LEEF:1.") {
		return false
	}

	parsed, _ := cache.GetOrCompute(cacheKey, func() any {
		return payload.ParseLEEF1(message)
	}).(*payload.LEEFEvent)
	if parsed == nil || parsed.Vendor == "" || parsed.Product == "" {
		return false
	}

	eventData := map[string]any{
		"leef_version": parsed.Version,
		"vendor":       parsed.Vendor,
		"product_name": parsed.Product,
		"product_ver":  parsed.ProductVer,
		"event_id":     parsed.EventID,
	}
	for k, v := range parsed.Extension {
		eventData[k] = v
	}

	identity := plugin.Identity(LEEF1Plugin{})
	plugin.ApplyFieldMapping(m, identity, eventData, textcase.Lower(parsed.EventID), nil)
	plugin.SetSourceProducer(m, textcase.Lower(parsed.Vendor), textcase.Lower(parsed.Product), "")
	return true
}

func init() {
	factory := func() plugin.Plugin { return LEEF1Plugin{} }
	plugin.Register(plugin.SyslogBaseType, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC3164Type, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC5424Type, plugin.UnprocessedStructured, factory)
}
