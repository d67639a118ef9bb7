// Package leef2 registers the generic LEEF 2.0 plugin.
//
// Grounded on the generic LEEF2 plugin (generic/leef2) in the retrieved
// source pack.
package leef2

import (
	"fmt"
	"strings"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/payload"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
	"github.com/ziggiz-courier/courier-decode/internal/textcase"
)

const cacheKey = "LEEF2Parser"

// LEEF2Plugin recognises and decodes LEEF 2.0-formatted messages.
type LEEF2Plugin struct{}

func (LEEF2Plugin) Decode(m model.Model, cache *plugin.Cache) bool {
	message := m.GetMessage()
	if !strings.HasPrefix(message, "LEEF:2.") {
		return false
	}

	parsed, _ := cache.GetOrCompute(cacheKey, func() any {
		return payload.ParseLEEF2(message)
	}).(*payload.LEEFEvent)
	if parsed == nil {
		return false
	}

	eventData := map[string]any{
		"leef_version":   parsed.Version,
		"vendor":         parsed.Vendor,
		"product_name":   parsed.Product,
		"product_ver":    parsed.ProductVer,
		"event_id":       parsed.EventID,
		"event_category": parsed.EventCategory,
	}
	for k, v := range parsed.Extension {
		eventData[k] = v
	}

	msgclass := textcase.Lower(parsed.EventID)
	if parsed.EventCategory != "" && !strings.EqualFold(parsed.EventCategory, "alert") {
		msgclass = fmt.Sprintf("%s_%s", textcase.Lower(parsed.EventCategory), textcase.Lower(parsed.EventID))
	}

	identity := plugin.Identity(LEEF2Plugin{})
	plugin.ApplyFieldMapping(m, identity, eventData, msgclass, nil)
	plugin.SetSourceProducer(m, textcase.Lower(parsed.Vendor), textcase.Lower(parsed.Product), "")
	return true
}

func init() {
	factory := func() plugin.Plugin { return LEEF2Plugin{} }
	plugin.Register(plugin.SyslogBaseType, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC3164Type, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC5424Type, plugin.UnprocessedStructured, factory)
}
