// Package cef registers the generic CEF plugin: any message that begins
// with the ArcSight Common Event Format marker is parsed and classified.
//
// Grounded on the generic CEF plugin (generic/cef) in the retrieved
// source pack.
package cef

import (
	"strings"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/payload"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
	"github.com/ziggiz-courier/courier-decode/internal/textcase"
)

const cacheKey = "CEFParser"

// CEFPlugin recognises and decodes CEF-formatted messages.
type CEFPlugin struct{}

func (CEFPlugin) Decode(m model.Model, cache *plugin.Cache) bool {
	message := m.GetMessage()
	if !strings.HasPrefix(message, "CEF:1") {
		return false
	}

	parsed, _ := cache.GetOrCompute(cacheKey, func() any {
		return payload.ParseCEF(message)
	}).(*payload.CEFEvent)
	if parsed == nil || parsed.DeviceVendor == "" || parsed.DeviceProduct == "" {
		return false
	}

	eventData := map[string]any{
		"cef_version":    parsed.Version,
		"device_vendor":  parsed.DeviceVendor,
		"device_product": parsed.DeviceProduct,
		"device_version": parsed.DeviceVersion,
		"signature_id":   parsed.DeviceEventID,
		"name":           parsed.Name,
		"severity":       parsed.Severity,
	}
	for k, v := range parsed.Extension {
		eventData[k] = v
	}

	identity := plugin.Identity(CEFPlugin{})
	plugin.ApplyFieldMapping(m, identity, eventData, textcase.Lower(parsed.Name), nil)
	plugin.SetSourceProducer(m, textcase.Lower(parsed.DeviceVendor), textcase.Lower(parsed.DeviceProduct), "")
	return true
}

func init() {
	factory := func() plugin.Plugin { return CEFPlugin{} }
	plugin.Register(plugin.SyslogBaseType, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC3164Type, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC5424Type, plugin.UnprocessedStructured, factory)
}
