// Package xmlplugin registers the generic XML plugin.
//
// Grounded on the generic XML plugin (generic/xml) in the retrieved source
// pack.
package xmlplugin

import (
	"strings"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/payload"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

const cacheKey = "XMLParser"

// XMLPlugin recognises and decodes messages that parse as well-formed
// XML.
type XMLPlugin struct{}

func (XMLPlugin) Decode(m model.Model, cache *plugin.Cache) bool {
	message := strings.TrimSpace(m.GetMessage())
	if !strings.HasPrefix(message, "<") {
		return false
	}

	parsed, _ := cache.GetOrCompute(cacheKey, func() any {
		return payload.ParseXML(message)
	}).(map[string]any)
	if parsed == nil {
		return false
	}

	msgclass := "unknown"
	if dtd, ok := parsed["_dtd_name"].(string); ok && dtd != "" {
		msgclass = dtd
	}

	identity := plugin.Identity(XMLPlugin{})
	plugin.ApplyFieldMapping(m, identity, parsed, msgclass, nil)
	plugin.SetSourceProducer(m, "generic", "unknown_xml", "")
	return true
}

func init() {
	factory := func() plugin.Plugin { return XMLPlugin{} }
	plugin.Register(plugin.SyslogBaseType, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC3164Type, plugin.UnprocessedStructured, factory)
	plugin.Register(plugin.RFC5424Type, plugin.UnprocessedStructured, factory)
}
