// Package ngfw registers the Palo Alto NGFW quoted-CSV plugin.
//
// Grounded on paloalto/ngfw/plugin.py in the retrieved source pack: a
// second-pass plugin that dispatches on CSV column 3 (the TYPE field)
// against PANTypeFieldMap.
package ngfw

import (
	"strings"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/payload"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
	"github.com/ziggiz-courier/courier-decode/internal/textcase"
)

const cacheKey = "parse_quoted_csv_message"

// PaloAltoNGFWCSVDecoder recognises Palo Alto NGFW syslog messages in
// quoted-CSV format.
type PaloAltoNGFWCSVDecoder struct{}

func (PaloAltoNGFWCSVDecoder) Decode(m model.Model, cache *plugin.Cache) bool {
	message := m.GetMessage()

	fields, _ := cache.GetOrCompute(cacheKey, func() any {
		return payload.ParseQuotedCSV(message)
	}).([]string)
	if len(fields) <= 3 {
		return false
	}

	typeField := fields[3]
	fieldNames, ok := PANTypeFieldMap[strings.ToUpper(typeField)]
	if !ok {
		return false
	}

	eventData := make(map[string]any, len(fieldNames))
	for i, name := range fieldNames {
		if i >= len(fields) {
			break
		}
		eventData[name] = fields[i]
	}

	identity := plugin.Identity(PaloAltoNGFWCSVDecoder{})
	plugin.ApplyFieldMapping(m, identity, eventData, textcase.Lower(typeField), nil)
	plugin.SetSourceProducer(m, "paloalto", "ngfw", "")
	return true
}

func init() {
	factory := func() plugin.Plugin { return PaloAltoNGFWCSVDecoder{} }
	plugin.Register(plugin.RFC3164Type, plugin.SecondPass, factory)
	plugin.Register(plugin.RFC5424Type, plugin.SecondPass, factory)
}
