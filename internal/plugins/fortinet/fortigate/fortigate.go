// Package fortigate registers the Fortinet FortiGate key=value plugin.
//
// Grounded on fortinet/fortigate/plugin.py in the retrieved source pack:
// a second-pass plugin recognising FortiGate's KV dialect by the
// presence of eventtime/type/subtype and a 10-character logid.
package fortigate

import (
	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/payload"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

const cacheKey = "KVParser"

// FortinetFortiGateKVDecoderPlugin recognises FortiGate syslog messages in
// key=value format.
type FortinetFortiGateKVDecoderPlugin struct{}

func (FortinetFortiGateKVDecoderPlugin) Decode(m model.Model, cache *plugin.Cache) bool {
	message := m.GetMessage()

	parsed, _ := cache.GetOrCompute(cacheKey, func() any {
		return payload.ParseKV(message)
	}).(map[string]string)
	if parsed == nil {
		return false
	}

	if parsed["eventtime"] == "" || parsed["type"] == "" || parsed["subtype"] == "" || len(parsed["logid"]) != 10 {
		return false
	}

	eventData := make(map[string]any, len(parsed))
	for k, v := range parsed {
		eventData[k] = v
	}

	msgclass := parsed["type"] + "_" + parsed["subtype"]

	identity := plugin.Identity(FortinetFortiGateKVDecoderPlugin{})
	plugin.ApplyFieldMapping(m, identity, eventData, msgclass, nil)
	plugin.SetSourceProducer(m, "fortinet", "fortigate", "")
	return true
}

func init() {
	plugin.Register(plugin.SyslogBaseType, plugin.SecondPass, func() plugin.Plugin { return FortinetFortiGateKVDecoderPlugin{} })
}
