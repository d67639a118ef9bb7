// Package textheuristic registers the UnprocessedMessages fallback plugin:
// best-effort heuristic field extraction for message bodies that no
// structured-format or vendor plugin recognised.
package textheuristic

import (
	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
	"github.com/ziggiz-courier/courier-decode/internal/tokenizer"
)

// HeuristicPlugin runs the combined heuristic KV, logfmt, and access-log
// extractors and accepts if any of them produced at least one pair.
type HeuristicPlugin struct{}

var extractors = tokenizer.DefaultExtractors()

func (HeuristicPlugin) Decode(m model.Model, cache *plugin.Cache) bool {
	message := m.GetMessage()
	pairs, _ := cache.GetOrCompute("TextHeuristicExtractor", func() any {
		return tokenizer.CombinedExtract([]byte(message), extractors)
	}).([]tokenizer.KeyValue)

	if len(pairs) == 0 {
		return false
	}

	eventData := make(map[string]any, len(pairs))
	for _, kv := range pairs {
		eventData[kv.Key] = kv.Value
	}

	plugin.ApplyFieldMapping(m, plugin.Identity(HeuristicPlugin{}), eventData, "unknown", nil)
	plugin.SetSourceProducer(m, "generic", "unknown_text", "")
	return true
}

func init() {
	for _, mt := range []plugin.ModelType{plugin.SyslogBaseType, plugin.RFC3164Type, plugin.RFC5424Type} {
		plugin.Register(mt, plugin.UnprocessedMessages, func() plugin.Plugin { return HeuristicPlugin{} })
	}
}
