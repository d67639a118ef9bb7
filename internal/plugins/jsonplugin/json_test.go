package jsonplugin

import (
	"testing"
	"time"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

func TestJSONPluginMatch(t *testing.T) {
	env := model.NewEnvelope(time.Now(), `{"a": 1}`)
	if !(JSONPlugin{}.Decode(env, plugin.NewCache())) {
		t.Fatal("expected match")
	}
}

func TestJSONPluginNoMatch(t *testing.T) {
	env := model.NewEnvelope(time.Now(), "not json")
	if (JSONPlugin{}.Decode(env, plugin.NewCache())) {
		t.Fatal("expected no match")
	}
}
