package xmlplugin

import (
	"testing"
	"time"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

func TestXMLPluginMatch(t *testing.T) {
	env := model.NewEnvelope(time.Now(), `<event id="1"><name>login</name></event>`)
	if !(XMLPlugin{}.Decode(env, plugin.NewCache())) {
		t.Fatal("expected match")
	}
}

func TestXMLPluginNoMatch(t *testing.T) {
	env := model.NewEnvelope(time.Now(), "not xml")
	if (XMLPlugin{}.Decode(env, plugin.NewCache())) {
		t.Fatal("expected no match")
	}
}
