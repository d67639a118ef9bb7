package kv

import (
	"testing"
	"time"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

func TestKVPluginMatch(t *testing.T) {
	env := model.NewEnvelope(time.Now(), "user=alice action=login")
	if !(KVPlugin{}.Decode(env, plugin.NewCache())) {
		t.Fatal("expected match")
	}
	if env.EventData["user"] != "alice" {
		t.Fatalf("event data = %v", env.EventData)
	}
}

func TestKVPluginNoMatch(t *testing.T) {
	env := model.NewEnvelope(time.Now(), "no equals sign here")
	if (KVPlugin{}.Decode(env, plugin.NewCache())) {
		t.Fatal("expected no match")
	}
}
