package main

import (
	"testing"
	"time"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

func TestMarkerPluginMatch(t *testing.T) {
	p := markerPlugin{marker: "DEMO-PLUGIN"}
	env := model.NewEnvelope(time.Now(), "hello DEMO-PLUGIN world")
	if !p.Decode(env, plugin.NewCache()) {
		t.Fatal("expected match")
	}
	handler := env.HandlerData[plugin.Identity(p)].(map[string]any)
	if handler["Msgclass"] != "demo_marker" {
		t.Fatalf("msgclass = %v", handler["Msgclass"])
	}
}

func TestMarkerPluginNoMatch(t *testing.T) {
	p := markerPlugin{marker: "DEMO-PLUGIN"}
	env := model.NewEnvelope(time.Now(), "nothing interesting here")
	if p.Decode(env, plugin.NewCache()) {
		t.Fatal("expected no match")
	}
}
