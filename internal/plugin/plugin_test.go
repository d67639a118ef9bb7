package plugin

import (
	"testing"
	"time"

	"github.com/ziggiz-courier/courier-decode/internal/model"
)

type stubPlugin struct {
	match bool
	calls *[]string
	name  string
}

func (s stubPlugin) Decode(m model.Model, cache *Cache) bool {
	*s.calls = append(*s.calls, s.name)
	return s.match
}

func TestRunStopsAtFirstMatch(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	var calls []string
	Register(SyslogBaseType, FirstPass, func() Plugin { return stubPlugin{match: false, calls: &calls, name: "a"} })
	Register(SyslogBaseType, SecondPass, func() Plugin { return stubPlugin{match: true, calls: &calls, name: "b"} })
	Register(SyslogBaseType, UnprocessedStructured, func() Plugin { return stubPlugin{match: true, calls: &calls, name: "c"} })

	env := model.NewEnvelope(time.Now(), "hello")
	ok := Run(SyslogBaseType, env, NewCache())
	if !ok {
		t.Fatal("expected a match")
	}
	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("calls = %v", calls)
	}
}

func TestRunNoMatch(t *testing.T) {
	resetForTest()
	t.Cleanup(resetForTest)

	var calls []string
	Register(RFC3164Type, FirstPass, func() Plugin { return stubPlugin{match: false, calls: &calls, name: "a"} })

	env := model.NewEnvelope(time.Now(), "hello")
	if Run(RFC3164Type, env, NewCache()) {
		t.Fatal("expected no match")
	}
}

func TestCacheGetOrCompute(t *testing.T) {
	c := NewCache()
	calls := 0
	compute := func() any {
		calls++
		return "parsed"
	}
	first := c.GetOrCompute("CEFParser", compute)
	second := c.GetOrCompute("CEFParser", compute)
	if first != "parsed" || second != "parsed" {
		t.Fatalf("first=%v second=%v", first, second)
	}
	if calls != 1 {
		t.Fatalf("compute called %d times, want 1", calls)
	}
}

func TestIdentityFirstParty(t *testing.T) {
	id := Identity(stubPlugin{})
	if id != "stubPlugin" {
		t.Fatalf("identity = %q", id)
	}
}
