package payload

import (
	"reflect"
	"testing"
)

func TestParseKVBasic(t *testing.T) {
	got := ParseKV(`user=alice action=login status="ok ok"`)
	want := map[string]string{"user": "alice", "action": "login", "status": "ok ok"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseKVQuotedEscape(t *testing.T) {
	got := ParseKV(`msg="she said \"hi\"" code=7`)
	if got["msg"] != `she said "hi"` {
		t.Fatalf("msg = %q", got["msg"])
	}
	if got["code"] != "7" {
		t.Fatalf("code = %q", got["code"])
	}
}

func TestParseKVNoEquals(t *testing.T) {
	if got := ParseKV("just some words"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestParseKVStrayToken(t *testing.T) {
	got := ParseKV("garbage user=alice")
	if got["user"] != "alice" {
		t.Fatalf("user = %q", got["user"])
	}
}
