package ngfw

import (
	"testing"
	"time"

	"github.com/ziggiz-courier/courier-decode/internal/model"
	"github.com/ziggiz-courier/courier-decode/internal/plugin"
)

func TestPaloAltoNGFWTrafficMatch(t *testing.T) {
	msg := "1,2025/05/13 12:34:56,001122334455,TRAFFIC,drop,1,2025/05/13 12:34:56,10.1.1.1,10.2.2.2"
	env := model.NewEnvelope(time.Now(), msg)
	if !(PaloAltoNGFWCSVDecoder{}.Decode(env, plugin.NewCache())) {
		t.Fatal("expected match")
	}
	if env.EventData["serial_number"] != "001122334455" {
		t.Fatalf("event data = %v", env.EventData)
	}
	if env.EventData["type"] != "TRAFFIC" {
		t.Fatalf("event data = %v", env.EventData)
	}
}

func TestPaloAltoNGFWUnknownType(t *testing.T) {
	msg := "1,2025/05/13 12:34:56,001122334455,NOT_A_TYPE,drop"
	env := model.NewEnvelope(time.Now(), msg)
	if (PaloAltoNGFWCSVDecoder{}.Decode(env, plugin.NewCache())) {
		t.Fatal("expected no match for an unrecognised TYPE value")
	}
}

func TestPaloAltoNGFWTooFewFields(t *testing.T) {
	msg := "a,b,c"
	env := model.NewEnvelope(time.Now(), msg)
	if (PaloAltoNGFWCSVDecoder{}.Decode(env, plugin.NewCache())) {
		t.Fatal("expected no match with <=3 fields")
	}
}
