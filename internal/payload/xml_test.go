package payload

import "testing"

func TestParseXMLBasic(t *testing.T) {
	got := ParseXML(`<event id="42"><name>login</name></event>`)
	if got == nil {
		t.Fatal("expected non-nil")
	}
	event, ok := got["event"].(map[string]any)
	if !ok {
		t.Fatalf("event = %#v", got["event"])
	}
	if event["@id"] != "42" {
		t.Fatalf("@id = %v", event["@id"])
	}
	if event["name"] != "login" {
		t.Fatalf("name = %v", event["name"])
	}
}

func TestParseXMLDTDName(t *testing.T) {
	got := ParseXML(`<!DOCTYPE config><config><item>1</item></config>`)
	if got["_dtd_name"] != "config" {
		t.Fatalf("_dtd_name = %v", got["_dtd_name"])
	}
}

func TestParseXMLEmpty(t *testing.T) {
	if got := ParseXML(""); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
