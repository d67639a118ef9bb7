package payload

import "testing"

func TestParseCEFBasic(t *testing.T) {
	msg := `CEF:0|Security|threatmanager|1.0|100|worm successfully stopped|10|src=10.0.0.1 dst=2.1.2.2 spt=1232`
	got := ParseCEF(msg)
	if got == nil {
		t.Fatal("expected non-nil")
	}
	if got.DeviceVendor != "Security" || got.DeviceProduct != "threatmanager" {
		t.Fatalf("got = %+v", got)
	}
	if got.Extension["src"] != "10.0.0.1" || got.Extension["dst"] != "2.1.2.2" {
		t.Fatalf("extension = %v", got.Extension)
	}
}

func TestParseCEFLabelExpansion(t *testing.T) {
	msg := `CEF:0|Vendor|Product|1.0|100|event|5|cs1Label=SourceZone cs1=DMZ`
	got := ParseCEF(msg)
	if got.Extension["cs1"] != "DMZ" {
		t.Fatalf("cs1 should still be present, got %v", got.Extension["cs1"])
	}
	if got.Extension["cs1Label"] != "SourceZone" {
		t.Fatalf("cs1Label should still be present, got %v", got.Extension["cs1Label"])
	}
	if got.Extension["SourceZone"] != "DMZ" {
		t.Fatalf("extension = %v", got.Extension)
	}
}

func TestParseCEFNotCEF(t *testing.T) {
	if got := ParseCEF("not a cef message"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}
