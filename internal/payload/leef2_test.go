package payload

import "testing"

func TestParseLEEF2WithCategory(t *testing.T) {
	msg := "LEEF:2.0|Vendor|Product|1.0|200|authentication|src=10.1.1.1\tdst=10.1.1.2"
	got := ParseLEEF2(msg)
	if got == nil {
		t.Fatal("expected non-nil")
	}
	if got.EventCategory != "authentication" {
		t.Fatalf("category = %q", got.EventCategory)
	}
	if got.Extension["src"] != "10.1.1.1" {
		t.Fatalf("extension = %v", got.Extension)
	}
}

func TestParseLEEF2WithoutCategory(t *testing.T) {
	msg := "LEEF:2.0|Vendor|Product|1.0|200|src=10.1.1.1\tdst=10.1.1.2"
	got := ParseLEEF2(msg)
	if got.EventCategory != "" {
		t.Fatalf("category = %q, want empty", got.EventCategory)
	}
	if got.Extension["src"] != "10.1.1.1" {
		t.Fatalf("extension = %v", got.Extension)
	}
}

func TestParseLEEF2SpaceEscape(t *testing.T) {
	msg := `LEEF:2.0|Vendor|Product|1.0|200|msg=hello\sworld`
	got := ParseLEEF2(msg)
	if got.Extension["msg"] != "hello world" {
		t.Fatalf("msg = %q", got.Extension["msg"])
	}
}
