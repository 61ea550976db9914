package colorutil

import "testing"

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#cccac8")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if c != Placeholder {
		t.Errorf("Expected %v, got %v", Placeholder, c)
	}

	c, err = ParseHex("#ff00ff80")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if c.A != 0x80 || c.R != 0xff || c.G != 0 {
		t.Errorf("Unexpected color %v", c)
	}

	if _, err := ParseHex("cccac8"); err == nil {
		t.Error("Expected error for missing hash")
	}
}
