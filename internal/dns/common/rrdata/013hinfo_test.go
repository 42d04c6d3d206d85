package rrdata

import (
	"bytes"
	"testing"

	"github.com/haukened/rr-wire/internal/dns/domain"
)

func TestHINFOWireRoundTrip(t *testing.T) {
	body := []byte{3, 'c', 'p', 'u', 5, 'l', 'i', 'n', 'u', 'x'}
	rd, err := DecodeBytes(domain.RRTypeHINFO, body)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	hinfo := rd.(*HINFO)
	if hinfo.CPU != "cpu" || hinfo.OS != "linux" {
		t.Fatalf("decoded %q %q, want cpu linux", hinfo.CPU, hinfo.OS)
	}
	out, err := PackBytes(rd)
	if err != nil {
		t.Fatalf("PackBytes: %v", err)
	}
	if !bytes.Equal(out, body) {
		t.Fatalf("round trip = % x, want % x", out, body)
	}
}

func TestHINFOPresentationQuoting(t *testing.T) {
	rd := &HINFO{CPU: `AMD "64"`, OS: `back\slash`}
	want := `"AMD \"64\"" "back\\slash"`
	if got := rd.String(); got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
	again, err := Parse(domain.RRTypeHINFO, "", []string{`"AMD \"64\""`, `"back\\slash"`})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if *again.(*HINFO) != *rd {
		t.Fatalf("presentation round trip %#v != %#v", again, rd)
	}
}

func TestHINFOParseErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"only-cpu"},
		{"a", "b", "c"},
		{`"unterminated`, "os"},
	}
	for _, tokens := range tests {
		if _, err := Parse(domain.RRTypeHINFO, "", tokens); err == nil {
			t.Errorf("Parse(%v) expected error, got nil", tokens)
		}
	}
}

func TestHINFOTruncatedWire(t *testing.T) {
	if _, err := DecodeBytes(domain.RRTypeHINFO, []byte{5, 'a', 'b'}); err == nil {
		t.Fatal("expected error for truncated character-string")
	}
}
