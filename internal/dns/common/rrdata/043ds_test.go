package rrdata

import (
	"bytes"
	"testing"

	"github.com/haukened/rr-wire/internal/dns/domain"
)

func TestDSWireRoundTrip(t *testing.T) {
	digest := bytes.Repeat([]byte{0xCD}, 20)
	body := append([]byte{0xEC, 0x45, 0x05, 0x01}, digest...)
	rd, err := DecodeBytes(domain.RRTypeDS, body)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	ds := rd.(*DS)
	if ds.KeyTag != 60485 || ds.Algorithm != 5 || ds.DigestType != 1 {
		t.Fatalf("decoded %d %d %d, want 60485 5 1", ds.KeyTag, ds.Algorithm, ds.DigestType)
	}
	out, _ := PackBytes(rd)
	if !bytes.Equal(out, body) {
		t.Fatalf("round trip = % x, want % x", out, body)
	}
}

func TestDSPresentationRoundTrip(t *testing.T) {
	// the RFC 4034 section 5.4 example record
	tokens := []string{"60485", "5", "1", "2BB183AF5F22588179A53B0A", "98631FAD1A292118"}
	rd, err := Parse(domain.RRTypeDS, "", tokens)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ds := rd.(*DS)
	if len(ds.Digest) != 20 {
		t.Fatalf("digest length = %d, want 20", len(ds.Digest))
	}
	want := "60485 5 1 2BB183AF5F22588179A53B0A98631FAD1A292118"
	if got := ds.String(); got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
}

func TestDSParseErrors(t *testing.T) {
	tests := [][]string{
		{"60485", "5", "1"},
		{"notanumber", "5", "1", "AA"},
		{"60485", "5", "1", "ZZ"},
	}
	for _, tokens := range tests {
		if _, err := Parse(domain.RRTypeDS, "", tokens); err == nil {
			t.Errorf("Parse(%v) expected error, got nil", tokens)
		}
	}
}
