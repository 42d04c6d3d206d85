package rrdata

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/haukened/rr-wire/internal/dns/domain"
)

func TestDNSKEYWireRoundTrip(t *testing.T) {
	key := bytes.Repeat([]byte{0xAB}, 32)
	body := append([]byte{0x01, 0x01, 0x03, 0x0F}, key...)
	rd, err := DecodeBytes(domain.RRTypeDNSKEY, body)
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	k := rd.(*DNSKEY)
	if k.Flags != 257 || k.Protocol != 3 || k.Algorithm != 15 {
		t.Fatalf("decoded %d %d %d, want 257 3 15", k.Flags, k.Protocol, k.Algorithm)
	}
	if !bytes.Equal(k.PublicKey, key) {
		t.Fatalf("public key mismatch")
	}
	out, _ := PackBytes(rd)
	if !bytes.Equal(out, body) {
		t.Fatalf("round trip = % x, want % x", out, body)
	}
}

func TestDNSKEYFlagPredicates(t *testing.T) {
	k := &DNSKEY{Flags: 257}
	if !k.IsZoneKey() || !k.IsSecureEntryPoint() || k.IsRevoked() {
		t.Fatalf("257 should be zone+sep, not revoked")
	}
	k.SetRevoked(true)
	if !k.IsRevoked() || k.Flags != 257|DNSKEYFlagRevoke {
		t.Fatalf("SetRevoked: flags = %d", k.Flags)
	}
	// setters are idempotent
	k.SetRevoked(true)
	if k.Flags != 257|DNSKEYFlagRevoke {
		t.Fatalf("second SetRevoked changed flags to %d", k.Flags)
	}
	k.SetRevoked(false)
	k.SetSecureEntryPoint(false)
	k.SetZoneKey(false)
	if k.Flags != 0 {
		t.Fatalf("cleared flags = %d, want 0", k.Flags)
	}
}

func TestDNSKEYPresentationRoundTrip(t *testing.T) {
	key := []byte{0x01, 0x02, 0x03, 0x04}
	rd := &DNSKEY{Flags: 256, Protocol: 3, Algorithm: 8, PublicKey: key}
	want := "256 3 8 " + base64.StdEncoding.EncodeToString(key)
	if got := rd.String(); got != want {
		t.Fatalf("String = %q, want %q", got, want)
	}
	// the key may arrive split across tokens
	again, err := Parse(domain.RRTypeDNSKEY, "", []string{"256", "3", "8", "AQID", "BA=="})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !bytes.Equal(again.(*DNSKEY).PublicKey, key) {
		t.Fatalf("split base64 key = % x, want % x", again.(*DNSKEY).PublicKey, key)
	}
}

func TestDNSKEYTooShort(t *testing.T) {
	if _, err := DecodeBytes(domain.RRTypeDNSKEY, []byte{0x01, 0x00, 0x03}); err == nil {
		t.Fatal("expected error for 3-byte DNSKEY rdata")
	}
}
