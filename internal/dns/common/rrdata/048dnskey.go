package rrdata

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// DNSKEY flag bits (RFC 4034 section 2.1.1, RFC 5011).
const (
	DNSKEYFlagSEP    uint16 = 0x0001 // bit 15: secure entry point
	DNSKEYFlagRevoke uint16 = 0x0080 // bit 8: revoked (RFC 5011)
	DNSKEYFlagZone   uint16 = 0x0100 // bit 7: zone key
)

// DNSKEY is a DNS public key record payload. The public key blob is opaque
// at this layer; its internal layout is algorithm-specific and interpreted
// by the dnssec package. The blob is fixed at construction; only the
// documented flag bits are mutable.
type DNSKEY struct {
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

func (*DNSKEY) Type() domain.RRType { return domain.RRTypeDNSKEY }

func (r *DNSKEY) MaxLen() int { return 4 + len(r.PublicKey) }

func (r *DNSKEY) String() string {
	return fmt.Sprintf("%d %d %d %s", r.Flags, r.Protocol, r.Algorithm,
		base64.StdEncoding.EncodeToString(r.PublicKey))
}

func (r *DNSKEY) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	if err := c.WriteUint16(r.Flags); err != nil {
		return err
	}
	if err := c.WriteUint8(r.Protocol); err != nil {
		return err
	}
	if err := c.WriteUint8(r.Algorithm); err != nil {
		return err
	}
	return c.WriteBytes(r.PublicKey)
}

// IsZoneKey reports whether the zone key bit is set; only zone keys may
// sign RRsets (RFC 4034 section 2.1.1).
func (r *DNSKEY) IsZoneKey() bool { return r.Flags&DNSKEYFlagZone != 0 }

// IsSecureEntryPoint reports whether the SEP bit is set.
func (r *DNSKEY) IsSecureEntryPoint() bool { return r.Flags&DNSKEYFlagSEP != 0 }

// IsRevoked reports whether the RFC 5011 revoke bit is set.
func (r *DNSKEY) IsRevoked() bool { return r.Flags&DNSKEYFlagRevoke != 0 }

// SetZoneKey sets or clears the zone key bit. Setting an already-set bit
// is a no-op.
func (r *DNSKEY) SetZoneKey(on bool) {
	if on {
		r.Flags |= DNSKEYFlagZone
	} else {
		r.Flags &^= DNSKEYFlagZone
	}
}

// SetSecureEntryPoint sets or clears the SEP bit.
func (r *DNSKEY) SetSecureEntryPoint(on bool) {
	if on {
		r.Flags |= DNSKEYFlagSEP
	} else {
		r.Flags &^= DNSKEYFlagSEP
	}
}

// SetRevoked sets or clears the revoke bit.
func (r *DNSKEY) SetRevoked(on bool) {
	if on {
		r.Flags |= DNSKEYFlagRevoke
	} else {
		r.Flags &^= DNSKEYFlagRevoke
	}
}

func decodeDNSKEY(c *wire.Cursor, rdlength int) (*DNSKEY, error) {
	if rdlength < 4 {
		return nil, fmt.Errorf("%w: DNSKEY rdata of %d bytes", wire.ErrShortRdata, rdlength)
	}
	flags, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	protocol, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	algorithm, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	key, err := c.ReadBytes(rdlength - 4)
	if err != nil {
		return nil, err
	}
	return &DNSKEY{Flags: flags, Protocol: protocol, Algorithm: algorithm, PublicKey: key}, nil
}

func parseDNSKEY(tokens []string) (*DNSKEY, error) {
	// tokens = ["257", "3", "15", "l02Woi0iS8Aa25FQkUd9RMzZHJpBoRQwAQEX1SxZJA4="]
	if len(tokens) < 4 {
		return nil, tokenError(0, "DNSKEY expects flags, protocol, algorithm, and key, got %d tokens", len(tokens))
	}
	flags, err := strconv.ParseUint(tokens[0], 10, 16)
	if err != nil {
		return nil, tokenError(0, "invalid DNSKEY flags %q", tokens[0])
	}
	protocol, err := strconv.ParseUint(tokens[1], 10, 8)
	if err != nil {
		return nil, tokenError(1, "invalid DNSKEY protocol %q", tokens[1])
	}
	algorithm, err := strconv.ParseUint(tokens[2], 10, 8)
	if err != nil {
		return nil, tokenError(2, "invalid DNSKEY algorithm %q", tokens[2])
	}
	// the base64 key may be split across the remaining tokens
	key, err := base64.StdEncoding.DecodeString(strings.Join(tokens[3:], ""))
	if err != nil {
		return nil, tokenError(3, "invalid DNSKEY base64: %v", err)
	}
	return &DNSKEY{
		Flags:     uint16(flags),
		Protocol:  uint8(protocol),
		Algorithm: uint8(algorithm),
		PublicKey: key,
	}, nil
}
