package rrdata

import (
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// base32hex without padding, the NSEC3 next-hashed-owner presentation
// encoding (RFC 5155 section 3.3).
var b32hex = base32.HexEncoding.WithPadding(base32.NoPadding)

// NSEC3 is a hashed next-secure record payload (RFC 5155).
type NSEC3 struct {
	HashAlg    uint8
	Flags      uint8
	Iterations uint16
	Salt       []byte
	NextHashed []byte
	Types      []domain.RRType
}

func (*NSEC3) Type() domain.RRType { return domain.RRTypeNSEC3 }

func (r *NSEC3) MaxLen() int {
	return 5 + len(r.Salt) + 1 + len(r.NextHashed) + typeBitmapMaxLen(r.Types)
}

func (r *NSEC3) String() string {
	salt := "-"
	if len(r.Salt) > 0 {
		salt = strings.ToUpper(hex.EncodeToString(r.Salt))
	}
	s := fmt.Sprintf("%d %d %d %s %s", r.HashAlg, r.Flags, r.Iterations, salt,
		strings.ToUpper(b32hex.EncodeToString(r.NextHashed)))
	if len(r.Types) > 0 {
		s += " " + typesToString(r.Types)
	}
	return s
}

func (r *NSEC3) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	if err := c.WriteUint8(r.HashAlg); err != nil {
		return err
	}
	if err := c.WriteUint8(r.Flags); err != nil {
		return err
	}
	if err := c.WriteUint16(r.Iterations); err != nil {
		return err
	}
	if err := c.WriteCharString(r.Salt); err != nil {
		return err
	}
	if err := c.WriteCharString(r.NextHashed); err != nil {
		return err
	}
	return packTypeBitmap(c, r.Types)
}

func decodeNSEC3(c *wire.Cursor, rdlength int) (*NSEC3, error) {
	if rdlength < 6 {
		return nil, fmt.Errorf("%w: NSEC3 rdata of %d bytes", wire.ErrShortRdata, rdlength)
	}
	end := c.Pos() + rdlength
	hashAlg, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	flags, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	iterations, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	salt, err := c.ReadCharString()
	if err != nil {
		return nil, err
	}
	nextHashed, err := c.ReadCharString()
	if err != nil {
		return nil, err
	}
	types, err := decodeTypeBitmap(c, end)
	if err != nil {
		return nil, err
	}
	return &NSEC3{
		HashAlg:    hashAlg,
		Flags:      flags,
		Iterations: iterations,
		Salt:       salt,
		NextHashed: nextHashed,
		Types:      types,
	}, nil
}

func parseNSEC3(_ string, tokens []string) (*NSEC3, error) {
	// tokens = ["1", "0", "12", "AABBCCDD", "B2GD0...", "A", "RRSIG"]
	if len(tokens) < 5 {
		return nil, tokenError(0, "NSEC3 expects 5 fixed fields, got %d tokens", len(tokens))
	}
	hashAlg, err := strconv.ParseUint(tokens[0], 10, 8)
	if err != nil {
		return nil, tokenError(0, "invalid NSEC3 hash algorithm %q", tokens[0])
	}
	flags, err := strconv.ParseUint(tokens[1], 10, 8)
	if err != nil {
		return nil, tokenError(1, "invalid NSEC3 flags %q", tokens[1])
	}
	iterations, err := strconv.ParseUint(tokens[2], 10, 16)
	if err != nil {
		return nil, tokenError(2, "invalid NSEC3 iterations %q", tokens[2])
	}
	var salt []byte
	if tokens[3] != "-" {
		if salt, err = hex.DecodeString(strings.ToLower(tokens[3])); err != nil {
			return nil, tokenError(3, "invalid NSEC3 salt hex: %v", err)
		}
	}
	nextHashed, err := b32hex.DecodeString(strings.ToUpper(tokens[4]))
	if err != nil {
		return nil, tokenError(4, "invalid NSEC3 next hash base32: %v", err)
	}
	types, err := typesFromTokens(tokens[5:], 5)
	if err != nil {
		return nil, err
	}
	return &NSEC3{
		HashAlg:    uint8(hashAlg),
		Flags:      uint8(flags),
		Iterations: uint16(iterations),
		Salt:       salt,
		NextHashed: nextHashed,
		Types:      normalizeTypes(types),
	}, nil
}
