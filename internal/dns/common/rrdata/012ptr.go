package rrdata

import (
	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// PTR is a pointer record payload.
type PTR struct {
	Ptr string
}

func (*PTR) Type() domain.RRType { return domain.RRTypePTR }

func (r *PTR) MaxLen() int { return wire.NameWireLen(r.Ptr) }

func (r *PTR) String() string { return r.Ptr + "." }

func (r *PTR) Pack(c *wire.Cursor, comp *wire.CompressionMap, canonical bool) error {
	return packDomainName(c, r.Ptr, comp, canonical, true)
}

func decodePTR(c *wire.Cursor, _ int) (*PTR, error) {
	ptr, err := wire.ReadName(c)
	if err != nil {
		return nil, err
	}
	return &PTR{Ptr: ptr}, nil
}

func parsePTR(origin string, tokens []string) (*PTR, error) {
	if len(tokens) != 1 {
		return nil, tokenError(0, "PTR expects one target, got %d tokens", len(tokens))
	}
	return &PTR{Ptr: nameFromToken(origin, tokens[0])}, nil
}
