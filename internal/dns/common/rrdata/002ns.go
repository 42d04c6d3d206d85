package rrdata

import (
	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// NS is a name server record payload.
type NS struct {
	Host string
}

func (*NS) Type() domain.RRType { return domain.RRTypeNS }

func (r *NS) MaxLen() int { return wire.NameWireLen(r.Host) }

func (r *NS) String() string { return r.Host + "." }

func (r *NS) Pack(c *wire.Cursor, comp *wire.CompressionMap, canonical bool) error {
	return packDomainName(c, r.Host, comp, canonical, true)
}

func decodeNS(c *wire.Cursor, _ int) (*NS, error) {
	host, err := wire.ReadName(c)
	if err != nil {
		return nil, err
	}
	return &NS{Host: host}, nil
}

func parseNS(origin string, tokens []string) (*NS, error) {
	if len(tokens) != 1 {
		return nil, tokenError(0, "NS expects one host, got %d tokens", len(tokens))
	}
	return &NS{Host: nameFromToken(origin, tokens[0])}, nil
}
