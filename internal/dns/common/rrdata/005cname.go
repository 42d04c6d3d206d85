package rrdata

import (
	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// CNAME is a canonical name record payload: a single target name that may
// be compressed on the wire.
type CNAME struct {
	Target string
}

func (*CNAME) Type() domain.RRType { return domain.RRTypeCNAME }

func (r *CNAME) MaxLen() int { return wire.NameWireLen(r.Target) }

func (r *CNAME) String() string { return r.Target + "." }

func (r *CNAME) Pack(c *wire.Cursor, comp *wire.CompressionMap, canonical bool) error {
	return packDomainName(c, r.Target, comp, canonical, true)
}

func decodeCNAME(c *wire.Cursor, _ int) (*CNAME, error) {
	target, err := wire.ReadName(c)
	if err != nil {
		return nil, err
	}
	return &CNAME{Target: target}, nil
}

func parseCNAME(origin string, tokens []string) (*CNAME, error) {
	// tokens = ["alias.example.net."]
	if len(tokens) != 1 {
		return nil, tokenError(0, "CNAME expects one target, got %d tokens", len(tokens))
	}
	return &CNAME{Target: nameFromToken(origin, tokens[0])}, nil
}
