package rrdata

import (
	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// NSEC is a next-secure record payload: the next owner name in canonical
// zone order and the type bitmap of the current owner. The next name is
// never compressed, and per RFC 6840 its case is preserved in canonical
// form.
type NSEC struct {
	NextDomain string
	Types      []domain.RRType
}

// NewNSEC constructs an NSEC payload with a normalized type list.
func NewNSEC(next string, types []domain.RRType) *NSEC {
	return &NSEC{NextDomain: next, Types: normalizeTypes(types)}
}

func (*NSEC) Type() domain.RRType { return domain.RRTypeNSEC }

func (r *NSEC) MaxLen() int {
	return wire.NameWireLen(r.NextDomain) + typeBitmapMaxLen(r.Types)
}

func (r *NSEC) String() string {
	s := r.NextDomain + "."
	if len(r.Types) > 0 {
		s += " " + typesToString(r.Types)
	}
	return s
}

func (r *NSEC) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	if err := packDomainName(c, r.NextDomain, nil, false, false); err != nil {
		return err
	}
	return packTypeBitmap(c, r.Types)
}

func decodeNSEC(c *wire.Cursor, rdlength int) (*NSEC, error) {
	end := c.Pos() + rdlength
	next, err := wire.ReadName(c)
	if err != nil {
		return nil, err
	}
	types, err := decodeTypeBitmap(c, end)
	if err != nil {
		return nil, err
	}
	return &NSEC{NextDomain: next, Types: types}, nil
}

func parseNSEC(origin string, tokens []string) (*NSEC, error) {
	// tokens = ["host.example.com.", "A", "MX", "RRSIG", "NSEC"]
	if len(tokens) < 1 {
		return nil, tokenError(0, "NSEC expects a next domain name")
	}
	types, err := typesFromTokens(tokens[1:], 1)
	if err != nil {
		return nil, err
	}
	return &NSEC{NextDomain: nameFromToken(origin, tokens[0]), Types: types}, nil
}
