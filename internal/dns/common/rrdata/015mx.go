package rrdata

import (
	"fmt"
	"strconv"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// MX is a mail exchange record payload.
type MX struct {
	Preference uint16
	Exchange   string
}

func (*MX) Type() domain.RRType { return domain.RRTypeMX }

func (r *MX) MaxLen() int { return 2 + wire.NameWireLen(r.Exchange) }

func (r *MX) String() string { return fmt.Sprintf("%d %s.", r.Preference, r.Exchange) }

func (r *MX) Pack(c *wire.Cursor, comp *wire.CompressionMap, canonical bool) error {
	if err := c.WriteUint16(r.Preference); err != nil {
		return err
	}
	return packDomainName(c, r.Exchange, comp, canonical, true)
}

func decodeMX(c *wire.Cursor, _ int) (*MX, error) {
	pref, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	exchange, err := wire.ReadName(c)
	if err != nil {
		return nil, err
	}
	return &MX{Preference: pref, Exchange: exchange}, nil
}

func parseMX(origin string, tokens []string) (*MX, error) {
	// tokens = ["10", "mail.example.com."]
	if len(tokens) != 2 {
		return nil, tokenError(0, "MX expects preference and exchange, got %d tokens", len(tokens))
	}
	pref, err := strconv.ParseUint(tokens[0], 10, 16)
	if err != nil {
		return nil, tokenError(0, "invalid MX preference %q", tokens[0])
	}
	return &MX{Preference: uint16(pref), Exchange: nameFromToken(origin, tokens[1])}, nil
}
