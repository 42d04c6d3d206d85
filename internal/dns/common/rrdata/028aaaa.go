package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// AAAA is an IPv6 host address record payload.
type AAAA struct {
	Addr net.IP
}

func (*AAAA) Type() domain.RRType { return domain.RRTypeAAAA }
func (*AAAA) MaxLen() int         { return net.IPv6len }

func (a *AAAA) String() string { return a.Addr.String() }

func (a *AAAA) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	ip16 := a.Addr.To16()
	if ip16 == nil {
		return fmt.Errorf("not an IP address: %s", a.Addr)
	}
	return c.WriteBytes(ip16)
}

func decodeAAAA(c *wire.Cursor, rdlength int) (*AAAA, error) {
	if rdlength != net.IPv6len {
		return nil, fmt.Errorf("%w: AAAA rdata of %d bytes", wire.ErrShortRdata, rdlength)
	}
	b, err := c.ReadBytes(net.IPv6len)
	if err != nil {
		return nil, err
	}
	return &AAAA{Addr: net.IP(b)}, nil
}

func parseAAAA(tokens []string) (*AAAA, error) {
	// tokens = ["2001:db8::1"]
	if len(tokens) != 1 {
		return nil, tokenError(0, "AAAA expects one address, got %d tokens", len(tokens))
	}
	ip := net.ParseIP(tokens[0])
	if ip == nil || ip.To4() != nil {
		return nil, tokenError(0, "invalid IPv6 address %q", tokens[0])
	}
	return &AAAA{Addr: ip.To16()}, nil
}
