package rrdata

import (
	"fmt"
	"net"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// A is an IPv4 host address record payload.
type A struct {
	Addr net.IP
}

func (*A) Type() domain.RRType { return domain.RRTypeA }
func (*A) MaxLen() int         { return net.IPv4len }

func (a *A) String() string { return a.Addr.String() }

func (a *A) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	ip4 := a.Addr.To4()
	if ip4 == nil {
		return fmt.Errorf("not an IPv4 address: %s", a.Addr)
	}
	return c.WriteBytes(ip4)
}

func decodeA(c *wire.Cursor, rdlength int) (*A, error) {
	if rdlength != net.IPv4len {
		return nil, fmt.Errorf("%w: A rdata of %d bytes", wire.ErrShortRdata, rdlength)
	}
	b, err := c.ReadBytes(net.IPv4len)
	if err != nil {
		return nil, err
	}
	return &A{Addr: net.IP(b)}, nil
}

func parseA(tokens []string) (*A, error) {
	// tokens = ["192.168.0.1"]
	if len(tokens) != 1 {
		return nil, tokenError(0, "A expects one address, got %d tokens", len(tokens))
	}
	ip := net.ParseIP(tokens[0])
	if ip == nil || ip.To4() == nil {
		return nil, tokenError(0, "invalid IPv4 address %q", tokens[0])
	}
	return &A{Addr: ip.To4()}, nil
}
