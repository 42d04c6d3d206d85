package rrdata

import (
	"fmt"
	"net"
	"slices"
	"strconv"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// WKS is a well-known services record payload (RFC 1035 section 3.4.2):
// an IPv4 address, an IP protocol number, and the set of open ports. On
// the wire the ports are an MSB-first bitmap where bit n of octet k names
// port 8k + n counted from the most significant bit.
type WKS struct {
	Addr     net.IP
	Protocol uint8
	Ports    []uint16 // sorted, deduplicated
}

// NewWKS constructs a WKS payload with a normalized port set.
func NewWKS(addr net.IP, protocol uint8, ports []uint16) *WKS {
	out := slices.Clone(ports)
	slices.Sort(out)
	return &WKS{Addr: addr, Protocol: protocol, Ports: slices.Compact(out)}
}

func (*WKS) Type() domain.RRType { return domain.RRTypeWKS }

func (r *WKS) MaxLen() int {
	n := net.IPv4len + 1
	if len(r.Ports) > 0 {
		n += int(r.Ports[len(r.Ports)-1])/8 + 1
	}
	return n
}

func (r *WKS) String() string {
	parts := make([]string, 0, 2+len(r.Ports))
	parts = append(parts, r.Addr.String(), strconv.Itoa(int(r.Protocol)))
	for _, p := range r.Ports {
		parts = append(parts, strconv.Itoa(int(p)))
	}
	return strings.Join(parts, " ")
}

func (r *WKS) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	ip4 := r.Addr.To4()
	if ip4 == nil {
		return fmt.Errorf("not an IPv4 address: %s", r.Addr)
	}
	if err := c.WriteBytes(ip4); err != nil {
		return err
	}
	if err := c.WriteUint8(r.Protocol); err != nil {
		return err
	}
	if len(r.Ports) == 0 {
		return nil
	}
	bitmap := make([]byte, int(r.Ports[len(r.Ports)-1])/8+1)
	for _, p := range r.Ports {
		bitmap[p/8] |= 1 << (7 - p%8)
	}
	return c.WriteBytes(bitmap)
}

func decodeWKS(c *wire.Cursor, rdlength int) (*WKS, error) {
	if rdlength < net.IPv4len+1 {
		return nil, fmt.Errorf("%w: WKS rdata of %d bytes", wire.ErrShortRdata, rdlength)
	}
	addr, err := c.ReadBytes(net.IPv4len)
	if err != nil {
		return nil, err
	}
	protocol, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	// the bitmap is however many octets remain in the rdata
	bitmap, err := c.ReadBytes(rdlength - net.IPv4len - 1)
	if err != nil {
		return nil, err
	}
	var ports []uint16
	for k, octet := range bitmap {
		for bit := 0; bit < 8; bit++ {
			if octet&(1<<(7-bit)) != 0 {
				ports = append(ports, uint16(8*k+bit))
			}
		}
	}
	return &WKS{Addr: net.IP(addr), Protocol: protocol, Ports: ports}, nil
}

func parseWKS(tokens []string) (*WKS, error) {
	// tokens = ["10.0.0.1", "6", "25", "80"]
	if len(tokens) < 2 {
		return nil, tokenError(0, "WKS expects address, protocol, and ports, got %d tokens", len(tokens))
	}
	ip := net.ParseIP(tokens[0])
	if ip == nil || ip.To4() == nil {
		return nil, tokenError(0, "invalid IPv4 address %q", tokens[0])
	}
	proto, err := strconv.ParseUint(tokens[1], 10, 8)
	if err != nil {
		return nil, tokenError(1, "invalid protocol %q", tokens[1])
	}
	ports := make([]uint16, 0, len(tokens)-2)
	for i, tok := range tokens[2:] {
		p, err := strconv.ParseUint(tok, 10, 16)
		if err != nil {
			return nil, tokenError(i+2, "invalid port %q", tok)
		}
		ports = append(ports, uint16(p))
	}
	return NewWKS(ip.To4(), uint8(proto), ports), nil
}
