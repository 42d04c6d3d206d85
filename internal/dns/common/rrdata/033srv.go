package rrdata

import (
	"fmt"
	"strconv"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// SRV is a service locator record payload. The target name is never
// compressed (RFC 2782).
type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (*SRV) Type() domain.RRType { return domain.RRTypeSRV }

func (r *SRV) MaxLen() int { return 6 + wire.NameWireLen(r.Target) }

func (r *SRV) String() string {
	return fmt.Sprintf("%d %d %d %s.", r.Priority, r.Weight, r.Port, r.Target)
}

func (r *SRV) Pack(c *wire.Cursor, _ *wire.CompressionMap, canonical bool) error {
	for _, v := range [3]uint16{r.Priority, r.Weight, r.Port} {
		if err := c.WriteUint16(v); err != nil {
			return err
		}
	}
	return packDomainName(c, r.Target, nil, canonical, false)
}

func decodeSRV(c *wire.Cursor, _ int) (*SRV, error) {
	var fields [3]uint16
	var err error
	for i := range fields {
		if fields[i], err = c.ReadUint16(); err != nil {
			return nil, err
		}
	}
	target, err := wire.ReadName(c)
	if err != nil {
		return nil, err
	}
	return &SRV{Priority: fields[0], Weight: fields[1], Port: fields[2], Target: target}, nil
}

func parseSRV(origin string, tokens []string) (*SRV, error) {
	// tokens = ["10", "60", "5060", "sip.example.com."]
	if len(tokens) != 4 {
		return nil, tokenError(0, "SRV expects 4 fields, got %d tokens", len(tokens))
	}
	var fields [3]uint16
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(tokens[i], 10, 16)
		if err != nil {
			return nil, tokenError(i, "invalid SRV integer %q", tokens[i])
		}
		fields[i] = uint16(v)
	}
	return &SRV{
		Priority: fields[0],
		Weight:   fields[1],
		Port:     fields[2],
		Target:   nameFromToken(origin, tokens[3]),
	}, nil
}
