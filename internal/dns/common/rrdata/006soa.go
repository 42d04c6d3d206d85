package rrdata

import (
	"fmt"
	"strconv"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// SOA is a start-of-authority record payload.
type SOA struct {
	MName   string
	RName   string
	Serial  uint32
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minimum uint32
}

func (*SOA) Type() domain.RRType { return domain.RRTypeSOA }

func (r *SOA) MaxLen() int {
	return wire.NameWireLen(r.MName) + wire.NameWireLen(r.RName) + 20
}

func (r *SOA) String() string {
	return fmt.Sprintf("%s. %s. %d %d %d %d %d",
		r.MName, r.RName, r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum)
}

func (r *SOA) Pack(c *wire.Cursor, comp *wire.CompressionMap, canonical bool) error {
	if err := packDomainName(c, r.MName, comp, canonical, true); err != nil {
		return err
	}
	if err := packDomainName(c, r.RName, comp, canonical, true); err != nil {
		return err
	}
	for _, v := range [5]uint32{r.Serial, r.Refresh, r.Retry, r.Expire, r.Minimum} {
		if err := c.WriteUint32(v); err != nil {
			return err
		}
	}
	return nil
}

func decodeSOA(c *wire.Cursor, _ int) (*SOA, error) {
	mname, err := wire.ReadName(c)
	if err != nil {
		return nil, err
	}
	rname, err := wire.ReadName(c)
	if err != nil {
		return nil, err
	}
	var fields [5]uint32
	for i := range fields {
		if fields[i], err = c.ReadUint32(); err != nil {
			return nil, err
		}
	}
	return &SOA{
		MName:   mname,
		RName:   rname,
		Serial:  fields[0],
		Refresh: fields[1],
		Retry:   fields[2],
		Expire:  fields[3],
		Minimum: fields[4],
	}, nil
}

func parseSOA(origin string, tokens []string) (*SOA, error) {
	// tokens = ["ns1.example.com.", "hostmaster.example.com.", serial, refresh, retry, expire, minimum]
	if len(tokens) != 7 {
		return nil, tokenError(0, "SOA expects 7 fields, got %d tokens", len(tokens))
	}
	var fields [5]uint32
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseUint(tokens[i+2], 10, 32)
		if err != nil {
			return nil, tokenError(i+2, "invalid SOA integer %q", tokens[i+2])
		}
		fields[i] = uint32(v)
	}
	return &SOA{
		MName:   nameFromToken(origin, tokens[0]),
		RName:   nameFromToken(origin, tokens[1]),
		Serial:  fields[0],
		Refresh: fields[1],
		Retry:   fields[2],
		Expire:  fields[3],
		Minimum: fields[4],
	}, nil
}
