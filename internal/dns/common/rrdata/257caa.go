package rrdata

import (
	"fmt"
	"strconv"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// CAA is a certification authority authorization record payload.
type CAA struct {
	Flag  uint8
	Tag   string
	Value string
}

func (*CAA) Type() domain.RRType { return domain.RRTypeCAA }

func (r *CAA) MaxLen() int { return 2 + len(r.Tag) + len(r.Value) }

func (r *CAA) String() string {
	return fmt.Sprintf("%d %s %s", r.Flag, r.Tag, quoteCharString(r.Value))
}

func (r *CAA) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	if err := c.WriteUint8(r.Flag); err != nil {
		return err
	}
	if err := c.WriteCharString([]byte(r.Tag)); err != nil {
		return err
	}
	// the value runs to the end of the rdata with no length prefix
	return c.WriteBytes([]byte(r.Value))
}

func decodeCAA(c *wire.Cursor, rdlength int) (*CAA, error) {
	if rdlength < 2 {
		return nil, fmt.Errorf("%w: CAA rdata of %d bytes", wire.ErrShortRdata, rdlength)
	}
	end := c.Pos() + rdlength
	flag, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	tag, err := c.ReadCharString()
	if err != nil {
		return nil, err
	}
	if c.Pos() > end {
		return nil, fmt.Errorf("%w: CAA tag overruns rdata", wire.ErrShortRdata)
	}
	value, err := c.ReadBytes(end - c.Pos())
	if err != nil {
		return nil, err
	}
	return &CAA{Flag: flag, Tag: string(tag), Value: string(value)}, nil
}

func parseCAA(tokens []string) (*CAA, error) {
	// tokens = ["0", "issue", `"ca.example.net"`]
	if len(tokens) != 3 {
		return nil, tokenError(0, "CAA expects flag, tag, and value, got %d tokens", len(tokens))
	}
	flag, err := strconv.ParseUint(tokens[0], 10, 8)
	if err != nil {
		return nil, tokenError(0, "invalid CAA flag %q", tokens[0])
	}
	if len(tokens[1]) == 0 || len(tokens[1]) > 255 {
		return nil, tokenError(1, "invalid CAA tag %q", tokens[1])
	}
	value, err := unquoteCharString(tokens[2])
	if err != nil {
		return nil, tokenError(2, "%v", err)
	}
	return &CAA{Flag: uint8(flag), Tag: tokens[1], Value: value}, nil
}
