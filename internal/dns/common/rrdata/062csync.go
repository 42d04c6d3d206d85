package rrdata

import (
	"fmt"
	"strconv"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// CSYNC flag bits (RFC 7477 section 2.1.1.2).
const (
	CSYNCFlagImmediate  uint16 = 0x0001
	CSYNCFlagSOAMinimum uint16 = 0x0002
)

// CSYNC is a child-to-parent synchronization record payload: the SOA
// serial to synchronize from, processing flags, and the set of record
// types the parent should copy. The type list is sorted and deduplicated
// at construction.
type CSYNC struct {
	Serial uint32
	Flags  uint16
	Types  []domain.RRType
}

// NewCSYNC constructs a CSYNC payload with a normalized type list.
func NewCSYNC(serial uint32, flags uint16, types []domain.RRType) *CSYNC {
	return &CSYNC{Serial: serial, Flags: flags, Types: normalizeTypes(types)}
}

func (*CSYNC) Type() domain.RRType { return domain.RRTypeCSYNC }

func (r *CSYNC) MaxLen() int { return 6 + typeBitmapMaxLen(r.Types) }

func (r *CSYNC) String() string {
	s := fmt.Sprintf("%d %d", r.Serial, r.Flags)
	if len(r.Types) > 0 {
		s += " " + typesToString(r.Types)
	}
	return s
}

func (r *CSYNC) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	if err := c.WriteUint32(r.Serial); err != nil {
		return err
	}
	if err := c.WriteUint16(r.Flags); err != nil {
		return err
	}
	return packTypeBitmap(c, r.Types)
}

func decodeCSYNC(c *wire.Cursor, rdlength int) (*CSYNC, error) {
	if rdlength < 6 {
		return nil, fmt.Errorf("%w: CSYNC rdata of %d bytes", wire.ErrShortRdata, rdlength)
	}
	end := c.Pos() + rdlength
	serial, err := c.ReadUint32()
	if err != nil {
		return nil, err
	}
	flags, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	types, err := decodeTypeBitmap(c, end)
	if err != nil {
		return nil, err
	}
	return &CSYNC{Serial: serial, Flags: flags, Types: types}, nil
}

func parseCSYNC(tokens []string) (*CSYNC, error) {
	// tokens = ["66", "3", "A", "NS", "AAAA"]
	if len(tokens) < 2 {
		return nil, tokenError(0, "CSYNC expects serial, flags, and types, got %d tokens", len(tokens))
	}
	serial, err := strconv.ParseUint(tokens[0], 10, 32)
	if err != nil {
		return nil, tokenError(0, "invalid CSYNC serial %q", tokens[0])
	}
	flags, err := strconv.ParseUint(tokens[1], 10, 16)
	if err != nil {
		return nil, tokenError(1, "invalid CSYNC flags %q", tokens[1])
	}
	types, err := typesFromTokens(tokens[2:], 2)
	if err != nil {
		return nil, err
	}
	return NewCSYNC(uint32(serial), uint16(flags), types), nil
}
