package rrdata

import (
	"fmt"
	"slices"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// The windowed type bitmap shared by NSEC, NSEC3, and CSYNC (RFC 4034
// section 4.1.2). Each window is: window number, octet count (1..32), then
// the octets. Bit b of octet o inside window w names type w*256 + o*8 +
// (7-b). Windows appear in ascending order, only when populated, with
// trailing zero octets trimmed.

const maxWindowOctets = 32

// decodeTypeBitmap reads windows until the cursor reaches end (an absolute
// offset). The returned type list is sorted and deduplicated by
// construction.
func decodeTypeBitmap(c *wire.Cursor, end int) ([]domain.RRType, error) {
	var types []domain.RRType
	lastWindow := -1
	for c.Pos() < end {
		window, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		count, err := c.ReadUint8()
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, fmt.Errorf("%w: empty bitmap window %d", wire.ErrShortRdata, window)
		}
		if count > maxWindowOctets {
			return nil, fmt.Errorf("%w: bitmap window %d of %d octets", wire.ErrShortRdata, window, count)
		}
		if int(window) <= lastWindow {
			return nil, fmt.Errorf("%w: bitmap window %d out of order", wire.ErrShortRdata, window)
		}
		lastWindow = int(window)
		if c.Pos()+int(count) > end {
			return nil, fmt.Errorf("%w: bitmap window %d overruns rdata", wire.ErrShortRdata, window)
		}
		octets, err := c.ReadBytes(int(count))
		if err != nil {
			return nil, err
		}
		for o, b := range octets {
			for bit := 0; bit < 8; bit++ {
				if b&(1<<(7-bit)) != 0 {
					types = append(types, domain.RRType(int(window)*256+o*8+bit))
				}
			}
		}
	}
	return types, nil
}

// packTypeBitmap emits the windows for a sorted, deduplicated type list.
func packTypeBitmap(c *wire.Cursor, types []domain.RRType) error {
	i := 0
	for i < len(types) {
		window := uint16(types[i]) / 256
		var octets [maxWindowOctets]byte
		count := 0
		for ; i < len(types) && uint16(types[i])/256 == window; i++ {
			inWindow := uint16(types[i]) % 256
			octets[inWindow/8] |= 1 << (7 - inWindow%8)
			count = int(inWindow/8) + 1
		}
		if err := c.WriteUint8(uint8(window)); err != nil {
			return err
		}
		if err := c.WriteUint8(uint8(count)); err != nil {
			return err
		}
		if err := c.WriteBytes(octets[:count]); err != nil {
			return err
		}
	}
	return nil
}

// typeBitmapMaxLen bounds the emitted bitmap size: per populated window,
// two header octets plus octets up to the highest type in the window.
func typeBitmapMaxLen(types []domain.RRType) int {
	n := 0
	i := 0
	for i < len(types) {
		window := uint16(types[i]) / 256
		var highest uint16
		for ; i < len(types) && uint16(types[i])/256 == window; i++ {
			highest = uint16(types[i]) % 256
		}
		n += 2 + int(highest/8) + 1
	}
	return n
}

// normalizeTypes returns a sorted, deduplicated copy of types.
func normalizeTypes(types []domain.RRType) []domain.RRType {
	out := slices.Clone(types)
	slices.Sort(out)
	return slices.Compact(out)
}

// typesToString renders a type list as space-separated mnemonics.
func typesToString(types []domain.RRType) string {
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = t.String()
	}
	return strings.Join(names, " ")
}

// typesFromTokens parses type mnemonics, one per token, starting at token
// index base (used only for error positions).
func typesFromTokens(tokens []string, base int) ([]domain.RRType, error) {
	types := make([]domain.RRType, 0, len(tokens))
	for i, tok := range tokens {
		t := domain.RRTypeFromString(strings.ToUpper(tok))
		if t == 0 {
			return nil, tokenError(base+i, "unknown record type %q", tok)
		}
		types = append(types, t)
	}
	return normalizeTypes(types), nil
}
