package rrdata

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// Unknown carries the rdata of a record type without a registered codec,
// using the RFC 3597 opaque representation. It round-trips bytes verbatim
// and renders as `\# <length> <hex>`.
type Unknown struct {
	Code domain.RRType
	Data []byte
}

func (r *Unknown) Type() domain.RRType { return r.Code }

func (r *Unknown) MaxLen() int { return len(r.Data) }

func (r *Unknown) String() string {
	if len(r.Data) == 0 {
		return `\# 0`
	}
	return fmt.Sprintf(`\# %d %s`, len(r.Data), strings.ToUpper(hex.EncodeToString(r.Data)))
}

func (r *Unknown) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	return c.WriteBytes(r.Data)
}

func decodeUnknown(code domain.RRType, c *wire.Cursor, rdlength int) (*Unknown, error) {
	data, err := c.ReadBytes(rdlength)
	if err != nil {
		return nil, err
	}
	return &Unknown{Code: code, Data: data}, nil
}

func parseUnknown(code domain.RRType, tokens []string) (*Unknown, error) {
	// tokens = ["\#", "4", "0A000001"]
	if len(tokens) < 2 || tokens[0] != `\#` {
		return nil, tokenError(0, "%s has no presentation codec; use the RFC 3597 form", code)
	}
	n, err := strconv.Atoi(tokens[1])
	if err != nil || n < 0 {
		return nil, tokenError(1, "invalid rdata length %q", tokens[1])
	}
	data, err := hex.DecodeString(strings.Join(tokens[2:], ""))
	if err != nil {
		return nil, tokenError(2, "invalid hex rdata: %v", err)
	}
	if len(data) != n {
		return nil, tokenError(1, "rdata length %d does not match %d hex octets", n, len(data))
	}
	return &Unknown{Code: code, Data: data}, nil
}
