// Package rrdata implements the per-type codecs for DNS resource record
// payloads. Every record kind offers the same contract: decode from wire,
// parse from presentation tokens, pack to wire (optionally canonical per
// RFC 4034 section 6.2), a worst-case length predictor used to size emit
// buffers, and a presentation String. Dispatch is always on the wire type
// code, never on concrete Go types.
package rrdata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/utils"
	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// ErrMalformedPresentation indicates presentation tokens that do not form a
// valid record body: wrong token count, an unparsable integer, or bad
// base16/base64 payload.
var ErrMalformedPresentation = errors.New("rrdata: malformed presentation")

// Rdata is the typed payload of a resource record.
type Rdata interface {
	// Type returns the wire type code the payload belongs to.
	Type() domain.RRType

	// Pack emits the payload at the cursor. comp collects compression
	// offsets for kinds whose names may be compressed; canonical selects
	// the RFC 4034 form (lowercased names, no pointers).
	Pack(c *wire.Cursor, comp *wire.CompressionMap, canonical bool) error

	// MaxLen returns an upper bound on the packed size, sufficient to
	// size an emit buffer. It need not be tight.
	MaxLen() int

	// String renders the payload in presentation form.
	String() string
}

// PackBytes packs rd into a fresh buffer of exactly the emitted size,
// using canonical form. This is the encoding the DNSSEC layer hashes.
func PackBytes(rd Rdata) ([]byte, error) {
	c := wire.EmitCursor(make([]byte, rd.MaxLen()))
	if err := rd.Pack(c, nil, true); err != nil {
		return nil, err
	}
	return c.Bytes(), nil
}

// tokenError annotates a presentation error with the index of the offending
// token.
func tokenError(i int, format string, args ...any) error {
	return fmt.Errorf("%w: token %d: %s", ErrMalformedPresentation, i, fmt.Sprintf(format, args...))
}

// nameFromToken resolves a presentation name token against origin: "@" is
// the origin itself, names without a trailing dot are relative to it, and
// the result is IDNA-normalized for the wire.
func nameFromToken(origin, tok string) string {
	if tok == "@" {
		return utils.PresentationDNSName(origin)
	}
	if !strings.HasSuffix(tok, ".") && origin != "" {
		tok = tok + "." + origin
	}
	return utils.PresentationDNSName(tok)
}

// packDomainName writes a name field. Only the record kinds listed in
// RFC 1035 section 4.1.4 may compress; others always emit literal labels.
func packDomainName(c *wire.Cursor, name string, comp *wire.CompressionMap, canonical, compressible bool) error {
	if !compressible {
		comp = nil
	}
	return wire.WriteName(c, name, comp, canonical)
}
