package rrdata

import (
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// TXT is a text record payload: one or more character-strings.
type TXT struct {
	Segments []string
}

func (*TXT) Type() domain.RRType { return domain.RRTypeTXT }

func (r *TXT) MaxLen() int {
	n := 0
	for _, s := range r.Segments {
		n += 1 + len(s)
	}
	return n
}

func (r *TXT) String() string {
	quoted := make([]string, len(r.Segments))
	for i, s := range r.Segments {
		quoted[i] = quoteCharString(s)
	}
	return strings.Join(quoted, " ")
}

func (r *TXT) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	for _, s := range r.Segments {
		if err := c.WriteCharString([]byte(s)); err != nil {
			return err
		}
	}
	return nil
}

func decodeTXT(c *wire.Cursor, rdlength int) (*TXT, error) {
	end := c.Pos() + rdlength
	var segments []string
	for c.Pos() < end {
		s, err := c.ReadCharString()
		if err != nil {
			return nil, err
		}
		segments = append(segments, string(s))
	}
	return &TXT{Segments: segments}, nil
}

func parseTXT(tokens []string) (*TXT, error) {
	// tokens = [`"v=spf1 -all"`] or bare words, one segment per token
	if len(tokens) == 0 {
		return nil, tokenError(0, "TXT expects at least one string")
	}
	segments := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		s, err := unquoteCharString(tok)
		if err != nil {
			return nil, tokenError(i, "%v", err)
		}
		if len(s) > 255 {
			return nil, tokenError(i, "TXT segment of %d octets", len(s))
		}
		segments = append(segments, s)
	}
	return &TXT{Segments: segments}, nil
}
