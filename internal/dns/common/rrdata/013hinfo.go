package rrdata

import (
	"fmt"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// HINFO is a host information record payload: CPU and OS character-strings.
type HINFO struct {
	CPU string
	OS  string
}

func (*HINFO) Type() domain.RRType { return domain.RRTypeHINFO }

func (r *HINFO) MaxLen() int { return 1 + len(r.CPU) + 1 + len(r.OS) }

func (r *HINFO) String() string {
	return quoteCharString(r.CPU) + " " + quoteCharString(r.OS)
}

func (r *HINFO) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	if err := c.WriteCharString([]byte(r.CPU)); err != nil {
		return err
	}
	return c.WriteCharString([]byte(r.OS))
}

func decodeHINFO(c *wire.Cursor, _ int) (*HINFO, error) {
	cpu, err := c.ReadCharString()
	if err != nil {
		return nil, err
	}
	os, err := c.ReadCharString()
	if err != nil {
		return nil, err
	}
	return &HINFO{CPU: string(cpu), OS: string(os)}, nil
}

func parseHINFO(tokens []string) (*HINFO, error) {
	// tokens = [`"AMD64"`, `"Linux"`]
	if len(tokens) != 2 {
		return nil, tokenError(0, "HINFO expects CPU and OS, got %d tokens", len(tokens))
	}
	cpu, err := unquoteCharString(tokens[0])
	if err != nil {
		return nil, tokenError(0, "%v", err)
	}
	os, err := unquoteCharString(tokens[1])
	if err != nil {
		return nil, tokenError(1, "%v", err)
	}
	if len(cpu) > 255 || len(os) > 255 {
		return nil, tokenError(0, "HINFO string over 255 octets")
	}
	return &HINFO{CPU: cpu, OS: os}, nil
}

// quoteCharString renders a character-string for presentation, quoting it
// and backslash-escaping embedded quotes and backslashes.
func quoteCharString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"', '\\':
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
	return b.String()
}

// unquoteCharString reverses quoteCharString. Unquoted tokens pass through
// verbatim.
func unquoteCharString(tok string) (string, error) {
	if !strings.HasPrefix(tok, `"`) {
		if strings.ContainsAny(tok, `"\`) {
			return "", fmt.Errorf("unquoted string contains quote characters: %s", tok)
		}
		return tok, nil
	}
	if len(tok) < 2 || !strings.HasSuffix(tok, `"`) {
		return "", fmt.Errorf("unterminated quoted string: %s", tok)
	}
	body := tok[1 : len(tok)-1]
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' {
			i++
			if i == len(body) {
				return "", fmt.Errorf("dangling escape in quoted string: %s", tok)
			}
		}
		b.WriteByte(body[i])
	}
	return b.String(), nil
}
