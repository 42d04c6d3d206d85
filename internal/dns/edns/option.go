// Package edns implements EDNS0 option codecs for the OPT pseudo-record
// (RFC 6891). Options follow the same contract as the rdata codecs: decode
// from wire, pack to wire, a length predictor, and a presentation String.
// Option payloads never contain domain names, so there is no compression
// or canonical mode here.
package edns

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
)

// EDNS0 option codes (IANA DNS EDNS0 Option Codes registry).
const (
	CodeOwner uint16 = 4 // draft-cheshire-edns0-owner-option
	CodeDAU   uint16 = 5 // RFC 6975
	CodeDHU   uint16 = 6 // RFC 6975
	CodeN3U   uint16 = 7 // RFC 6975
)

// Option is one EDNS0 (code, length, data) triple in typed form.
type Option interface {
	// Code returns the option code.
	Code() uint16

	// Pack emits the option data (not the code/length header).
	Pack(c *wire.Cursor) error

	// MaxLen bounds the packed data size.
	MaxLen() int

	// String renders the option data for presentation.
	String() string
}

// DecodeOption reads one complete option: code, length, then the typed
// data. Option codes without a codec decode as Unknown.
func DecodeOption(c *wire.Cursor) (Option, error) {
	code, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	length, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	data, err := c.ReadBytes(int(length))
	if err != nil {
		return nil, err
	}
	body, err := wire.NewCursor(data)
	if err != nil {
		return nil, err
	}

	var opt Option
	switch code {
	case CodeOwner:
		opt, err = decodeOwner(body, int(length))
	case CodeN3U:
		opt, err = decodeN3U(body, int(length))
	default:
		opt = &Unknown{OptionCode: code, Data: data}
		_ = body.Seek(len(data))
	}
	if err != nil {
		return nil, err
	}
	if body.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d bytes after option %d data", wire.ErrTrailingRdata, body.Remaining(), code)
	}
	return opt, nil
}

// EncodeOption writes one complete option: code, patched length, data.
func EncodeOption(c *wire.Cursor, opt Option) error {
	if err := c.WriteUint16(opt.Code()); err != nil {
		return err
	}
	lenPos := c.Pos()
	if err := c.WriteUint16(0); err != nil {
		return err
	}
	if err := opt.Pack(c); err != nil {
		return err
	}
	end := c.Pos()
	if err := c.Seek(lenPos); err != nil {
		return err
	}
	if err := c.WriteUint16(uint16(end - lenPos - 2)); err != nil {
		return err
	}
	return c.Seek(end)
}

// OptionMaxLen bounds the full wire size of an option.
func OptionMaxLen(opt Option) int { return 4 + opt.MaxLen() }

// Unknown carries an option without a registered codec, byte-for-byte.
type Unknown struct {
	OptionCode uint16
	Data       []byte
}

func (o *Unknown) Code() uint16 { return o.OptionCode }
func (o *Unknown) MaxLen() int  { return len(o.Data) }

func (o *Unknown) String() string {
	return fmt.Sprintf("OPT%d %s", o.OptionCode, strings.ToUpper(hex.EncodeToString(o.Data)))
}

func (o *Unknown) Pack(c *wire.Cursor) error { return c.WriteBytes(o.Data) }
