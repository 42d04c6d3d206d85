package rrdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// Decode decodes a typed record payload from the cursor, consuming exactly
// rdlength octets. Names inside the rdata may point back into the message
// the cursor was built over.
func Decode(rrType domain.RRType, c *wire.Cursor, rdlength int) (Rdata, error) {
	if rdlength < 0 || c.Remaining() < rdlength {
		return nil, fmt.Errorf("%w: rdlength %d exceeds message", wire.ErrShortRdata, rdlength)
	}
	end := c.Pos() + rdlength

	var (
		rd  Rdata
		err error
	)
	switch rrType {
	case domain.RRTypeA: // 1
		rd, err = decodeA(c, rdlength)
	case domain.RRTypeNS: // 2
		rd, err = decodeNS(c, rdlength)
	case domain.RRTypeCNAME: // 5
		rd, err = decodeCNAME(c, rdlength)
	case domain.RRTypeSOA: // 6
		rd, err = decodeSOA(c, rdlength)
	case domain.RRTypeWKS: // 11
		rd, err = decodeWKS(c, rdlength)
	case domain.RRTypePTR: // 12
		rd, err = decodePTR(c, rdlength)
	case domain.RRTypeHINFO: // 13
		rd, err = decodeHINFO(c, rdlength)
	case domain.RRTypeMX: // 15
		rd, err = decodeMX(c, rdlength)
	case domain.RRTypeTXT: // 16
		rd, err = decodeTXT(c, rdlength)
	case domain.RRTypeAAAA: // 28
		rd, err = decodeAAAA(c, rdlength)
	case domain.RRTypeSRV: // 33
		rd, err = decodeSRV(c, rdlength)
	case domain.RRTypeDS: // 43
		rd, err = decodeDS(c, rdlength)
	case domain.RRTypeNSEC: // 47
		rd, err = decodeNSEC(c, rdlength)
	case domain.RRTypeDNSKEY: // 48
		rd, err = decodeDNSKEY(c, rdlength)
	case domain.RRTypeNSEC3: // 50
		rd, err = decodeNSEC3(c, rdlength)
	case domain.RRTypeCSYNC: // 62
		rd, err = decodeCSYNC(c, rdlength)
	case domain.RRTypeCAA: // 257
		rd, err = decodeCAA(c, rdlength)
	default:
		rd, err = decodeUnknown(rrType, c, rdlength)
	}
	if err != nil {
		return nil, err
	}

	switch {
	case c.Pos() > end:
		return nil, fmt.Errorf("%w: %s codec read %d past rdlength", wire.ErrShortRdata, rrType, c.Pos()-end)
	case c.Pos() < end:
		return nil, fmt.Errorf("%w: %d bytes after %s rdata", wire.ErrTrailingRdata, end-c.Pos(), rrType)
	}
	return rd, nil
}

// DecodeBytes decodes a stand-alone rdata body (no surrounding message).
func DecodeBytes(rrType domain.RRType, body []byte) (Rdata, error) {
	c, err := wire.NewCursor(body)
	if err != nil {
		return nil, err
	}
	return Decode(rrType, c, len(body))
}
