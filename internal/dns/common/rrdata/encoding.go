package rrdata

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// Encode packs rd at the cursor and verifies the codec stayed inside its
// own MaxLen prediction. The rdlength actually written is returned so the
// framing layer can patch it into the header.
func Encode(rd Rdata, c *wire.Cursor, comp *wire.CompressionMap, canonical bool) (int, error) {
	start := c.Pos()
	if err := rd.Pack(c, comp, canonical); err != nil {
		return 0, err
	}
	n := c.Pos() - start
	if n > rd.MaxLen() {
		return 0, fmt.Errorf("%s codec wrote %d bytes, predicted at most %d", rd.Type(), n, rd.MaxLen())
	}
	if n > 0xFFFF {
		return 0, fmt.Errorf("%s rdata of %d bytes exceeds rdlength field", rd.Type(), n)
	}
	return n, nil
}

// Parse converts presentation tokens into a typed record payload. origin
// resolves relative name tokens; master-file quoting conventions apply.
func Parse(rrType domain.RRType, origin string, tokens []string) (Rdata, error) {
	switch rrType {
	case domain.RRTypeA: // 1
		return parseA(tokens)
	case domain.RRTypeNS: // 2
		return parseNS(origin, tokens)
	case domain.RRTypeCNAME: // 5
		return parseCNAME(origin, tokens)
	case domain.RRTypeSOA: // 6
		return parseSOA(origin, tokens)
	case domain.RRTypeWKS: // 11
		return parseWKS(tokens)
	case domain.RRTypePTR: // 12
		return parsePTR(origin, tokens)
	case domain.RRTypeHINFO: // 13
		return parseHINFO(tokens)
	case domain.RRTypeMX: // 15
		return parseMX(origin, tokens)
	case domain.RRTypeTXT: // 16
		return parseTXT(tokens)
	case domain.RRTypeAAAA: // 28
		return parseAAAA(tokens)
	case domain.RRTypeSRV: // 33
		return parseSRV(origin, tokens)
	case domain.RRTypeDS: // 43
		return parseDS(tokens)
	case domain.RRTypeNSEC: // 47
		return parseNSEC(origin, tokens)
	case domain.RRTypeDNSKEY: // 48
		return parseDNSKEY(tokens)
	case domain.RRTypeNSEC3: // 50
		return parseNSEC3(origin, tokens)
	case domain.RRTypeCSYNC: // 62
		return parseCSYNC(tokens)
	case domain.RRTypeCAA: // 257
		return parseCAA(tokens)
	default:
		return parseUnknown(rrType, tokens)
	}
}
