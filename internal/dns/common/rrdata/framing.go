package rrdata

import (
	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// DecodeRecord reads one resource record at the cursor: owner name, type,
// class, TTL, rdlength, and the typed rdata. The codec must consume the
// rdata exactly; Decode enforces that. The returned ResourceRecord carries
// the canonical re-encoded rdata bytes and the presentation text alongside
// the typed payload.
func DecodeRecord(c *wire.Cursor) (domain.ResourceRecord, Rdata, error) {
	name, err := wire.ReadName(c)
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	rrtype, err := c.ReadUint16()
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	class, err := c.ReadUint16()
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	ttl, err := c.ReadUint32()
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	rdlength, err := c.ReadUint16()
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	rd, err := Decode(domain.RRType(rrtype), c, int(rdlength))
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	data, err := PackBytes(rd)
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	rr := domain.ResourceRecord{
		Name:  name,
		Type:  domain.RRType(rrtype),
		Class: domain.RRClass(class),
		TTL:   ttl,
		Data:  data,
		Text:  rd.String(),
	}
	return rr, rd, nil
}

// EncodeRecord writes one resource record at the cursor: header, a
// placeholder rdlength, the packed rdata, then the patched rdlength. comp
// carries name compression offsets across the whole message; canonical
// selects the RFC 4034 form for both owner and rdata.
func EncodeRecord(c *wire.Cursor, name string, class domain.RRClass, ttl uint32, rd Rdata, comp *wire.CompressionMap, canonical bool) error {
	if err := wire.WriteName(c, name, comp, canonical); err != nil {
		return err
	}
	if err := c.WriteUint16(uint16(rd.Type())); err != nil {
		return err
	}
	if err := c.WriteUint16(uint16(class)); err != nil {
		return err
	}
	if err := c.WriteUint32(ttl); err != nil {
		return err
	}
	lenPos := c.Pos()
	if err := c.WriteUint16(0); err != nil {
		return err
	}
	n, err := Encode(rd, c, comp, canonical)
	if err != nil {
		return err
	}
	end := c.Pos()
	if err := c.Seek(lenPos); err != nil {
		return err
	}
	if err := c.WriteUint16(uint16(n)); err != nil {
		return err
	}
	return c.Seek(end)
}

// RecordMaxLen bounds the wire size of a record emitted uncompressed.
func RecordMaxLen(name string, rd Rdata) int {
	return wire.NameWireLen(name) + 10 + rd.MaxLen()
}

// ParseRecord builds a full ResourceRecord from presentation parts: owner
// token, TTL, class, type, and the rdata tokens. The rdata is packed
// canonically to populate Data.
func ParseRecord(origin, owner string, ttl uint32, class domain.RRClass, rrtype domain.RRType, tokens []string) (domain.ResourceRecord, Rdata, error) {
	rd, err := Parse(rrtype, origin, tokens)
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	data, err := PackBytes(rd)
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	rr, err := domain.NewResourceRecord(nameFromToken(origin, owner), rrtype, class, ttl, data, rd.String())
	if err != nil {
		return domain.ResourceRecord{}, nil, err
	}
	return rr, rd, nil
}
