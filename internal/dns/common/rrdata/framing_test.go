package rrdata

import (
	"errors"
	"net"
	"testing"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

func TestRecordRoundTripThroughFraming(t *testing.T) {
	rd := &A{Addr: net.IPv4(192, 0, 2, 53).To4()}
	buf := make([]byte, RecordMaxLen("host.example.com", rd))
	c := wire.EmitCursor(buf)
	comp := wire.NewCompressionMap()
	if err := EncodeRecord(c, "host.example.com", domain.RRClassIN, 300, rd, comp, false); err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}

	rc, _ := wire.NewCursor(c.Bytes())
	rr, decoded, err := DecodeRecord(rc)
	if err != nil {
		t.Fatalf("DecodeRecord: %v", err)
	}
	if rr.Name != "host.example.com" || rr.Type != domain.RRTypeA || rr.Class != domain.RRClassIN || rr.TTL != 300 {
		t.Fatalf("header = %+v", rr)
	}
	if decoded.(*A).Addr.String() != "192.0.2.53" {
		t.Fatalf("rdata = %s", decoded.String())
	}
	if rr.Text != "192.0.2.53" {
		t.Fatalf("Text = %q", rr.Text)
	}
}

func TestDecodeRejectsTrailingRdata(t *testing.T) {
	// a 4-byte A body declared as 5 bytes
	body := []byte{192, 0, 2, 1, 0xFF}
	if _, err := DecodeBytes(domain.RRTypeA, body); err == nil {
		t.Fatal("expected A codec to reject stray trailing byte")
	}
	// a root CNAME target followed by one stray byte
	c, _ := wire.NewCursor([]byte{0x00, 0xFF})
	_, err := Decode(domain.RRTypeCNAME, c, 2)
	if err == nil {
		t.Fatal("expected CNAME codec to reject trailing rdata")
	}
}

func TestDecodeRejectsShortRdata(t *testing.T) {
	// DS fixed header claims more than the buffer holds
	c, _ := wire.NewCursor([]byte{0x00, 0x01})
	if _, err := Decode(domain.RRTypeDS, c, 10); !errors.Is(err, wire.ErrShortRdata) {
		t.Fatalf("error = %v, want ErrShortRdata", err)
	}
}

func TestEncodeRecordPatchesRdlength(t *testing.T) {
	rd := &TXT{Segments: []string{"hello"}}
	buf := make([]byte, RecordMaxLen("example.org", rd))
	c := wire.EmitCursor(buf)
	if err := EncodeRecord(c, "example.org", domain.RRClassIN, 60, rd, nil, true); err != nil {
		t.Fatalf("EncodeRecord: %v", err)
	}
	out := c.Bytes()
	// rdlength sits right before the rdata: name(13) + type/class/ttl(8)
	off := 13 + 8
	got := int(out[off])<<8 | int(out[off+1])
	if got != 6 {
		t.Fatalf("rdlength = %d, want 6", got)
	}
}

func TestParseRecord(t *testing.T) {
	rr, rd, err := ParseRecord("example.com", "@", 3600, domain.RRClassIN, domain.RRTypeMX, []string{"10", "mail"})
	if err != nil {
		t.Fatalf("ParseRecord: %v", err)
	}
	if rr.Name != "example.com" {
		t.Errorf("owner = %q, want example.com", rr.Name)
	}
	if rd.(*MX).Exchange != "mail.example.com" {
		t.Errorf("exchange = %q, want mail.example.com", rd.(*MX).Exchange)
	}
	if len(rr.Data) == 0 || rr.Text != "10 mail.example.com." {
		t.Errorf("Data/Text = %v %q", rr.Data, rr.Text)
	}
}
