package wire

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestWriteNameUncompressed(t *testing.T) {
	buf := make([]byte, 64)
	c := &Cursor{buf: buf}
	if err := WriteName(c, "alias.example.net", nil, true); err != nil {
		t.Fatalf("WriteName: %v", err)
	}
	want := []byte{
		0x05, 'a', 'l', 'i', 'a', 's',
		0x07, 'e', 'x', 'a', 'm', 'p', 'l', 'e',
		0x03, 'n', 'e', 't',
		0x00,
	}
	if !bytes.Equal(c.Bytes(), want) {
		t.Fatalf("WriteName = % x, want % x", c.Bytes(), want)
	}
}

func TestWriteNameCanonicalLowercases(t *testing.T) {
	buf := make([]byte, 64)
	c := &Cursor{buf: buf}
	if err := WriteName(c, "WWW.Example.COM", nil, true); err != nil {
		t.Fatalf("WriteName: %v", err)
	}
	want := []byte{3, 'w', 'w', 'w', 7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	if !bytes.Equal(c.Bytes(), want) {
		t.Fatalf("WriteName = % x, want % x", c.Bytes(), want)
	}
}

func TestWriteNameCompression(t *testing.T) {
	buf := make([]byte, 64)
	c := &Cursor{buf: buf}
	comp := NewCompressionMap()
	if err := WriteName(c, "example.com", comp, false); err != nil {
		t.Fatalf("first WriteName: %v", err)
	}
	first := c.Pos()
	if err := WriteName(c, "example.com", comp, false); err != nil {
		t.Fatalf("second WriteName: %v", err)
	}
	// second occurrence is exactly a two-octet pointer to offset 0
	if c.Pos()-first != 2 {
		t.Fatalf("compressed name used %d bytes, want 2", c.Pos()-first)
	}
	if buf[first] != 0xC0 || buf[first+1] != 0x00 {
		t.Fatalf("pointer bytes = %#x %#x, want 0xc0 0x00", buf[first], buf[first+1])
	}

	// a sibling shares the "com" suffix
	if err := WriteName(c, "www.com", comp, false); err != nil {
		t.Fatalf("third WriteName: %v", err)
	}
	want := []byte{3, 'w', 'w', 'w', 0xC0, 0x08}
	if !bytes.Equal(buf[first+2:c.Pos()], want) {
		t.Fatalf("suffix-compressed name = % x, want % x", buf[first+2:c.Pos()], want)
	}
}

func TestWriteNameCanonicalNeverCompresses(t *testing.T) {
	buf := make([]byte, 128)
	c := &Cursor{buf: buf}
	comp := NewCompressionMap()
	for i := 0; i < 3; i++ {
		if err := WriteName(c, "host.example.org", comp, true); err != nil {
			t.Fatalf("WriteName %d: %v", i, err)
		}
	}
	for _, b := range c.Bytes() {
		if b >= 0xC0 {
			t.Fatalf("canonical emit contains pointer byte %#x", b)
		}
	}
}

func TestReadNameRoundTrip(t *testing.T) {
	buf := make([]byte, 64)
	c := &Cursor{buf: buf}
	comp := NewCompressionMap()
	names := []string{"mail.example.com", "example.com", "ftp.example.com"}
	for _, n := range names {
		if err := WriteName(c, n, comp, false); err != nil {
			t.Fatalf("WriteName(%q): %v", n, err)
		}
	}
	rc, _ := NewCursor(c.Bytes())
	for _, want := range names {
		got, err := ReadName(rc)
		if err != nil {
			t.Fatalf("ReadName: %v", err)
		}
		if got != want {
			t.Errorf("ReadName = %q, want %q", got, want)
		}
	}
	if rc.Remaining() != 0 {
		t.Errorf("Remaining = %d after all names, want 0", rc.Remaining())
	}
}

func TestReadNameRejectsForwardPointer(t *testing.T) {
	// pointer at offset 0 targeting offset 4 (forward)
	c, _ := NewCursor([]byte{0xC0, 0x04, 0x00, 0x00, 0x03, 'f', 'o', 'o', 0x00})
	if _, err := ReadName(c); !errors.Is(err, ErrBadPointer) {
		t.Errorf("forward pointer error = %v, want ErrBadPointer", err)
	}
}

func TestReadNameRejectsSelfPointer(t *testing.T) {
	// name at offset 2 is a pointer to itself
	c, _ := NewCursor([]byte{0x00, 0x00, 0xC0, 0x02})
	_ = c.Seek(2)
	if _, err := ReadName(c); !errors.Is(err, ErrBadPointer) {
		t.Errorf("self pointer error = %v, want ErrBadPointer", err)
	}
}

func TestReadNameRejectsReservedLabelType(t *testing.T) {
	c, _ := NewCursor([]byte{0x40, 'a', 0x00})
	if _, err := ReadName(c); !errors.Is(err, ErrBadPointer) {
		t.Errorf("reserved label type error = %v, want ErrBadPointer", err)
	}
}

func TestWriteNameLimits(t *testing.T) {
	buf := make([]byte, 512)
	longLabel := strings.Repeat("a", 64)
	if err := WriteName(&Cursor{buf: buf}, longLabel+".com", nil, true); !errors.Is(err, ErrMalformedName) {
		t.Errorf("64-octet label error = %v, want ErrMalformedName", err)
	}
	longName := strings.Repeat("abcdefg.", 32) + "com" // > 255 wire octets
	if err := WriteName(&Cursor{buf: buf}, longName, nil, true); !errors.Is(err, ErrMalformedName) {
		t.Errorf("long name error = %v, want ErrMalformedName", err)
	}
	if err := WriteName(&Cursor{buf: buf}, "caf\xc3\xa9.example", nil, true); !errors.Is(err, ErrMalformedName) {
		t.Errorf("non-ASCII label error = %v, want ErrMalformedName", err)
	}
}

func TestReadNameRootAndEmpty(t *testing.T) {
	c, _ := NewCursor([]byte{0x00})
	got, err := ReadName(c)
	if err != nil || got != "" {
		t.Errorf("root ReadName = %q, %v; want \"\", nil", got, err)
	}
	buf := make([]byte, 8)
	wc := &Cursor{buf: buf}
	if err := WriteName(wc, ".", nil, true); err != nil {
		t.Fatalf("WriteName root: %v", err)
	}
	if !bytes.Equal(wc.Bytes(), []byte{0x00}) {
		t.Errorf("root wire form = % x, want 00", wc.Bytes())
	}
}

func TestAppendCanonicalName(t *testing.T) {
	got, err := AppendCanonicalName(nil, "Example.COM.")
	if err != nil {
		t.Fatalf("AppendCanonicalName: %v", err)
	}
	want := []byte{7, 'e', 'x', 'a', 'm', 'p', 'l', 'e', 3, 'c', 'o', 'm', 0}
	if !bytes.Equal(got, want) {
		t.Errorf("AppendCanonicalName = % x, want % x", got, want)
	}
}
