package domain

import (
	"fmt"

	"github.com/haukened/rr-wire/internal/dns/common/utils"
)

// ResourceRecord is the framing-level view of a DNS resource record: the
// generic header plus the rdata in both wire and presentation form. Typed
// rdata values live in the rrdata package; a ResourceRecord is what framing
// hands to and receives from collaborators.
type ResourceRecord struct {
	Name  string
	Type  RRType
	Class RRClass
	TTL   uint32
	Data  []byte // wire-encoded rdata, uncompressed
	Text  string // presentation form of the rdata
}

// NewResourceRecord constructs a ResourceRecord with a canonicalized owner
// name and validates its fields.
func NewResourceRecord(name string, rrtype RRType, class RRClass, ttl uint32, data []byte, text string) (ResourceRecord, error) {
	rr := ResourceRecord{
		Name:  utils.CanonicalDNSName(name),
		Type:  rrtype,
		Class: class,
		TTL:   ttl,
		Data:  data,
		Text:  text,
	}
	if err := rr.Validate(); err != nil {
		return ResourceRecord{}, err
	}
	return rr, nil
}

// Validate checks whether the ResourceRecord fields are valid.
func (rr ResourceRecord) Validate() error {
	if rr.Name == "" && rr.Type != RRTypeOPT {
		return fmt.Errorf("record name must not be empty")
	}
	if !rr.Type.IsValid() {
		return fmt.Errorf("invalid RRType: %d", rr.Type)
	}
	if !rr.Class.IsValid() {
		return fmt.Errorf("invalid RRClass: %d", rr.Class)
	}
	if rr.Text == "" && len(rr.Data) == 0 {
		return fmt.Errorf("either Text or Data must be set")
	}
	return nil
}

// String renders the record as a master-file line.
func (rr ResourceRecord) String() string {
	return fmt.Sprintf("%s. %d %s %s %s", rr.Name, rr.TTL, rr.Class, rr.Type, rr.Text)
}
