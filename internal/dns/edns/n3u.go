package edns

import (
	"strconv"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
)

// N3U is the NSEC3 Hash Understood option (RFC 6975): the NSEC3 hash
// algorithms the requester can validate, one octet each. The option data
// is exactly the algorithm list; its length is the count.
type N3U struct {
	Algorithms []uint8
}

func (*N3U) Code() uint16 { return CodeN3U }

func (o *N3U) MaxLen() int { return len(o.Algorithms) }

func (o *N3U) String() string {
	parts := make([]string, len(o.Algorithms))
	for i, alg := range o.Algorithms {
		parts[i] = strconv.Itoa(int(alg))
	}
	return strings.Join(parts, " ")
}

func (o *N3U) Pack(c *wire.Cursor) error {
	return c.WriteBytes(o.Algorithms)
}

func decodeN3U(c *wire.Cursor, length int) (*N3U, error) {
	algs, err := c.ReadBytes(length)
	if err != nil {
		return nil, err
	}
	return &N3U{Algorithms: algs}, nil
}
