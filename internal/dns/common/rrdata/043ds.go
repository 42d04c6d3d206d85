package rrdata

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
	"github.com/haukened/rr-wire/internal/dns/domain"
)

// DS is a delegation signer record payload: the parent-side binding of a
// child zone DNSKEY. The digest is opaque here; computation and coverage
// checks live in the dnssec package.
type DS struct {
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func (*DS) Type() domain.RRType { return domain.RRTypeDS }

func (r *DS) MaxLen() int { return 4 + len(r.Digest) }

func (r *DS) String() string {
	return fmt.Sprintf("%d %d %d %s", r.KeyTag, r.Algorithm, r.DigestType,
		strings.ToUpper(hex.EncodeToString(r.Digest)))
}

func (r *DS) Pack(c *wire.Cursor, _ *wire.CompressionMap, _ bool) error {
	if err := c.WriteUint16(r.KeyTag); err != nil {
		return err
	}
	if err := c.WriteUint8(r.Algorithm); err != nil {
		return err
	}
	if err := c.WriteUint8(r.DigestType); err != nil {
		return err
	}
	return c.WriteBytes(r.Digest)
}

func decodeDS(c *wire.Cursor, rdlength int) (*DS, error) {
	if rdlength < 4 {
		return nil, fmt.Errorf("%w: DS rdata of %d bytes", wire.ErrShortRdata, rdlength)
	}
	keytag, err := c.ReadUint16()
	if err != nil {
		return nil, err
	}
	algorithm, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	digestType, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	digest, err := c.ReadBytes(rdlength - 4)
	if err != nil {
		return nil, err
	}
	return &DS{KeyTag: keytag, Algorithm: algorithm, DigestType: digestType, Digest: digest}, nil
}

func parseDS(tokens []string) (*DS, error) {
	// tokens = ["60485", "5", "1", "2BB183AF5F22588179A53B0A98631FAD1A292118"]
	if len(tokens) < 4 {
		return nil, tokenError(0, "DS expects keytag, algorithm, digest type, and digest, got %d tokens", len(tokens))
	}
	keytag, err := strconv.ParseUint(tokens[0], 10, 16)
	if err != nil {
		return nil, tokenError(0, "invalid DS key tag %q", tokens[0])
	}
	algorithm, err := strconv.ParseUint(tokens[1], 10, 8)
	if err != nil {
		return nil, tokenError(1, "invalid DS algorithm %q", tokens[1])
	}
	digestType, err := strconv.ParseUint(tokens[2], 10, 8)
	if err != nil {
		return nil, tokenError(2, "invalid DS digest type %q", tokens[2])
	}
	// the hex digest may be split across the remaining tokens
	digest, err := hex.DecodeString(strings.ToLower(strings.Join(tokens[3:], "")))
	if err != nil {
		return nil, tokenError(3, "invalid DS digest hex: %v", err)
	}
	return &DS{
		KeyTag:     uint16(keytag),
		Algorithm:  uint8(algorithm),
		DigestType: uint8(digestType),
		Digest:     digest,
	}, nil
}
