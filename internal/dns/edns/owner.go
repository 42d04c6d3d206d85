package edns

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"net"
	"strings"

	"github.com/haukened/rr-wire/internal/dns/common/wire"
)

const macLen = 6

// Owner is the EDNS0 Owner option used for sleep-proxy wake-on-LAN
// (draft-cheshire-edns0-owner-option): version, sequence, the primary MAC,
// and optionally a wakeup MAC and a password (4 or 6 octets).
//
// Emit quirk kept from the deployed encoding: when a password is present
// but no wakeup MAC was set, the primary MAC is written into the wakeup
// slot so the password lands at its expected offset. Parse tolerates both
// that form and a genuine wakeup MAC.
type Owner struct {
	Version    uint8
	Sequence   uint8
	PrimaryMAC []byte // 6 octets
	WakeupMAC  []byte // nil or 6 octets
	Password   []byte // nil, 4, or 6 octets
}

func (*Owner) Code() uint16 { return CodeOwner }

func (o *Owner) MaxLen() int { return 2 + 3*macLen }

func (o *Owner) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %s", o.Version, o.Sequence, formatMAC(o.PrimaryMAC))
	if o.WakeupMAC != nil {
		fmt.Fprintf(&b, " %s", formatMAC(o.WakeupMAC))
	}
	if o.Password != nil {
		fmt.Fprintf(&b, " %s", strings.ToUpper(hex.EncodeToString(o.Password)))
	}
	return b.String()
}

func (o *Owner) Pack(c *wire.Cursor) error {
	if len(o.PrimaryMAC) != macLen {
		return fmt.Errorf("owner option: primary MAC of %d bytes", len(o.PrimaryMAC))
	}
	if o.WakeupMAC != nil && len(o.WakeupMAC) != macLen {
		return fmt.Errorf("owner option: wakeup MAC of %d bytes", len(o.WakeupMAC))
	}
	if err := c.WriteUint8(o.Version); err != nil {
		return err
	}
	if err := c.WriteUint8(o.Sequence); err != nil {
		return err
	}
	if err := c.WriteBytes(o.PrimaryMAC); err != nil {
		return err
	}
	wakeup := o.WakeupMAC
	if wakeup == nil && o.Password != nil {
		// backfill the wakeup slot to keep the password aligned
		wakeup = o.PrimaryMAC
	}
	if wakeup != nil {
		if err := c.WriteBytes(wakeup); err != nil {
			return err
		}
	}
	if o.Password != nil {
		return c.WriteBytes(o.Password)
	}
	return nil
}

func decodeOwner(c *wire.Cursor, length int) (*Owner, error) {
	if length < 2+macLen {
		return nil, fmt.Errorf("%w: owner option of %d bytes", wire.ErrShortRdata, length)
	}
	version, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	sequence, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	primary, err := c.ReadBytes(macLen)
	if err != nil {
		return nil, err
	}
	o := &Owner{Version: version, Sequence: sequence, PrimaryMAC: primary}
	if c.Remaining() == 0 {
		return o, nil
	}
	if o.WakeupMAC, err = c.ReadBytes(macLen); err != nil {
		return nil, err
	}
	if c.Remaining() == 0 {
		return o, nil
	}
	if o.Password, err = c.ReadBytes(c.Remaining()); err != nil {
		return nil, err
	}
	if len(o.Password) != 4 && len(o.Password) != macLen {
		return nil, fmt.Errorf("%w: owner option password of %d bytes", wire.ErrShortRdata, len(o.Password))
	}
	// a wakeup slot merely backfilled with the primary MAC is not a
	// distinct wakeup MAC
	if o.Password != nil && bytes.Equal(o.WakeupMAC, o.PrimaryMAC) {
		o.WakeupMAC = nil
	}
	return o, nil
}

func formatMAC(mac []byte) string {
	return net.HardwareAddr(mac).String()
}
