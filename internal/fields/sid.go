package fields

import (
	"github.com/tarusov/etwkernel/internal/cursor"
)

// minSIDLength is the smallest TOKEN_USER plus SID header the kernel writes:
// two pointer-sized slots and the 8-byte SID header.
const minSIDLength = 3 * 8

// SID decodes a TOKEN_USER followed by its SID into a struct with PSid,
// Attributes and Sid (the raw SID bytes). 64-bit traces align the SID on
// 8 bytes; the padding is consumed but not reported.
func (d *Decoder) SID(name string) {
	if d.err != nil {
		return
	}
	if d.c.Remaining() < minSIDLength {
		d.fail(name, cursor.ErrTruncated)
		return
	}

	d.Struct(name, func(sid *Decoder) {
		sid.UInteger("PSid")
		sid.UInt("Attributes")
		if sid.is64 {
			sid.Skip(4)
		}
		if sid.err != nil {
			return
		}

		// SID header: Revision, SubAuthorityCount, IdentifierAuthority[6].
		count, err := sid.c.Peek(1)
		if err != nil {
			sid.fail("Sid", err)
			return
		}
		sid.UCharArray("Sid", 4*int(count)+8)
	})
}
