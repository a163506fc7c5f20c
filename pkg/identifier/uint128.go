package identifier

import (
	"encoding/binary"
	"encoding/hex"
)

// Raw is the set of payload types an identifier can wrap.
type Raw interface {
	uint32 | uint64 | Uint128
}

// Uint128 is an unsigned 128-bit integer. Hi holds the most significant bits.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Uint128FromBytes reads a big-endian 128-bit value.
func Uint128FromBytes(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// Bytes returns the big-endian encoding of u.
func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// String returns u as 32 lowercase hexadecimal digits.
func (u Uint128) String() string {
	b := u.Bytes()
	return hex.EncodeToString(b[:])
}
