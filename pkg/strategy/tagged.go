package strategy

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/weiawesome/identifier/pkg/identifier"
)

// Tagged generates 128-bit values whose top 32 bits carry tag and whose
// remaining 96 bits are random. Only values carrying tag are accepted.
func Tagged(tag uint32) identifier.Strategy[identifier.Uint128] {
	return identifier.Bind(generateTagged, validateTagged, tag)
}

func generateTagged(tag uint32) identifier.Uint128 {
	var b [16]byte
	if _, err := rand.Read(b[4:]); err != nil {
		panic("strategy: failed to read random bytes: " + err.Error())
	}
	binary.BigEndian.PutUint32(b[:4], tag)
	return identifier.Uint128FromBytes(b)
}

func validateTagged(v identifier.Uint128, tag uint32) bool {
	return uint32(v.Hi>>32) == tag
}
