package strategy

import (
	"github.com/segmentio/ksuid"

	"github.com/weiawesome/identifier/pkg/identifier"
)

// KSUID generates values from the 128-bit random payload of a KSUID.
func KSUID() identifier.Strategy[identifier.Uint128] {
	return identifier.NewStrategy(generateKSUID, identifier.AcceptAll[identifier.Uint128])
}

func generateKSUID() identifier.Uint128 {
	id, err := ksuid.NewRandom()
	if err != nil {
		panic("strategy: failed to generate KSUID: " + err.Error())
	}
	return identifier.Uint128FromBytes([16]byte(id.Payload()))
}
