package strategy

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/weiawesome/identifier/pkg/identifier"
)

// ULID generates Universally Unique Lexicographically Sortable Identifiers.
// Values whose timestamp lies in the future are rejected.
func ULID() identifier.Strategy[identifier.Uint128] {
	return identifier.NewStrategy(generateULID, validateULID)
}

func generateULID() identifier.Uint128 {
	id := ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader)
	return identifier.Uint128FromBytes(id)
}

func validateULID(v identifier.Uint128) bool {
	id := ulid.ULID(v.Bytes())
	return id.Time() <= ulid.Now()
}
