package strategy

import (
	"github.com/google/uuid"

	"github.com/weiawesome/identifier/pkg/identifier"
)

// UUIDv4 generates random RFC 4122 version 4 UUIDs.
func UUIDv4() identifier.Strategy[identifier.Uint128] {
	return identifier.Bind(generateUUID, validateUUID, uuid.Version(4))
}

// UUIDv7 generates time-ordered RFC 9562 version 7 UUIDs.
func UUIDv7() identifier.Strategy[identifier.Uint128] {
	return identifier.Bind(generateUUID, validateUUID, uuid.Version(7))
}

func generateUUID(version uuid.Version) identifier.Uint128 {
	var id uuid.UUID
	if version == 7 {
		id = uuid.Must(uuid.NewV7())
	} else {
		id = uuid.Must(uuid.NewRandom())
	}
	return identifier.Uint128FromBytes(id)
}

func validateUUID(v identifier.Uint128, version uuid.Version) bool {
	id := uuid.UUID(v.Bytes())
	return id.Version() == version && id.Variant() == uuid.RFC4122
}
