package strategy

import (
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/weiawesome/identifier/pkg/identifier"
)

// Fields holds the parts a strategy encodes into a value. Only the fields
// meaningful for the strategy are set.
type Fields struct {
	TimestampMs   int64  `json:"timestamp_ms,omitempty"`   // snowflake, ulid, uuidv7: absolute unix ms
	MachineID     int64  `json:"machine_id,omitempty"`     // snowflake
	Sequence      int64  `json:"sequence,omitempty"`       // snowflake
	UUIDVersion   int32  `json:"uuid_version,omitempty"`   // uuid
	UUIDVariant   string `json:"uuid_variant,omitempty"`   // uuid
	Tag           uint32 `json:"tag,omitempty"`            // tagged
	RandomPayload string `json:"random_payload,omitempty"` // ulid, ksuid, tagged: hex-encoded random bytes
}

// DescribeUUID reports the version and variant of a UUID value, and the
// timestamp for version 7.
func DescribeUUID(v identifier.Uint128) *Fields {
	id := uuid.UUID(v.Bytes())

	var variant string
	switch id.Variant() {
	case uuid.RFC4122:
		variant = "RFC4122"
	case uuid.Reserved:
		variant = "Reserved"
	case uuid.Microsoft:
		variant = "Microsoft"
	case uuid.Future:
		variant = "Future"
	default:
		variant = "Unknown"
	}

	f := &Fields{
		UUIDVersion: int32(id.Version()),
		UUIDVariant: variant,
	}
	if id.Version() == 7 {
		// The first 48 bits of a version 7 UUID are unix milliseconds.
		f.TimestampMs = int64(v.Hi >> 16)
	}
	return f
}

// DescribeULID reports the timestamp and entropy of a ULID value.
func DescribeULID(v identifier.Uint128) *Fields {
	id := ulid.ULID(v.Bytes())
	return &Fields{
		TimestampMs:   int64(id.Time()),
		RandomPayload: hex.EncodeToString(id.Entropy()),
	}
}

// DescribeKSUID reports the random payload of a KSUID-backed value.
func DescribeKSUID(v identifier.Uint128) *Fields {
	b := v.Bytes()
	return &Fields{RandomPayload: hex.EncodeToString(b[:])}
}

// DescribeTagged reports the tag and the random bits of a tagged value.
func DescribeTagged(v identifier.Uint128) *Fields {
	b := v.Bytes()
	return &Fields{
		Tag:           uint32(v.Hi >> 32),
		RandomPayload: hex.EncodeToString(b[4:]),
	}
}

// DescribeSnowflake returns a describer for snowflake values minted
// against epoch.
func DescribeSnowflake(epoch int64) func(uint64) *Fields {
	return func(v uint64) *Fields {
		ts, mid, seq := SnowflakeFields(v, epoch)
		return &Fields{TimestampMs: ts, MachineID: mid, Sequence: seq}
	}
}
