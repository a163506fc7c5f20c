package strategy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/identifier/pkg/identifier"
)

// roundTrip generates n values and checks each survives format and parse.
func roundTrip[R identifier.Raw](t *testing.T, s identifier.Strategy[R], n int) []R {
	t.Helper()
	c := identifier.NewCodec(s)
	out := make([]R, 0, n)
	for i := 0; i < n; i++ {
		v := c.Generate()
		text := c.Format(v)
		require.Len(t, text, c.Width().HexLen())
		got, err := c.Parse(text)
		require.NoError(t, err, text)
		require.Equal(t, v, got)
		out = append(out, v)
	}
	return out
}

func unique[R comparable](t *testing.T, vs []R) {
	t.Helper()
	seen := make(map[R]bool, len(vs))
	for _, v := range vs {
		require.False(t, seen[v], "duplicate value %v", v)
		seen[v] = true
	}
}

func TestUUIDv4(t *testing.T) {
	s := UUIDv4()
	vs := roundTrip(t, s, 100)
	unique(t, vs)

	id := uuid.UUID(vs[0].Bytes())
	assert.Equal(t, uuid.Version(4), id.Version())

	v7 := identifier.Uint128FromBytes(uuid.Must(uuid.NewV7()))
	assert.False(t, s.Validate(v7))
	assert.False(t, s.Validate(identifier.Uint128{}))
}

func TestUUIDv7(t *testing.T) {
	s := UUIDv7()
	unique(t, roundTrip(t, s, 100))

	v4 := identifier.Uint128FromBytes(uuid.Must(uuid.NewRandom()))
	assert.False(t, s.Validate(v4))
}

func TestULID(t *testing.T) {
	s := ULID()
	unique(t, roundTrip(t, s, 100))

	future := ulid.ULID{}
	require.NoError(t, future.SetTime(ulid.Now()+3_600_000))
	assert.False(t, s.Validate(identifier.Uint128FromBytes(future)))
}

func TestKSUID(t *testing.T) {
	unique(t, roundTrip(t, KSUID(), 100))
}

func TestNanoID(t *testing.T) {
	unique(t, roundTrip(t, NanoID[identifier.Uint128](), 100))
	roundTrip(t, NanoID[uint64](), 50)
	roundTrip(t, NanoID[uint32](), 50)
}

func TestCUID2(t *testing.T) {
	s128, err := CUID2[identifier.Uint128]()
	require.NoError(t, err)
	unique(t, roundTrip(t, s128, 100))

	s64, err := CUID2[uint64]()
	require.NoError(t, err)
	roundTrip(t, s64, 50)

	s32, err := CUID2[uint32]()
	require.NoError(t, err)
	roundTrip(t, s32, 50)
}

func TestFold(t *testing.T) {
	assert.Equal(t, uint32(0x05060708), fold[uint32]([]byte{1, 2, 3, 4, 5, 6, 7, 8}))
	assert.Equal(t, uint32(0x00000102), fold[uint32]([]byte{1, 2}))
	assert.Equal(t, uint64(0), fold[uint64](nil))
}

func TestConstant(t *testing.T) {
	s := Constant(uint64(0x1234567890abcdef))
	c := identifier.NewCodec(s)
	assert.Equal(t, "1234567890abcdef", c.Format(c.Generate()))

	_, err := c.Parse("1234567890abcdee")
	assert.ErrorIs(t, err, identifier.ErrInvalid)
}

func TestTagged(t *testing.T) {
	s := Tagged(0x1111ffff)
	vs := roundTrip(t, s, 100)
	unique(t, vs)
	for _, v := range vs {
		assert.Equal(t, "1111ffff", identifier.FormatRaw(v)[:8])
	}

	c := identifier.NewCodec(s)
	_, err := c.Parse("0000ffff-00000000-00000000-1234abcd")
	assert.ErrorIs(t, err, identifier.ErrInvalid)
	_, err = c.Parse("1111ffff-00000000-00000000-1234abcd")
	assert.NoError(t, err)
}
