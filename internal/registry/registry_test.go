package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/identifier/internal/config"
	"github.com/weiawesome/identifier/pkg/identifier"
	"github.com/weiawesome/identifier/pkg/strategy"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.KindConfig
		wantWidth identifier.Width
		wantErr   error
	}{
		{name: "uuid alias", cfg: config.KindConfig{Name: "a", Strategy: "uuid"}, wantWidth: identifier.Width128},
		{name: "uuidv7", cfg: config.KindConfig{Name: "a", Strategy: "UUIDv7"}, wantWidth: identifier.Width128},
		{name: "ulid", cfg: config.KindConfig{Name: "a", Strategy: "ulid", Width: 128}, wantWidth: identifier.Width128},
		{name: "ksuid", cfg: config.KindConfig{Name: "a", Strategy: "ksuid"}, wantWidth: identifier.Width128},
		{name: "tagged", cfg: config.KindConfig{Name: "a", Strategy: "tagged", Tag: 7}, wantWidth: identifier.Width128},
		{name: "snowflake", cfg: config.KindConfig{Name: "a", Strategy: "snowflake", MachineID: 3}, wantWidth: identifier.Width64},
		{name: "nanoid default width", cfg: config.KindConfig{Name: "a", Strategy: "nanoid"}, wantWidth: identifier.Width128},
		{name: "nanoid 32", cfg: config.KindConfig{Name: "a", Strategy: "nanoid", Width: 32}, wantWidth: identifier.Width32},
		{name: "cuid2 64", cfg: config.KindConfig{Name: "a", Strategy: "cuid2", Width: 64}, wantWidth: identifier.Width64},
		{name: "constant 32", cfg: config.KindConfig{Name: "a", Strategy: "constant", Width: 32, Value: "1234-5678"}, wantWidth: identifier.Width32},

		{name: "empty name", cfg: config.KindConfig{Strategy: "uuidv4"}, wantErr: ErrEmptyName},
		{name: "unknown strategy", cfg: config.KindConfig{Name: "a", Strategy: "guid"}, wantErr: ErrUnknownStrategy},
		{name: "uuid at 64", cfg: config.KindConfig{Name: "a", Strategy: "uuidv4", Width: 64}, wantErr: ErrUnsupportedWidth},
		{name: "snowflake at 128", cfg: config.KindConfig{Name: "a", Strategy: "snowflake", Width: 128}, wantErr: ErrUnsupportedWidth},
		{name: "constant bad value", cfg: config.KindConfig{Name: "a", Strategy: "constant", Width: 32, Value: "12"}, wantErr: identifier.ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Build(tt.cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantWidth, c.Width())

			id := c.Generate()
			assert.Len(t, id, tt.wantWidth.HexLen())
			canonical, err := c.Parse(id)
			require.NoError(t, err)
			assert.Equal(t, id, canonical)
		})
	}
}

func TestBuild_BadWidthAndMachineID(t *testing.T) {
	_, err := Build(config.KindConfig{Name: "a", Strategy: "nanoid", Width: 48})
	assert.Error(t, err)

	_, err = Build(config.KindConfig{Name: "a", Strategy: "snowflake", MachineID: 5000})
	assert.Error(t, err)
}

func TestCodec_ParseCanonicalizes(t *testing.T) {
	c, err := Build(config.KindConfig{Name: "fixed", Strategy: "constant", Width: 64, Value: "1234567890abcdef"})
	require.NoError(t, err)

	canonical, err := c.Parse("1234-5678-90AB-CDEF")
	require.NoError(t, err)
	assert.Equal(t, "1234567890abcdef", canonical)

	_, err = c.Parse("1234-5678-90AB-CDEE")
	assert.ErrorIs(t, err, identifier.ErrInvalid)

	assert.Equal(t, "fixed", c.Name())
	assert.Equal(t, StrategyConstant, c.Strategy())
}

func TestCodec_Describe(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.KindConfig
		check func(t *testing.T, f *strategy.Fields)
	}{
		{
			name: "snowflake",
			cfg:  config.KindConfig{Name: "a", Strategy: "snowflake", MachineID: 12},
			check: func(t *testing.T, f *strategy.Fields) {
				assert.Equal(t, int64(12), f.MachineID)
				assert.Greater(t, f.TimestampMs, strategy.DefaultSnowflakeEpoch)
			},
		},
		{
			name: "uuidv4",
			cfg:  config.KindConfig{Name: "a", Strategy: "uuid"},
			check: func(t *testing.T, f *strategy.Fields) {
				assert.Equal(t, int32(4), f.UUIDVersion)
				assert.Equal(t, "RFC4122", f.UUIDVariant)
			},
		},
		{
			name: "uuidv7",
			cfg:  config.KindConfig{Name: "a", Strategy: "uuidv7"},
			check: func(t *testing.T, f *strategy.Fields) {
				assert.Equal(t, int32(7), f.UUIDVersion)
				assert.Positive(t, f.TimestampMs)
			},
		},
		{
			name: "ulid",
			cfg:  config.KindConfig{Name: "a", Strategy: "ulid"},
			check: func(t *testing.T, f *strategy.Fields) {
				assert.Positive(t, f.TimestampMs)
				assert.Len(t, f.RandomPayload, 20)
			},
		},
		{
			name: "tagged",
			cfg:  config.KindConfig{Name: "a", Strategy: "tagged", Tag: 0xabc},
			check: func(t *testing.T, f *strategy.Fields) {
				assert.Equal(t, uint32(0xabc), f.Tag)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Build(tt.cfg)
			require.NoError(t, err)
			f := c.Describe(c.Generate())
			require.NotNil(t, f)
			tt.check(t, f)
		})
	}

	c, err := Build(config.KindConfig{Name: "a", Strategy: "nanoid", Width: 64})
	require.NoError(t, err)
	assert.Nil(t, c.Describe(c.Generate()))
}

func TestRegistry(t *testing.T) {
	r, err := FromConfig(config.DefaultKinds())
	require.NoError(t, err)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"snowflake", "ulid", "uuid"}, r.Names())

	c, ok := r.Lookup("uuid")
	require.True(t, ok)
	assert.Equal(t, StrategyUUIDv4, c.Strategy())

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_Duplicate(t *testing.T) {
	_, err := FromConfig([]config.KindConfig{
		{Name: "a", Strategy: "uuidv4"},
		{Name: "a", Strategy: "ulid"},
	})
	assert.ErrorIs(t, err, ErrDuplicateKind)
}

func TestRegistry_Concurrent(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c := Wrap("k"+string(rune('a'+i)), StrategyConstant, identifier.NewStrategy(
				func() uint32 { return uint32(i) },
				identifier.AcceptAll[uint32],
			))
			assert.NoError(t, r.Register(c))
			_, ok := r.Lookup(c.Name())
			assert.True(t, ok)
			_ = r.Names()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 8, r.Len())
}
