package strategy

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/identifier/pkg/identifier"
)

// fakeClock advances one millisecond every step calls.
type fakeClock struct {
	mu    sync.Mutex
	ms    int64
	calls int
	step  int
}

func (c *fakeClock) now() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	if c.step > 0 && c.calls%c.step == 0 {
		c.ms++
	}
	return c.ms
}

func TestSnowflake_InvalidParams(t *testing.T) {
	_, err := Snowflake(SnowflakeParams{MachineID: -1, Epoch: DefaultSnowflakeEpoch})
	assert.Error(t, err)

	_, err = Snowflake(SnowflakeParams{MachineID: 1024, Epoch: DefaultSnowflakeEpoch})
	assert.Error(t, err)

	clock := &fakeClock{ms: 1000}
	_, err = newSnowflake(SnowflakeParams{MachineID: 1, Epoch: 2000}, clock.now)
	assert.Error(t, err)
}

func TestSnowflake_Fields(t *testing.T) {
	clock := &fakeClock{ms: DefaultSnowflakeEpoch + 5000}
	s, err := newSnowflake(SnowflakeParams{MachineID: 7, Epoch: DefaultSnowflakeEpoch}, clock.now)
	require.NoError(t, err)

	first := s.Generate()
	second := s.Generate()

	ts, mid, seq := SnowflakeFields(first, DefaultSnowflakeEpoch)
	assert.Equal(t, DefaultSnowflakeEpoch+5000, ts)
	assert.Equal(t, int64(7), mid)
	assert.Equal(t, int64(0), seq)

	_, _, seq = SnowflakeFields(second, DefaultSnowflakeEpoch)
	assert.Equal(t, int64(1), seq)
	assert.Greater(t, second, first)
}

func TestSnowflake_SequenceRollover(t *testing.T) {
	clock := &fakeClock{ms: DefaultSnowflakeEpoch + 1, step: 10_000}
	s, err := newSnowflake(SnowflakeParams{MachineID: 1, Epoch: DefaultSnowflakeEpoch}, clock.now)
	require.NoError(t, err)

	var last uint64
	for i := 0; i < maxSequence+10; i++ {
		v := s.Generate()
		require.Greater(t, v, last)
		last = v
	}
}

func TestSnowflake_Validate(t *testing.T) {
	clock := &fakeClock{ms: DefaultSnowflakeEpoch + 5000}
	s, err := newSnowflake(SnowflakeParams{MachineID: 3, Epoch: DefaultSnowflakeEpoch}, clock.now)
	require.NoError(t, err)

	c := identifier.NewCodec(s)
	v := c.Generate()
	parsed, err := c.Parse(c.Format(v))
	require.NoError(t, err)
	assert.Equal(t, v, parsed)

	future := uint64(10_000) << timestampShift
	assert.False(t, s.Validate(future))
	assert.False(t, s.Validate(1<<63))
}

func TestSnowflake_Concurrent(t *testing.T) {
	s, err := Snowflake(SnowflakeParams{MachineID: 1, Epoch: DefaultSnowflakeEpoch})
	require.NoError(t, err)

	var (
		mu   sync.Mutex
		seen = make(map[uint64]bool)
		wg   sync.WaitGroup
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 500; j++ {
				v := s.Generate()
				mu.Lock()
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 8*500)
}
