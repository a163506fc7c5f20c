package strategy

import (
	"fmt"
	"sync"
	"time"

	"github.com/weiawesome/identifier/pkg/identifier"
)

const (
	timestampBits = 41
	machineIDBits = 10
	sequenceBits  = 12

	maxTimestamp = (1 << timestampBits) - 1
	maxMachineID = (1 << machineIDBits) - 1 // 1023
	maxSequence  = (1 << sequenceBits) - 1  // 4095

	machineIDShift = sequenceBits
	timestampShift = sequenceBits + machineIDBits
)

// DefaultSnowflakeEpoch is 2024-01-01T00:00:00Z in unix milliseconds.
const DefaultSnowflakeEpoch int64 = 1704067200000

// SnowflakeParams are the constants a snowflake kind is declared with.
type SnowflakeParams struct {
	MachineID int64 // 10-bit machine ID
	Epoch     int64 // custom epoch in unix ms
}

// snowflakeGenerator holds the per-kind sequence state.
type snowflakeGenerator struct {
	mu       sync.Mutex
	sequence int64
	lastTime int64
	now      func() int64
}

// Snowflake generates 64-bit snowflake IDs: 41 bits of milliseconds since
// the epoch, 10 bits of machine ID and a 12-bit sequence.
// MachineID must be in range [0, 1023].
func Snowflake(params SnowflakeParams) (identifier.Strategy[uint64], error) {
	return newSnowflake(params, func() int64 { return time.Now().UnixMilli() })
}

func newSnowflake(params SnowflakeParams, now func() int64) (identifier.Strategy[uint64], error) {
	if params.MachineID < 0 || params.MachineID > maxMachineID {
		return identifier.Strategy[uint64]{}, fmt.Errorf("machine_id must be between 0 and %d, got %d", maxMachineID, params.MachineID)
	}
	if params.Epoch > now() {
		return identifier.Strategy[uint64]{}, fmt.Errorf("current time is before custom epoch")
	}
	g := &snowflakeGenerator{now: now}
	return identifier.Bind(g.generate, g.validate, params), nil
}

func (g *snowflakeGenerator) generate(p SnowflakeParams) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	// A clock that moved backwards keeps using the last timestamp so the
	// sequence stays monotonic.
	if now < g.lastTime {
		now = g.lastTime
	}

	if now == g.lastTime {
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			// Sequence exhausted, wait for next millisecond
			for now <= g.lastTime {
				now = g.now()
			}
		}
	} else {
		g.sequence = 0
	}

	g.lastTime = now

	ts := (now - p.Epoch) & maxTimestamp
	return uint64(ts<<timestampShift | p.MachineID<<machineIDShift | g.sequence)
}

func (g *snowflakeGenerator) validate(v uint64, p SnowflakeParams) bool {
	if v>>63 != 0 {
		return false
	}
	ts := int64(v>>timestampShift) & maxTimestamp
	return ts+p.Epoch <= g.now()
}

// SnowflakeFields splits a snowflake value into its parts.
func SnowflakeFields(v uint64, epoch int64) (timestampMs, machineID, sequence int64) {
	ts := int64(v>>timestampShift) & maxTimestamp
	mid := int64(v>>machineIDShift) & maxMachineID
	seq := int64(v) & maxSequence
	return ts + epoch, mid, seq
}
