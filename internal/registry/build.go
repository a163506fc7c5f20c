package registry

import (
	"fmt"
	"strings"

	"github.com/weiawesome/identifier/internal/config"
	"github.com/weiawesome/identifier/pkg/identifier"
	"github.com/weiawesome/identifier/pkg/strategy"
)

// Strategy names accepted in configuration.
const (
	StrategyUUIDv4    = "uuidv4"
	StrategyUUIDv7    = "uuidv7"
	StrategyULID      = "ulid"
	StrategyKSUID     = "ksuid"
	StrategySnowflake = "snowflake"
	StrategyTagged    = "tagged"
	StrategyNanoID    = "nanoid"
	StrategyCUID2     = "cuid2"
	StrategyConstant  = "constant"
)

// Build creates the codec declared by cfg.
func Build(cfg config.KindConfig) (Codec, error) {
	if cfg.Name == "" {
		return nil, ErrEmptyName
	}

	name := strings.ToLower(strings.TrimSpace(cfg.Strategy))
	if name == "uuid" {
		name = StrategyUUIDv4
	}

	switch name {
	case StrategyUUIDv4, StrategyUUIDv7, StrategyULID, StrategyKSUID, StrategyTagged:
		if err := requireWidth(cfg, identifier.Width128); err != nil {
			return nil, err
		}
		return WrapDescribed(cfg.Name, name, fixed128(name, cfg), describe128(name)), nil

	case StrategySnowflake:
		if err := requireWidth(cfg, identifier.Width64); err != nil {
			return nil, err
		}
		epoch := cfg.Epoch
		if epoch == 0 {
			epoch = strategy.DefaultSnowflakeEpoch
		}
		s, err := strategy.Snowflake(strategy.SnowflakeParams{MachineID: cfg.MachineID, Epoch: epoch})
		if err != nil {
			return nil, fmt.Errorf("kind %q: %w", cfg.Name, err)
		}
		return WrapDescribed(cfg.Name, name, s, strategy.DescribeSnowflake(epoch)), nil

	case StrategyNanoID, StrategyCUID2, StrategyConstant:
		bits := cfg.Width
		if bits == 0 {
			bits = int(identifier.Width128)
		}
		w, err := identifier.ParseWidth(bits)
		if err != nil {
			return nil, fmt.Errorf("kind %q: %w", cfg.Name, err)
		}
		switch w {
		case identifier.Width32:
			return buildAnyWidth[uint32](name, cfg)
		case identifier.Width64:
			return buildAnyWidth[uint64](name, cfg)
		default:
			return buildAnyWidth[identifier.Uint128](name, cfg)
		}
	}

	return nil, fmt.Errorf("kind %q: %w: %q", cfg.Name, ErrUnknownStrategy, cfg.Strategy)
}

func fixed128(name string, cfg config.KindConfig) identifier.Strategy[identifier.Uint128] {
	switch name {
	case StrategyUUIDv7:
		return strategy.UUIDv7()
	case StrategyULID:
		return strategy.ULID()
	case StrategyKSUID:
		return strategy.KSUID()
	case StrategyTagged:
		return strategy.Tagged(cfg.Tag)
	default:
		return strategy.UUIDv4()
	}
}

func describe128(name string) func(identifier.Uint128) *strategy.Fields {
	switch name {
	case StrategyUUIDv4, StrategyUUIDv7:
		return strategy.DescribeUUID
	case StrategyULID:
		return strategy.DescribeULID
	case StrategyKSUID:
		return strategy.DescribeKSUID
	case StrategyTagged:
		return strategy.DescribeTagged
	}
	return nil
}

func buildAnyWidth[R identifier.Raw](name string, cfg config.KindConfig) (Codec, error) {
	var s identifier.Strategy[R]
	switch name {
	case StrategyNanoID:
		s = strategy.NanoID[R]()
	case StrategyCUID2:
		var err error
		if s, err = strategy.CUID2[R](); err != nil {
			return nil, fmt.Errorf("kind %q: %w", cfg.Name, err)
		}
	case StrategyConstant:
		v, err := identifier.ParseRaw[R](cfg.Value)
		if err != nil {
			return nil, fmt.Errorf("kind %q: constant value: %w", cfg.Name, err)
		}
		s = strategy.Constant(v)
	}
	return Wrap(cfg.Name, name, s), nil
}

func requireWidth(cfg config.KindConfig, w identifier.Width) error {
	if cfg.Width != 0 && cfg.Width != int(w) {
		return fmt.Errorf("kind %q: %w: strategy %s only supports %d bits, got %d",
			cfg.Name, ErrUnsupportedWidth, cfg.Strategy, int(w), cfg.Width)
	}
	return nil
}
