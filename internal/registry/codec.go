package registry

import (
	"github.com/weiawesome/identifier/pkg/identifier"
	"github.com/weiawesome/identifier/pkg/strategy"
)

// Codec is a width-erased identifier codec for one named kind.
type Codec interface {
	Name() string
	Strategy() string
	Width() identifier.Width
	// Generate returns a new identifier in canonical form.
	Generate() string
	// Parse validates text and returns its canonical form.
	Parse(text string) (string, error)
	// Describe decodes the strategy fields of a parsed canonical value.
	// It returns nil when the strategy carries no decodable fields.
	Describe(canonical string) *strategy.Fields
}

type kindCodec[R identifier.Raw] struct {
	name     string
	strategy string
	codec    identifier.Codec[R]
	describe func(R) *strategy.Fields
}

// Wrap adapts a typed strategy to a named Codec.
func Wrap[R identifier.Raw](name, strategyName string, s identifier.Strategy[R]) Codec {
	return WrapDescribed(name, strategyName, s, nil)
}

// WrapDescribed is Wrap with a describer that decodes the fields a
// strategy packs into its values. describe may be nil.
func WrapDescribed[R identifier.Raw](name, strategyName string, s identifier.Strategy[R], describe func(R) *strategy.Fields) Codec {
	return &kindCodec[R]{
		name:     name,
		strategy: strategyName,
		codec:    identifier.NewCodec(s),
		describe: describe,
	}
}

func (k *kindCodec[R]) Name() string            { return k.name }
func (k *kindCodec[R]) Strategy() string        { return k.strategy }
func (k *kindCodec[R]) Width() identifier.Width { return k.codec.Width() }

func (k *kindCodec[R]) Generate() string {
	return k.codec.Format(k.codec.Generate())
}

func (k *kindCodec[R]) Parse(text string) (string, error) {
	v, err := k.codec.Parse(text)
	if err != nil {
		return "", err
	}
	return k.codec.Format(v), nil
}

func (k *kindCodec[R]) Describe(canonical string) *strategy.Fields {
	if k.describe == nil {
		return nil
	}
	v, err := identifier.ParseRaw[R](canonical)
	if err != nil {
		return nil
	}
	return k.describe(v)
}
