package identifier

import (
	"encoding/binary"
	"encoding/hex"
	"strings"
)

// Codec binds a width class and a strategy. The zero Codec has no strategy
// and must not be used; build one with NewCodec.
type Codec[R Raw] struct {
	strategy Strategy[R]
}

func NewCodec[R Raw](strategy Strategy[R]) Codec[R] {
	return Codec[R]{strategy: strategy}
}

func (c Codec[R]) Width() Width {
	return WidthOf[R]()
}

// Generate returns a value from the bound generator. The value is not
// validated.
func (c Codec[R]) Generate() R {
	return c.strategy.Generate()
}

// Parse decodes text and checks it against the bound validator.
func (c Codec[R]) Parse(text string) (R, error) {
	v, err := ParseRaw[R](text)
	if err != nil {
		return v, err
	}
	if !c.strategy.Validate(v) {
		var zero R
		return zero, &ParseError{Input: text, Width: WidthOf[R](), Err: ErrInvalid}
	}
	return v, nil
}

// Format returns the canonical text form of v.
func (c Codec[R]) Format(v R) string {
	return FormatRaw(v)
}

// Normalize removes every dash from text.
func Normalize(text string) string {
	return strings.ReplaceAll(text, "-", "")
}

// ParseRaw decodes text into a raw value without consulting any validator.
// Dashes are ignored and hex digits may be in either case.
func ParseRaw[R Raw](text string) (R, error) {
	var zero R
	w := WidthOf[R]()
	s := Normalize(text)
	if len(s) != w.HexLen() {
		return zero, &ParseError{Input: text, Width: w, Err: ErrInvalidLength}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return zero, &ParseError{Input: text, Width: w, Err: ErrInvalidChars}
	}

	var v any
	switch w {
	case Width32:
		v = binary.BigEndian.Uint32(b)
	case Width64:
		v = binary.BigEndian.Uint64(b)
	default:
		v = Uint128FromBytes([16]byte(b))
	}
	return v.(R), nil
}

// FormatRaw renders v as zero-padded lowercase hex, W/4 digits long.
func FormatRaw[R Raw](v R) string {
	var buf [16]byte
	var b []byte
	switch x := any(v).(type) {
	case uint32:
		b = binary.BigEndian.AppendUint32(buf[:0], x)
	case uint64:
		b = binary.BigEndian.AppendUint64(buf[:0], x)
	case Uint128:
		buf = x.Bytes()
		b = buf[:]
	}
	return hex.EncodeToString(b)
}

// MustParseRaw is like ParseRaw but panics on error.
func MustParseRaw[R Raw](text string) R {
	v, err := ParseRaw[R](text)
	if err != nil {
		panic(err)
	}
	return v
}
