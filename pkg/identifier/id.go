package identifier

import (
	"database/sql/driver"
	"fmt"
)

// Kind declares an identifier type. Implement it on an empty tag type and
// return a strategy built once at package initialisation:
//
//	type userKind struct{}
//
//	func (userKind) Strategy() identifier.Strategy[identifier.Uint128] { return userStrategy }
//
//	type UserID = identifier.ID[userKind, identifier.Uint128]
type Kind[R Raw] interface {
	Strategy() Strategy[R]
}

// ID is an identifier of kind K wrapping a raw value of type R. Two IDs of
// the same kind are equal iff their raw values are equal, so == works.
type ID[K Kind[R], R Raw] struct {
	raw R
}

// Of returns the codec bound to kind K.
func Of[K Kind[R], R Raw]() Codec[R] {
	var k K
	return NewCodec(k.Strategy())
}

// Generate returns a fresh identifier from the kind's generator.
func Generate[K Kind[R], R Raw]() ID[K, R] {
	return ID[K, R]{raw: Of[K, R]().Generate()}
}

// New wraps raw without validating it.
func New[K Kind[R], R Raw](raw R) ID[K, R] {
	return ID[K, R]{raw: raw}
}

// Parse decodes text into an identifier of kind K.
func Parse[K Kind[R], R Raw](text string) (ID[K, R], error) {
	raw, err := Of[K, R]().Parse(text)
	if err != nil {
		return ID[K, R]{}, err
	}
	return ID[K, R]{raw: raw}, nil
}

// MustParse is like Parse but panics on error.
func MustParse[K Kind[R], R Raw](text string) ID[K, R] {
	id, err := Parse[K, R](text)
	if err != nil {
		panic(err)
	}
	return id
}

// Raw returns the wrapped value.
func (id ID[K, R]) Raw() R {
	return id.raw
}

func (id ID[K, R]) Width() Width {
	return WidthOf[R]()
}

// IsZero reports whether the raw value is zero.
func (id ID[K, R]) IsZero() bool {
	var zero R
	return id.raw == zero
}

// String returns the canonical text form.
func (id ID[K, R]) String() string {
	return FormatRaw(id.raw)
}

func (id ID[K, R]) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses text through the kind's validator.
func (id *ID[K, R]) UnmarshalText(text []byte) error {
	parsed, err := Parse[K, R](string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Value stores the identifier in its canonical text form.
func (id ID[K, R]) Value() (driver.Value, error) {
	return id.String(), nil
}

// Scan reads an identifier stored as text.
func (id *ID[K, R]) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return id.UnmarshalText([]byte(v))
	case []byte:
		return id.UnmarshalText(v)
	default:
		return fmt.Errorf("identifier: cannot scan %T", src)
	}
}
