package identifier

import "fmt"

// Width is the bit width of an identifier's raw value.
type Width int

const (
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

// HexLen returns the number of hexadecimal digits in the canonical form.
func (w Width) HexLen() int {
	return int(w) / 4
}

// Valid reports whether w is one of the supported width classes.
func (w Width) Valid() bool {
	switch w {
	case Width32, Width64, Width128:
		return true
	}
	return false
}

func (w Width) String() string {
	return fmt.Sprintf("%d-bit", int(w))
}

// ParseWidth converts a bit count read from configuration into a Width.
func ParseWidth(bits int) (Width, error) {
	w := Width(bits)
	if !w.Valid() {
		return 0, fmt.Errorf("unsupported identifier width %d, must be 32, 64 or 128", bits)
	}
	return w, nil
}

// WidthOf returns the width class of the raw type R.
func WidthOf[R Raw]() Width {
	var zero R
	switch any(zero).(type) {
	case uint32:
		return Width32
	case uint64:
		return Width64
	default:
		return Width128
	}
}
