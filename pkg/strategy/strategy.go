// Package strategy provides ready-made identifier strategies backed by
// common id generators.
package strategy

import (
	"encoding/hex"
	"fmt"

	"github.com/weiawesome/identifier/pkg/identifier"
)

// Constant always generates v and only accepts v.
func Constant[R identifier.Raw](v R) identifier.Strategy[R] {
	return identifier.Bind(
		func(v R) R { return v },
		func(got, want R) bool { return got == want },
		v,
	)
}

// fold reduces an arbitrary big-endian byte string to the low W bits.
func fold[R identifier.Raw](b []byte) R {
	n := identifier.WidthOf[R]().HexLen() / 2
	buf := make([]byte, n)
	if len(b) >= n {
		copy(buf, b[len(b)-n:])
	} else {
		copy(buf[n-len(b):], b)
	}
	v, err := identifier.ParseRaw[R](hex.EncodeToString(buf))
	if err != nil {
		panic(fmt.Sprintf("strategy: fold produced undecodable value: %v", err))
	}
	return v
}
