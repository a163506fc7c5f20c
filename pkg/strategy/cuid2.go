package strategy

import (
	"math/big"

	"github.com/nrednav/cuid2"

	"github.com/weiawesome/identifier/pkg/identifier"
)

// cuid2Length is the longest CUID2 the library produces; its base36 body
// carries more than 128 bits.
const cuid2Length = 32

// CUID2 generates values of any width from the low bits of a CUID2.
func CUID2[R identifier.Raw]() (identifier.Strategy[R], error) {
	gen, err := cuid2.Init(cuid2.WithLength(cuid2Length))
	if err != nil {
		return identifier.Strategy[R]{}, err
	}
	return identifier.NewStrategy(
		func() R { return foldCUID2[R](gen()) },
		identifier.AcceptAll[R],
	), nil
}

func foldCUID2[R identifier.Raw](id string) R {
	// The first character is always a letter and carries no entropy.
	n, ok := new(big.Int).SetString(id[1:], 36)
	if !ok {
		panic("strategy: cuid2 produced a non-base36 id: " + id)
	}
	return fold[R](n.Bytes())
}
