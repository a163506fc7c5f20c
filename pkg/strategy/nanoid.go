package strategy

import (
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/weiawesome/identifier/pkg/identifier"
)

const hexAlphabet = "0123456789abcdef"

// NanoID generates random values of any width by drawing W/4 hex digits
// from a NanoID generator.
func NanoID[R identifier.Raw]() identifier.Strategy[R] {
	return identifier.NewStrategy(generateNanoID[R], identifier.AcceptAll[R])
}

func generateNanoID[R identifier.Raw]() R {
	s, err := gonanoid.Generate(hexAlphabet, identifier.WidthOf[R]().HexLen())
	if err != nil {
		panic("strategy: failed to generate NanoID: " + err.Error())
	}
	return identifier.MustParseRaw[R](s)
}
