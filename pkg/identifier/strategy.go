package identifier

// Strategy pairs a generator with a validator for one identifier kind.
// A Strategy is immutable once built and is safe for concurrent use as long
// as the bound functions are.
type Strategy[R Raw] struct {
	generate func() R
	validate func(R) bool
}

// NewStrategy binds a parameterless generator and validator.
// It panics if either function is nil.
func NewStrategy[R Raw](generate func() R, validate func(R) bool) Strategy[R] {
	if generate == nil {
		panic("identifier: strategy requires a generator")
	}
	if validate == nil {
		panic("identifier: strategy requires a validator")
	}
	return Strategy[R]{generate: generate, validate: validate}
}

// Bind binds a generator and validator to a fixed parameter tuple. params is
// captured once and handed unchanged to every call. It panics if either
// function is nil.
func Bind[R Raw, P any](generate func(P) R, validate func(R, P) bool, params P) Strategy[R] {
	if generate == nil {
		panic("identifier: strategy requires a generator")
	}
	if validate == nil {
		panic("identifier: strategy requires a validator")
	}
	return Strategy[R]{
		generate: func() R { return generate(params) },
		validate: func(v R) bool { return validate(v, params) },
	}
}

// AcceptAll is a validator that accepts every value.
func AcceptAll[R Raw](R) bool {
	return true
}

// Generate returns a new raw value from the bound generator.
func (s Strategy[R]) Generate() R {
	return s.generate()
}

// Validate reports whether v is acceptable to the bound validator.
func (s Strategy[R]) Validate(v R) bool {
	return s.validate(v)
}
