// Package identifier provides typed identifiers backed by fixed-width
// unsigned integers.
//
// An identifier kind binds a width (32, 64 or 128 bits, chosen by the raw
// type) to a Strategy: a generator and a validator, optionally bound to
// parameters. The canonical text form is W/4 lowercase hex digits. Parsing
// ignores dashes anywhere in the input and accepts either case.
//
// Parse fails with ErrInvalidLength, ErrInvalidChars or ErrInvalid, checked
// in that order. Generate and New never validate.
package identifier
