package exath

import "github.com/fabian2000/exath-go/internal/exerr"

// Error is the concrete error type every function in this package returns on
// failure, re-exported as a type alias so callers never need to import
// internal/exerr directly.
type Error = exerr.Error

// Kind categorises an Error so callers can branch without parsing its
// message string.
type Kind = exerr.Kind

// Error kind constants, re-exported from the internal taxonomy.
const (
	ParseError        = exerr.ParseError
	UndefinedName     = exerr.UndefinedName
	ArgumentCount     = exerr.ArgumentCount
	ArgumentType      = exerr.ArgumentType
	DomainError       = exerr.DomainError
	Overflow          = exerr.Overflow
	ComplexResultKind = exerr.ComplexResult
	RangeTooLarge     = exerr.RangeTooLarge
)
