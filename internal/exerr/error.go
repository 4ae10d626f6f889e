// Package exerr defines the error taxonomy shared by every layer of the
// expression engine. Every public function in this module fails, when it
// fails, with exactly one concrete type: *exerr.Error.
package exerr

import "fmt"

// Kind categorises a failure so callers can branch on it without parsing
// the message string.
type Kind int

const (
	// ParseError: the expression string has invalid syntax or unexpected tokens.
	ParseError Kind = iota
	// UndefinedName: a variable or function name was used before being defined.
	UndefinedName
	// ArgumentCount: a function received the wrong number of arguments.
	ArgumentCount
	// ArgumentType: an argument had the wrong type (e.g. complex where real is required).
	ArgumentType
	// DomainError: a mathematical domain was violated (ln(0), division by zero, etc.).
	DomainError
	// Overflow: integer arithmetic overflow (gcd/lcm).
	Overflow
	// ComplexResult: a numerical method produced a complex intermediate result.
	ComplexResult
	// RangeTooLarge: a sum/product range exceeded the built-in limit.
	RangeTooLarge
)

var kindNames = map[Kind]string{
	ParseError:    "ParseError",
	UndefinedName: "UndefinedName",
	ArgumentCount: "ArgumentCount",
	ArgumentType:  "ArgumentType",
	DomainError:   "DomainError",
	Overflow:      "Overflow",
	ComplexResult: "ComplexResult",
	RangeTooLarge: "RangeTooLarge",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UnknownError"
}

// Error is the concrete error type returned by every function in this module.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is lets errors.Is(err, exerr.DomainError) read naturally by comparing kinds
// when the target is itself a bare *Error carrying only a Kind.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

// New builds an *Error with the given kind and formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Parse builds a ParseError.
func Parse(format string, args ...any) *Error { return New(ParseError, format, args...) }

// Undefined builds an UndefinedName error.
func Undefined(format string, args ...any) *Error { return New(UndefinedName, format, args...) }

// ArgCount builds an ArgumentCount error.
func ArgCount(format string, args ...any) *Error { return New(ArgumentCount, format, args...) }

// ArgType builds an ArgumentType error.
func ArgType(format string, args ...any) *Error { return New(ArgumentType, format, args...) }

// Domain builds a DomainError.
func Domain(format string, args ...any) *Error { return New(DomainError, format, args...) }

// Overflowed builds an Overflow error.
func Overflowed(format string, args ...any) *Error { return New(Overflow, format, args...) }

// ComplexResulted builds a ComplexResult error.
func ComplexResulted(format string, args ...any) *Error { return New(ComplexResult, format, args...) }

// RangeTooLargeErr builds a RangeTooLarge error.
func RangeTooLargeErr(format string, args ...any) *Error { return New(RangeTooLarge, format, args...) }
