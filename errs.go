package calculator

// InputError is an error with position information. Errors that point at a
// place in the input text implement InputError.
type InputError interface {
	error
	// Pos returns the 0-based byte offset of the character that caused the
	// error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*EscapeError)(nil)

	_ error = (*EmptyInputError)(nil)
	_ error = (*BracketError)(nil)
	_ error = (*UnparsableTokenError)(nil)
	_ error = (*ArgumentError)(nil)
	_ error = (*UnknownFunctionError)(nil)
	_ error = (*UnknownTokenError)(nil)
	_ error = (*MalformedExpressionError)(nil)
	_ error = (*OperandError)(nil)
)
