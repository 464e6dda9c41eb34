// Package calculator evaluates arithmetic expressions supplied as text.
//
// An expression is scanned into tokens, checked for balanced brackets,
// rearranged into postfix (reverse Polish) order by a shunting-yard pass,
// and executed against a value stack. Values are 64-bit integers,
// double-precision floats, and strings. Arithmetic on two integers stays
// integral except for division, which is always true division; any float
// operand promotes the result to float.
//
// Three functions are built in: sq squares its argument, if selects one of
// two branches on a numeric condition, and type reports the kind of its
// argument as a string.
//
// Each call to Calculate is self-contained, so independent evaluations may
// run concurrently without synchronization.
package calculator
