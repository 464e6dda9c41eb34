package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run is a test shortcut for tokenize, parse, evaluate on known-balanced
// input.
func run(t *testing.T, src string) (token, error) {
	t.Helper()
	toks, err := tokenize(src)
	require.NoError(t, err)
	require.True(t, validate(toks))
	postfix, err := parse(toks)
	require.NoError(t, err)
	return evaluate(postfix)
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want token
	}{
		{"literal", "5", integerToken(5)},
		{"add", "1+2", integerToken(3)},
		{"sub", "1-2", integerToken(-1)},
		{"mul", "2*3", integerToken(6)},
		{"left-assoc", "1-2-3", integerToken(-4)},
		{"precedence", "2+3*4", integerToken(14)},
		{"grouping", "(2+3)*4", integerToken(20)},
		{"float-add", "1.5+1", floatToken(2.5)},
		{"float-mul", "2*1.25", floatToken(2.5)},
		{"float-sub", "1.5-0.5", floatToken(1)},
		// Division is always true division, even when the quotient is exact.
		{"div", "1/2", floatToken(0.5)},
		{"div-exact", "4/2", floatToken(2)},
		{"div-floats", "5./2.", floatToken(2.5)},
		{"sq-int", "sq(3)", integerToken(9)},
		{"sq-float", "sq(1.5)", floatToken(2.25)},
		{"sq-nested", "sq(sq(2))", integerToken(16)},
		{"sq-expr", "1+3*9*sq((7)+3)", integerToken(2701)},
		{"if-true", "if(1,2,3)", integerToken(2)},
		{"if-false", "if(0,2,3)", integerToken(3)},
		{"if-float-cond", "if(0.5,2,3)", integerToken(2)},
		{"if-nested", "if(1,if(if(0,0,1),2,3),4)", integerToken(2)},
		{"if-deep", "10+if(1,sq(if(1,1000,5)),10)", integerToken(1000010)},
		// Branches keep their own types.
		{"if-branch-float", "if(1,1.5,2)", floatToken(1.5)},
		{"if-branch-string", `if(0,1,"no")`, stringToken("no")},
		{"type-int", "type(1)", stringToken("Integer")},
		{"type-float", "type(1.0)", stringToken("Float")},
		{"type-string", `type("x")`, stringToken("String")},
		{"type-division", "type(4/2)", stringToken("Float")},
		{"type-of-type", "type(type(1))", stringToken("String")},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := run(t, c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	got, err := run(t, "1/0")
	require.NoError(t, err)
	require.Equal(t, KindFloat, got.kind)
	assert.True(t, math.IsInf(got.real, 1))
}

func TestEvaluateArgumentError(t *testing.T) {
	cases := []struct {
		name       string
		src        string
		fn         string
		need, have int
	}{
		{"sq-empty", "sq()", "sq", 1, 0},
		{"if-short", "if(1,2)", "if", 3, 2},
		{"type-empty", "type()", "type", 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := run(t, c.src)
			var argErr *ArgumentError
			require.ErrorAs(t, err, &argErr)
			assert.Equal(t, c.fn, argErr.Func)
			assert.Equal(t, c.need, argErr.Need)
			assert.Equal(t, c.have, argErr.Have)
		})
	}
}

func TestEvaluateMalformed(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"adjacent-literals", "1 2"},
		{"starved-operator", "1+"},
		{"lone-operator", "+"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := run(t, c.src)
			var malformed *MalformedExpressionError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestEvaluateEmptyStream(t *testing.T) {
	_, err := evaluate(nil)
	var malformed *MalformedExpressionError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 0, malformed.Count)
}

func TestEvaluateOperandError(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"add-string", `"a"+1`},
		{"sq-string", `sq("a")`},
		{"string-condition", `if("x",1,2)`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := run(t, c.src)
			var operr *OperandError
			require.ErrorAs(t, err, &operr)
			assert.Equal(t, KindString, operr.Kind)
		})
	}
}

func TestEvaluateUnknownFunction(t *testing.T) {
	// The lexer only emits recognized names, so drive evaluate directly.
	_, err := evaluate([]token{integerToken(1), funcToken("cos")})
	var unknown *UnknownFunctionError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "cos", unknown.Name)
}

func TestEvaluateUnknownToken(t *testing.T) {
	_, err := evaluate([]token{punctToken(KindRParen, ')')})
	var unknown *UnknownTokenError
	require.ErrorAs(t, err, &unknown)
}

func TestEvaluateCaseInsensitiveCall(t *testing.T) {
	got, err := run(t, "SQ(3)")
	require.NoError(t, err)
	assert.Equal(t, integerToken(9), got)
}
