package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		src  string
		ok   bool
	}{
		{"flat", "1+2", true},
		{"balanced", "(1+2)", true},
		{"nested", "(((5)))", true},
		{"call", "if(1,(2),3)", true},
		{"unclosed", "(1+2", false},
		{"unopened", "1+2)", false},
		{"crossed", ")1+2(", false},
		{"deep-unclosed", "((1)", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := tokenize(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.ok, validate(toks))
		})
	}
}

func TestValidateEmptyStream(t *testing.T) {
	assert.True(t, validate(nil))
}
