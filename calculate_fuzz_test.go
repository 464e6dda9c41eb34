package calculator_test

import (
	"testing"

	"github.com/chris-robo/calculator"
)

func FuzzCalculate(f *testing.F) {
	f.Add("1+3*9*((7)+3)")
	f.Add("sq(sq(2))")
	f.Add(`if(1,"a",'b')`)
	f.Add("1/0")
	f.Add(`type("\n")`)
	f.Fuzz(func(t *testing.T, s string) {
		calculator.Calculate(s)
	})
}
