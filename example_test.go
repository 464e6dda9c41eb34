package calculator_test

import (
	"fmt"

	"github.com/chris-robo/calculator"
)

func ExampleCalculate() {
	r, err := calculator.Calculate("1 + sq(2)")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r)
	// Output: 5
}

func ExampleCalculate_conditional() {
	r, _ := calculator.Calculate(`if(2-2, "taken", "not taken")`)
	fmt.Println(r)
	// Output: not taken
}

func ExampleCalculate_type() {
	r, _ := calculator.Calculate("type(1/2)")
	fmt.Println(r)
	// Output: Float
}
