// Command calculator evaluates arithmetic expressions. Expressions given as
// arguments are evaluated once each; otherwise it reads one expression per
// line from -in or stdin, printing each result, until EOF. Errors are
// reported and never stop the loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	calc "github.com/chris-robo/calculator"
)

func main() {
	log.SetFlags(0)
	var inname string
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.Parse()

	if flag.NArg() > 0 {
		for _, arg := range flag.Args() {
			evalLine(arg)
		}
		if inname == "" {
			return
		}
	}

	f := os.Stdin
	if inname != "" && inname != "-" {
		in, err := os.Open(inname)
		if err != nil {
			log.Fatal(err)
		}
		defer in.Close()
		f = in
	}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		evalLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}

func evalLine(src string) {
	r, err := calc.Calculate(src)
	switch {
	case err != nil:
		log.Println(err)
	case r == nil:
		log.Println("invalid expression: unbalanced brackets")
	default:
		fmt.Println(r)
	}
}
