package main

import (
	"fmt"
	"log"
	"os"

	"q.log/tableau/instance"
	"q.log/tableau/model"
	"q.log/tableau/simplex"
)

// usage: tableau <file.mps> [max|min] [auto|primal|dual|bigm]
func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: tableau <file.mps> [max|min] [auto|primal|dual|bigm]")
		os.Exit(2)
	}
	filename := os.Args[1]

	mode := model.Minimize
	if len(os.Args) > 2 {
		var err error
		if mode, err = model.ParseMode(os.Args[2]); err != nil {
			log.Fatal(err)
		}
	}
	method := simplex.Auto
	if len(os.Args) > 3 {
		var err error
		if method, err = simplex.ParseMethod(os.Args[3]); err != nil {
			log.Fatal(err)
		}
	}

	r := instance.NewReader(filename)
	p, err := r.ConstructProblemFromFile(mode)
	if err != nil {
		log.Fatal(err)
	}

	p.PrintC()
	p.PrintA()
	p.PrintB()

	res, err := simplex.Solve(method, p, simplex.WithObserver(simplex.PrintSnapshot))
	if err != nil {
		log.Fatal(err)
	}
	if method == simplex.Auto {
		fmt.Printf("strategy: %v\n", res.Method)
	}
	simplex.FprintResult(os.Stdout, res)

	if !res.IsOptimal() {
		os.Exit(1)
	}
}
