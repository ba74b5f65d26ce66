package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Dulina14/IEEE754-FP-ALU/driver"
)

func main() {
	var vectors string
	var output string
	var defines bool
	var verbose bool

	flag.StringVar(&vectors, "c", "-", ".vec file to run")
	flag.StringVar(&output, "o", "-", "Response output")
	flag.BoolVar(&defines, "D", false, "Dump engine defines, do not execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	drv := driver.NewDriver()
	drv.Verbose = verbose

	if defines {
		for key, value := range drv.Fpu.Defines() {
			fmt.Printf("%v=%v\n", key, value)
		}
		return
	}

	inf := os.Stdin
	if vectors != "-" {
		var err error
		inf, err = os.Open(vectors)
		if err != nil {
			log.Fatalf("%v: %v", vectors, err)
		}
		defer inf.Close()
	}

	ouf := os.Stdout
	if output != "-" {
		var err error
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	parser := drv.NewParser()
	parser.Verbose = verbose

	vecs, err := parser.Parse(inf)
	if err != nil {
		log.Fatalf("%v: %v", vectors, err)
	}

	_, err = drv.RunAll(vecs, ouf)
	if err != nil {
		log.Fatal(err)
	}
}
