// Copyright (C) 2024 Simon Howard. All Rights Reserved.

// Command yocton-print reads a yocton file and prints its contents, or
// with -reformat re-emits it as canonical yocton text.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/fragglet/yocton"
)

var reformat = flag.Bool("reformat", false, "re-emit the input as canonical yocton text")

var propName = color.New(color.FgCyan)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [-reformat] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var in io.Reader = os.Stdin
	switch flag.NArg() {
	case 0:
		// read from stdin
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	default:
		flag.Usage()
		os.Exit(2)
	}

	obj := yocton.NewObject(in)
	if *reformat {
		w := yocton.NewWriter(os.Stdout)
		reformatObject(obj, w)
		if err := w.Flush(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		printObject(obj, 0)
	}
	if err := obj.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printObject(obj *yocton.Object, indent int) {
	for p := range obj.Props() {
		fmt.Printf("%*s", indent, "")
		propName.Print(p.Name())
		if p.Kind() == yocton.KindObject {
			fmt.Println(":")
			printObject(p.Inner(), indent+4)
		} else {
			fmt.Printf(" = %s\n", yocton.Quote(p.Value()))
		}
	}
}

func reformatObject(obj *yocton.Object, w *yocton.Writer) {
	for p := range obj.Props() {
		if p.Kind() == yocton.KindObject {
			w.BeginObject(p.Name())
			reformatObject(p.Inner(), w)
			w.EndObject()
		} else {
			w.Prop(p.Name(), p.Value())
		}
	}
}
