package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/molscene/go-molscene/scene"
)

func validate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	input := fs.String("input", "", "Document file to validate (default: stdin)")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: molscene validate [options]

Validate a scene document: kinds, parameter shapes, enum values, tuple
arity, and parent/child placement.

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	var data []byte
	var err error
	if *input == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(*input)
	}
	if err != nil {
		return err
	}

	doc, err := scene.DecodeState(data)
	if err != nil {
		return err
	}
	fmt.Printf("valid: version %d, %d nodes\n", doc.Version, countNodes(doc.Root))
	return nil
}

func countNodes(n *scene.Node) int {
	count := 1
	for _, c := range n.Children {
		count += countNodes(c)
	}
	return count
}
