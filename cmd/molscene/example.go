package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/molscene/go-molscene/scene"
	"github.com/molscene/go-molscene/server"
)

func example(args []string) error {
	fs := flag.NewFlagSet("example", flag.ExitOnError)
	name := fs.String("name", "load", "Example to print: load, label, or color")
	id := fs.String("id", "1cbs", "PDB entry id")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: molscene example [options]

Print one of the built-in example documents as JSON.

Options:
`)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	var doc *scene.State
	var err error
	switch *name {
	case "load":
		doc, err = server.LoadExample(*id)
	case "label":
		doc, err = server.LabelExample(*id)
	case "color":
		doc, err = server.ColorExample(*id)
	default:
		return fmt.Errorf("unknown example %q (want load, label, or color)", *name)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
