package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog"

	"github.com/molscene/go-molscene/server"
	"github.com/molscene/go-molscene/storage"
)

func serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "Listen address")
	db := fs.String("db", ":memory:", "SQLite database path for example data")
	seed := fs.String("seed", "", "Directory of example data to load on startup")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: molscene serve [options]

Run the scene-description HTTP service.

Options:
`)
		fs.PrintDefaults()
		fmt.Fprint(os.Stderr, `
Endpoints:
  /load/{id}     minimal cartoon document for a PDB entry
  /label/{id}    document with residue labels
  /color/{id}    document with per-component coloring
  /data/{id}/... companion molecule and annotation data
`)
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()

	store, err := storage.Open(*db)
	if err != nil {
		return err
	}
	defer store.Close()

	if *seed != "" {
		if err := store.SeedDir(*seed); err != nil {
			return err
		}
		log.Info().Str("dir", *seed).Msg("seeded example data")
	}

	srv := server.New(server.WithStore(store), server.WithLogger(log))
	log.Info().Str("addr", *addr).Msg("listening")
	return http.ListenAndServe(*addr, srv)
}
