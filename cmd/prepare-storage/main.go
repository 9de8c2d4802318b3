// sodoku-solver - a Sudoku rules engine and solving service.
// Copyright (C) 2025 the sodoku-solver authors.
// Licensed under the MIT license.  See the LICENSE file for details.

// The prepare-storage command readies the solver's stores: it
// migrates the Postgres schema, seeds the sample boards, and
// clears the Redis cache.
//
// With no arguments it ensures the schema and data are present
// without touching anything else.  With -reinit it drops and
// rebuilds everything; with -remove it deletes the seeded
// boards.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/siriousje/sodoku-solver/dbprep"
	"github.com/siriousje/sodoku-solver/storage"
)

func main() {
	reinit := flag.Bool("reinit", false, "drop and rebuild the schema, reseed, clear the cache")
	remove := flag.Bool("remove", false, "delete the seeded sample boards and clear the cache")
	flag.Parse()

	godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx := context.Background()
	switch {
	case *reinit && *remove:
		log.Fatal().Msg("-reinit and -remove are mutually exclusive")
	case *reinit:
		if err := dbprep.ReinitializeAll(ctx); err != nil {
			log.Fatal().Err(err).Msg("reinitialize failed")
		}
		log.Info().Msg("storage reinitialized")
	case *remove:
		if err := dbprep.RemoveData(ctx); err != nil {
			log.Fatal().Err(err).Msg("remove failed")
		}
		log.Info().Msg("sample boards removed")
	default:
		if err := dbprep.EnsureData(ctx); err != nil {
			log.Fatal().Err(err).Msg("prepare failed")
		}
		version, _, err := dbprep.SchemaVersion(storage.DatabaseURL())
		if err != nil {
			log.Fatal().Err(err).Msg("version check failed")
		}
		log.Info().Uint("schemaVersion", version).Msg("storage ready")
	}
}
