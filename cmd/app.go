// Package cmd implements the CLI application to process transaction ledgers.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mlev/payrec"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&processCmd{}, "reports")
	c.Register(&auditCmd{}, "reports")
	c.Register(&exportCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&streamCmd{}, "events")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var ledgerFile = flag.String("ledger-file", "", "Path to the transactions file (CSV format); defaults to PAYREC_LEDGER_FILE")

func init() {
	// optional .env defaults, flags always win
	_ = godotenv.Load()
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// inputPath resolves the transactions file: positional argument first, then
// the -ledger-file flag, then the PAYREC_LEDGER_FILE environment default.
func inputPath(f *flag.FlagSet) (string, error) {
	if f.NArg() > 0 {
		return f.Arg(0), nil
	}
	if *ledgerFile != "" {
		return *ledgerFile, nil
	}
	if path := envOr("PAYREC_LEDGER_FILE", ""); path != "" {
		return path, nil
	}
	return "", errors.New("must provide an input file path")
}

// decodeTransactions loads the transaction sequence addressed by the
// command's arguments.
func decodeTransactions(f *flag.FlagSet) ([]payrec.Transaction, error) {
	path, err := inputPath(f)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions file %q: %w", path, err)
	}
	defer file.Close()

	return payrec.DecodeTransactions(file)
}
