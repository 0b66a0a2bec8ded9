package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
	"github.com/mlev/payrec"
)

type queryCmd struct {
	expr string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from the final snapshots with jsonpath" }
func (*queryCmd) Usage() string {
	return `plq query -e <jsonpath> <transactions.csv>

  Processes the transactions and applies a jsonpath expression to the array
  of account snapshots.

Usage Examples:
# Available funds of every locked account.
$ plq query -e '$[?(@.locked)].available' transactions.csv

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.expr, "e", "$", "The jsonpath expression to apply.")
}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := decodeTransactions(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p := payrec.NewProcessor()
	p.ProcessAll(transactions)

	// round-trip through JSON so jsonpath sees plain maps and numbers
	data, err := json.Marshal(p.Snapshot())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	val, err := jsonpath.Get(c.expr, doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error evaluating %q: %v\n", c.expr, err)
		return subcommands.ExitFailure
	}

	var out bytes.Buffer
	enc := json.NewEncoder(&out)
	if err := enc.Encode(val); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Print(out.String())

	return subcommands.ExitSuccess
}
