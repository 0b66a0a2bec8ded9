package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mlev/payrec"
	"github.com/mlev/payrec/renderer"
)

type processCmd struct {
	format string
	cur    string
}

func (*processCmd) Name() string     { return "process" }
func (*processCmd) Synopsis() string { return "process a transactions file and report final balances" }
func (*processCmd) Usage() string {
	return `plq process [-format csv|markdown] [-cur <code>] <transactions.csv>

  Applies every transaction in input order and prints one line per account
  with columns client, available, held, total, locked. Accounts whose total
  is not representable are omitted. Malformed input rows are skipped.
`
}

func (c *processCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.format, "format", "csv", "Output format (csv, markdown).")
	f.StringVar(&c.cur, "cur", "", "Display currency code for the total column (markdown only).")
}

func (c *processCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := decodeTransactions(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p := payrec.NewProcessor()
	p.ProcessAll(transactions)

	snaps := p.Snapshot()
	switch c.format {
	case "csv":
		if err := payrec.EncodeSnapshotsCSV(os.Stdout, snaps); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	case "markdown":
		printMarkdown(renderer.AccountsMarkdown(snaps, c.cur))
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", c.format)
		return subcommands.ExitUsageError
	}

	return subcommands.ExitSuccess
}
