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

type auditCmd struct {
	failed bool
}

func (*auditCmd) Name() string     { return "audit" }
func (*auditCmd) Synopsis() string { return "report the audit outcome of every transaction" }
func (*auditCmd) Usage() string {
	return `plq audit [-failed] <transactions.csv>

  Applies every transaction in input order and prints one row per
  transaction with its audit outcome. A failed transaction leaves its
  account unchanged; processing always continues to the next one.
`
}

func (c *auditCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.failed, "failed", false, "Show only rejected transactions.")
}

func (c *auditCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transactions, err := decodeTransactions(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	p := payrec.NewProcessor()
	records := p.ProcessAll(transactions)

	printMarkdown(renderer.AuditMarkdown(transactions, records, c.failed))

	return subcommands.ExitSuccess
}
