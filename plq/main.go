package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/mlev/payrec/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// shell completion runs, and exits, before anything else
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() {
	files := predict.Files("*.csv")
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"process": {
				Flags: map[string]complete.Predictor{
					"format": predict.Set{"csv", "markdown"},
					"cur":    predict.Something,
				},
				Args: files,
			},
			"audit":  {Args: files},
			"export": {Flags: map[string]complete.Predictor{"o": predict.Files("*")}, Args: files},
			"query":  {Flags: map[string]complete.Predictor{"e": predict.Something}, Args: files},
			"stream": {
				Flags: map[string]complete.Predictor{
					"brokers": predict.Something,
					"topic":   predict.Something,
				},
				Args: files,
			},
			"topic": {Args: predict.Set{"readme", "formats", "disputes", "outcomes"}},
		},
		Flags: map[string]complete.Predictor{
			"ledger-file": files,
		},
	}
	c.Complete("plq")
}
