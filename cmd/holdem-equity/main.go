package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `help:"Path to HCL configuration file" default:"holdem-equity.hcl" type:"path"`
	LogLevel string           `help:"Log level (debug|info|warn|error), overrides the config file"`
}

type CLI struct {
	Globals

	Simulate SimulateCmd `cmd:"" help:"Estimate heads-up win rates by Monte Carlo simulation"`
	Card     CardCmd     `cmd:"" help:"Print random card codes"`
	Eval     EvalCmd     `cmd:"" help:"Score a five-card hand or find the best hand in up to seven cards"`
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("holdem-equity"),
		kong.Description("Heads-up Texas Hold'em equity estimator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	}, options...)
	return kong.New(cli, options...)
}

func main() {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		panic(err)
	}
	ctx, err := parser.Parse(nil)
	parser.FatalIfErrorf(err)

	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
