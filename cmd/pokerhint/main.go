package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhint/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command.
type Globals struct {
	Config  string           `short:"c" default:"pokerhint.hcl" env:"POKERHINT_CONFIG" help:"Path to HCL configuration file"`
	Debug   bool             `help:"Enable debug logging"`
	NoColor bool             `help:"Disable colored output"`
	Version kong.VersionFlag `short:"v" help:"Show version"`

	stdout io.Writer
	stderr io.Writer
}

type CLI struct {
	Globals

	Classify ClassifyCmd `cmd:"" help:"Print the category of one or more hands"`
	Predict  PredictCmd  `cmd:"" help:"Run the fold models on a hand"`
	Sample   SampleCmd   `cmd:"" help:"Deal a random hand and classify it"`
	Encode   EncodeCmd   `cmd:"" help:"Write the feature matrix for a file of hands"`
	Stats    StatsCmd    `cmd:"" help:"Estimate category frequencies by simulation"`
	Serve    ServeCmd    `cmd:"" help:"Run the WebSocket evaluation service"`
}

func (g *Globals) out() io.Writer {
	if g.stdout != nil {
		return g.stdout
	}
	return os.Stdout
}

func (g *Globals) errOut() io.Writer {
	if g.stderr != nil {
		return g.stderr
	}
	return os.Stderr
}

// setup loads configuration and builds the logger every command starts from.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	if g.NoColor {
		disableColor()
	}
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	logger := SetupLogger(g.errOut(), cfg.Server.LogLevel, g.Debug)
	logger.Debug("Loaded configuration", "path", g.Config)
	return cfg, logger, nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("pokerhint"),
		kong.Description("Poker hand categories and fold hints"),
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
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	err = ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
