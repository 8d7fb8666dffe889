package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/msws/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config    string `short:"c" default:"msws.hcl" type:"path" help:"HCL configuration file (missing file means defaults)"`
	Debug     bool   `help:"Enable debug logging"`
	LogFormat string `name:"log-format" help:"Log format: text or json (overrides config)"`

	Stdout io.Writer `kong:"-"`
	Stderr io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Gen      GenCmd           `cmd:"" help:"Print outputs of a generator stream"`
	Seed     SeedCmd          `cmd:"" help:"Derive valid seeds from integers"`
	Stats    StatsCmd         `cmd:"" help:"Smoke-test output quality across parallel streams"`
	Fixtures FixturesCmd      `cmd:"" help:"Write golden regression vectors to a JSON file"`
}

// load reads the config file and environment, then applies global flags.
// Commands apply their own overrides before calling finish.
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if g.LogFormat != "" {
		cfg.Log.Format = g.LogFormat
	}
	return cfg, nil
}

// finish validates cfg and builds the command logger.
func (g *Globals) finish(cfg *config.Config) (*log.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return setupLogger(g.stderr(), cfg.Log.Level, cfg.Log.Format)
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.Stderr == nil {
		return os.Stderr
	}
	return g.Stderr
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("msws"),
		kong.Description("Middle Square Weyl Sequence pseudorandom number generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
