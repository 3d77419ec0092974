// Command glstate inspects the glstate descriptor tables and applies
// parameter presets to a recording context, printing the driver calls the
// tracker issues.
//
// Usage:
//
//	glstate keys --tier=extended
//	glstate funcs
//	glstate validate presets.yaml
//	glstate apply presets.yaml overlay scissored
//	glstate diff presets.yaml overlay stencil
package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/glstate"
)

// Globals carries state shared by every command.
type Globals struct {
	Out io.Writer
}

// CLI is the root command.
type CLI struct {
	Tier    string           `short:"t" env:"GLSTATE_TIER" help:"Tier to use: baseline or extended. Defaults to the preset file's tier, then baseline."`
	Verbose bool             `short:"v" help:"Log tracker activity to stderr"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Keys     KeysCmd     `cmd:"" help:"List the parameter keys of a tier"`
	Funcs    FuncsCmd    `cmd:"" help:"List the semantic names and their expansion rules"`
	Validate ValidateCmd `cmd:"" help:"Check that every preset in a file resolves"`
	Apply    ApplyCmd    `cmd:"" help:"Apply presets in order and print the resulting driver calls"`
	Diff     DiffCmd     `cmd:"" help:"Print the driver calls needed to go from one preset to another"`
}

// AfterApply runs after flag parsing and sets up logging.
func (c *CLI) AfterApply() error {
	if !c.Verbose {
		return nil
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	slog.SetDefault(logger)
	glstate.SetLogger(logger)
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli, options()...)
	err := ctx.Run(&Globals{Out: os.Stdout})
	ctx.FatalIfErrorf(err)
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("glstate"),
		kong.Description("Inspect GL parameter tables and replay presets through a state tracker."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	}
}

const version = "0.1.0"
