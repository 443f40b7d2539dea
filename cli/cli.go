package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/jsxc/cli/cmd"
	"github.com/ardnew/jsxc/pkg"
)

// CLI is the top-level command-line interface for jsxc.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`
	Gen   genConfig   `embed:"" group:"gen"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Transform cmd.Transform `cmd:"" default:"withargs" help:"Replace markup fragments with call expressions"`
	Tree      cmd.Tree      `cmd:""                    help:"Print the parse tree of each fragment"`
	Eval      cmd.Eval      `cmd:""                    help:"Evaluate a fragment into markup"`
	Play      cmd.Play      `cmd:""                    help:"Edit a fragment interactively"`
	Init      cmd.Init      `cmd:""                    help:"Initialize configuration file"`
}

// Run executes the jsxc CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		cmd.ConfigIdentifier: configPath(baseConfig + ".yaml"),
		cmd.CacheIdentifier:  cacheDir(),
		"version":            pkg.Version,
	}.
		CloneWith(cli.Log.vars()).
		CloneWith(cli.Pprof.vars()).
		CloneWith(cli.Gen.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Logger flags take effect before parsing so that parse errors are
	// reported in the requested format.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group(), cli.Gen.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configPath(baseConfig+".json")),
		kong.Configuration(resolveYAML, configPath(baseConfig+".yaml")),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	defer cli.Log.start(ctx)()

	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithOptions(ctx, cli.Gen.options()...)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
