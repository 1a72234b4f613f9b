package command

import (
	"github.com/urfave/cli/v2"

	"github.com/timrogers/wld/internal/cli/output"
	"github.com/timrogers/wld/internal/infra/buildinfo"
	"github.com/timrogers/wld/internal/registry"
	"github.com/timrogers/wld/internal/telemetry/logger"
	"github.com/timrogers/wld/internal/wled"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "wld",
		Usage:   "Control WLED lights from your terminal",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			AddCommand(),
			DeleteCommand(),
			ListCommand(),
			SetDefaultCommand(),
			OnCommand(),
			OffCommand(),
			BrightnessCommand(),
			StatusCommand(),
			AgentCommand(),
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logger.SetLevel("debug")
			}
			return nil
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to the device registry file",
			EnvVars: []string{"WLD_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Usage:   "Device request timeout",
			EnvVars: []string{"WLD_TIMEOUT"},
			Value:   wled.DefaultTimeout,
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// openStore returns the registry store selected by the --config flag.
func openStore(c *cli.Context) *registry.Store {
	return registry.NewStore(c.String("config"))
}

// formatter returns the output formatter selected by the --output flag.
func formatter(c *cli.Context) output.Formatter {
	return output.NewFormatter(output.Format(c.String("output")))
}
