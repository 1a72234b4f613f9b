package command

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/timrogers/wld/internal/agent"
	"github.com/timrogers/wld/internal/infra/shutdown"
	"github.com/timrogers/wld/internal/telemetry/logger"
)

// AgentCommand returns the mcp command.
func AgentCommand() *cli.Command {
	return &cli.Command{
		Name:    "mcp",
		Aliases: []string{"agent"},
		Usage:   "Start an MCP (Model Context Protocol) server for controlling WLED devices",
		Action:  agentServe,
	}
}

func agentServe(c *cli.Context) error {
	// Stdout belongs to the protocol; logs must stay on stderr.
	cfg := logger.DefaultConfig()
	cfg.Output = os.Stderr
	if c.Bool("verbose") {
		cfg.Level = "debug"
	}
	log := logger.New(cfg)

	srv := agent.New(openStore(c),
		agent.WithLogger(log),
		agent.WithTimeout(c.Duration("timeout")),
	)

	ctx, stop := shutdown.Notify(c.Context)
	defer stop()

	return srv.Run(ctx)
}
