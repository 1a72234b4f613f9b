package command

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/timrogers/wld/internal/wled"
)

// deviceFlag selects the target device for power and brightness commands.
func deviceFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "device",
		Aliases: []string{"d"},
		Usage:   "Device name or address (uses default if not specified)",
	}
}

// OnCommand returns the on command.
func OnCommand() *cli.Command {
	return &cli.Command{
		Name:  "on",
		Usage: "Turn device on",
		Flags: []cli.Flag{deviceFlag()},
		Action: func(c *cli.Context) error {
			return setPower(c, true)
		},
	}
}

// OffCommand returns the off command.
func OffCommand() *cli.Command {
	return &cli.Command{
		Name:  "off",
		Usage: "Turn device off",
		Flags: []cli.Flag{deviceFlag()},
		Action: func(c *cli.Context) error {
			return setPower(c, false)
		},
	}
}

// BrightnessCommand returns the brightness command.
func BrightnessCommand() *cli.Command {
	return &cli.Command{
		Name:      "brightness",
		Aliases:   []string{"bri"},
		Usage:     "Set device brightness (0-255)",
		ArgsUsage: "VALUE",
		Flags:     []cli.Flag{deviceFlag()},
		Action:    setBrightness,
	}
}

func setPower(c *cli.Context, on bool) error {
	address, err := resolveDevice(c)
	if err != nil {
		return err
	}

	client := wled.NewClient(address, c.Duration("timeout"))
	if err := client.SetPower(c.Context, on); err != nil {
		return err
	}

	action := "off"
	if on {
		action = "on"
	}
	fmt.Fprintf(c.App.Writer, "Turned %s device at %s\n", action, address)
	return nil
}

func setBrightness(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wld brightness VALUE", 2)
	}
	value, err := strconv.ParseUint(c.Args().First(), 10, 8)
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid brightness '%s': must be an integer between 0 and 255", c.Args().First()), 2)
	}

	address, err := resolveDevice(c)
	if err != nil {
		return err
	}

	client := wled.NewClient(address, c.Duration("timeout"))
	if err := client.SetBrightness(c.Context, uint8(value)); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Set brightness to %d for device at %s\n", value, address)
	return nil
}

// resolveDevice maps the --device flag through the registry resolution
// rules. Overrides apply here: resolution is read-only, so the env default
// can never leak back into the file.
func resolveDevice(c *cli.Context) (string, error) {
	reg, err := openStore(c).LoadWithOverrides()
	if err != nil {
		return "", err
	}

	address, source, err := reg.Resolve(c.String("device"))
	if err != nil {
		return "", err
	}
	slog.Debug("resolved device", "address", address, "source", source.String())
	return address, nil
}
