package command

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"

	"github.com/timrogers/wld/internal/registry"
)

// AddCommand returns the add command.
func AddCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a new WLED device",
		ArgsUsage: "NAME ADDRESS",
		Action:    deviceAdd,
	}
}

// DeleteCommand returns the delete command.
func DeleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a saved device",
		ArgsUsage: "NAME",
		Action:    deviceDelete,
	}
}

// ListCommand returns the ls command.
func ListCommand() *cli.Command {
	return &cli.Command{
		Name:    "ls",
		Aliases: []string{"list"},
		Usage:   "List all saved devices",
		Action:  deviceList,
	}
}

// SetDefaultCommand returns the set-default command.
func SetDefaultCommand() *cli.Command {
	return &cli.Command{
		Name:      "set-default",
		Usage:     "Set the default device",
		ArgsUsage: "NAME",
		Action:    deviceSetDefault,
	}
}

func deviceAdd(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.Exit("usage: wld add NAME ADDRESS", 2)
	}
	name, address := c.Args().Get(0), c.Args().Get(1)

	store := openStore(c)
	reg, err := store.Load()
	if err != nil {
		return err
	}

	becameDefault := reg.Add(name, address)
	if err := store.Save(reg); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Added device '%s' with address %s\n", name, address)
	if becameDefault {
		fmt.Fprintf(c.App.Writer, "Set '%s' as the default device\n", name)
	}
	return nil
}

func deviceDelete(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wld delete NAME", 2)
	}
	name := c.Args().First()

	store := openStore(c)
	reg, err := store.Load()
	if err != nil {
		return err
	}

	if err := reg.Remove(name); err != nil {
		return err
	}
	if err := store.Save(reg); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Deleted device '%s'\n", name)
	return nil
}

func deviceList(c *cli.Context) error {
	store := openStore(c)
	reg, err := store.Load()
	if err != nil {
		return err
	}

	if c.String("output") == "table" {
		if reg.Len() == 0 {
			fmt.Fprintln(c.App.Writer, "No devices saved")
			return nil
		}
		fmt.Fprintln(c.App.Writer, "Saved devices:")
		for device := range reg.List() {
			marker := ""
			if device.Default {
				marker = " (default)"
			}
			fmt.Fprintf(c.App.Writer, "  %s - %s%s\n", device.Name, device.Address, marker)
		}
		return nil
	}

	devices := slices.Collect(reg.List())
	if devices == nil {
		devices = []registry.Device{}
	}
	return formatter(c).Format(c.App.Writer, devices)
}

func deviceSetDefault(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: wld set-default NAME", 2)
	}
	name := c.Args().First()

	store := openStore(c)
	reg, err := store.Load()
	if err != nil {
		return err
	}

	if err := reg.SetDefault(name); err != nil {
		return err
	}
	if err := store.Save(reg); err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "Set '%s' as the default device\n", name)
	return nil
}
