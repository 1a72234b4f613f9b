package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/timrogers/wld/internal/wled"
)

// deviceStatus is one row of status output.
type deviceStatus struct {
	Name    string      `json:"name"`
	Address string      `json:"address"`
	Default bool        `json:"default"`
	Status  wled.Status `json:"status"`
}

// StatusCommand returns the status command.
func StatusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Check status of all configured devices",
		Action: deviceStatusAll,
	}
}

func deviceStatusAll(c *cli.Context) error {
	store := openStore(c)
	reg, err := store.Load()
	if err != nil {
		return err
	}

	if reg.Len() == 0 {
		fmt.Fprintln(c.App.Writer, "No devices saved")
		return nil
	}

	timeout := c.Duration("timeout")
	allReachable := true
	var rows []deviceStatus

	for device := range reg.List() {
		client := wled.NewClient(device.Address, timeout)
		status := client.Status(c.Context)
		if status == wled.StatusUnreachable {
			allReachable = false
		}
		rows = append(rows, deviceStatus{
			Name:    device.Name,
			Address: device.Address,
			Default: device.Default,
			Status:  status,
		})
	}

	if c.String("output") == "table" {
		fmt.Fprintf(c.App.Writer, "Checking status of all devices...\n\n")
		for _, row := range rows {
			marker := ""
			if row.Default {
				marker = " (default)"
			}
			fmt.Fprintf(c.App.Writer, "  %s (%s)%s: %s\n", row.Name, row.Address, marker, row.Status)
		}
	} else {
		if err := formatter(c).Format(c.App.Writer, rows); err != nil {
			return err
		}
	}

	if !allReachable {
		return cli.Exit("", 1)
	}
	return nil
}
