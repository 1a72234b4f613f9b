package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/timrogers/wld/internal/wled"
)

// deviceParams are the arguments shared by the power tools.
type deviceParams struct {
	Device string `json:"device"`
}

func deviceSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"device": map[string]any{
				"type":        "string",
				"description": "Device name or IP address (optional - if not specified, the default device is used)",
			},
		},
	}
}

func (s *Server) tools() []toolDef {
	return []toolDef{
		{
			Name:        "wled_devices",
			Description: "List saved WLED devices from configuration",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "wled_on",
			Description: "Turn WLED device on. By default, the default device is used, but you can optionally specify a device name or IP address.",
			InputSchema: deviceSchema(),
		},
		{
			Name:        "wled_off",
			Description: "Turn WLED device off. By default, the default device is used, but you can optionally specify a device name or IP address.",
			InputSchema: deviceSchema(),
		},
	}
}

func (s *Server) callTool(ctx context.Context, params callParams) (any, *rpcError) {
	s.logger.Debug("tool call", "tool", params.Name)

	switch params.Name {
	case "wled_devices":
		return s.listDevices(), nil
	case "wled_on":
		return s.setPower(ctx, params.Arguments, true), nil
	case "wled_off":
		return s.setPower(ctx, params.Arguments, false), nil
	default:
		return nil, &rpcError{Code: codeInvalidParams, Message: "unknown tool: " + params.Name}
	}
}

func (s *Server) listDevices() toolResult {
	reg, err := s.loadRegistry()
	if err != nil {
		return errorResult("Failed to load configuration: " + err.Error())
	}
	if reg.Len() == 0 {
		return textResult("No devices saved")
	}

	var b strings.Builder
	b.WriteString("Saved devices:\n")
	for device := range reg.List() {
		marker := ""
		if device.Default {
			marker = " (default)"
		}
		fmt.Fprintf(&b, "  %s - %s%s\n", device.Name, device.Address, marker)
	}
	return textResult(b.String())
}

func (s *Server) setPower(ctx context.Context, args json.RawMessage, on bool) toolResult {
	var params deviceParams
	if len(args) > 0 {
		if err := json.Unmarshal(args, &params); err != nil {
			return errorResult("invalid arguments: " + err.Error())
		}
	}

	reg, err := s.loadRegistry()
	if err != nil {
		return errorResult(err.Error())
	}
	address, source, err := reg.Resolve(params.Device)
	if err != nil {
		return errorResult(err.Error())
	}
	s.logger.Debug("resolved device", "address", address, "source", source.String())

	client := wled.NewClient(address, s.timeout)
	if err := client.SetPower(ctx, on); err != nil {
		return errorResult(err.Error())
	}

	if on {
		return textResult("Device turned on successfully")
	}
	return textResult("Device turned off successfully")
}
