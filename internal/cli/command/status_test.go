package command

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestStatusEmpty(t *testing.T) {
	out, err := runApp(t, "--config", configPath(t), "status")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "No devices saved") {
		t.Errorf("got %q", out)
	}
}

func TestStatusAllReachable(t *testing.T) {
	on := newFakeDevice(t, `{"on":true,"bri":128}`)
	off := newFakeDevice(t, `{"on":false,"bri":128}`)
	path := configPath(t)

	if _, err := runApp(t, "--config", path, "add", "desk", on.addr()); err != nil {
		t.Fatal(err)
	}
	if _, err := runApp(t, "--config", path, "add", "shelf", off.addr()); err != nil {
		t.Fatal(err)
	}

	out, err := runApp(t, "--config", path, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, "desk ("+on.addr()+") (default): ON") {
		t.Errorf("missing desk line in %q", out)
	}
	if !strings.Contains(out, "shelf ("+off.addr()+"): OFF") {
		t.Errorf("missing shelf line in %q", out)
	}
}

func TestStatusUnreachableExitsNonZero(t *testing.T) {
	on := newFakeDevice(t, `{"on":true}`)
	path := configPath(t)

	if _, err := runApp(t, "--config", path, "add", "desk", on.addr()); err != nil {
		t.Fatal(err)
	}
	if _, err := runApp(t, "--config", path, "add", "shelf", unreachableAddr(t)); err != nil {
		t.Fatal(err)
	}

	out, err := runApp(t, "--config", path, "--timeout", "500ms", "status")
	if err == nil {
		t.Fatal("expected exit error")
	}
	var exitErr cli.ExitCoder
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("err = %v, want exit code 1", err)
	}
	if !strings.Contains(out, "UNREACHABLE") {
		t.Errorf("missing UNREACHABLE in %q", out)
	}
	if !strings.Contains(out, "ON") {
		t.Errorf("missing ON in %q", out)
	}
}

func TestStatusIndeterminateCountsAsOn(t *testing.T) {
	// A device that answers without a power field is reachable, so it
	// reports as on.
	device := newFakeDevice(t, `{"bri":42}`)
	path := configPath(t)

	if _, err := runApp(t, "--config", path, "add", "desk", device.addr()); err != nil {
		t.Fatal(err)
	}

	out, err := runApp(t, "--config", path, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(out, ": ON") {
		t.Errorf("got %q", out)
	}
}

func TestStatusJSON(t *testing.T) {
	device := newFakeDevice(t, `{"on":true}`)
	path := configPath(t)

	if _, err := runApp(t, "--config", path, "add", "desk", device.addr()); err != nil {
		t.Fatal(err)
	}

	out, err := runApp(t, "--config", path, "-o", "json", "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}

	var rows []struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if len(rows) != 1 || rows[0].Status != "ON" {
		t.Errorf("rows = %+v", rows)
	}
}
