package output

import (
	"bytes"
	"strings"
	"testing"
)

type row struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Default bool   `json:"default"`
	hidden  string
	Skipped string `json:"skipped" table:"-"`
}

func TestTableFormatter_StructSlice(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	data := []row{
		{Name: "desk", Address: "10.0.0.5", Default: true, hidden: "x", Skipped: "y"},
		{Name: "lamp", Address: "10.0.0.6"},
	}
	if err := f.Format(&buf, data); err != nil {
		t.Fatalf("Format failed: %v", err)
	}

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	header := lines[0]
	for _, want := range []string{"NAME", "ADDRESS", "DEFAULT"} {
		if !strings.Contains(header, want) {
			t.Errorf("header %q missing %q", header, want)
		}
	}
	if strings.Contains(header, "SKIPPED") {
		t.Errorf("header %q should not include table:\"-\" columns", header)
	}
	if !strings.Contains(lines[1], "desk") || !strings.Contains(lines[1], "true") {
		t.Errorf("row %q missing expected cells", lines[1])
	}
	if !strings.Contains(lines[2], "false") {
		t.Errorf("row %q should render false default", lines[2])
	}
}

func TestTableFormatter_EmptySlice(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, []row{}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("output = %q, want empty", buf.String())
	}
}

func TestTableFormatter_NoHeaders(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}

	if err := f.Format(&buf, []row{{Name: "desk", Address: "10.0.0.5"}}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.Contains(buf.String(), "NAME") {
		t.Errorf("output = %q, want no headers", buf.String())
	}
}

func TestTableFormatter_DirectTable(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	table := &Table{}
	table.SetHeaders("NAME", "STATE")
	table.AddRow("desk", "ON")

	if err := f.Format(&buf, table); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "desk") {
		t.Errorf("output = %q, want rendered table", out)
	}
}

func TestTableFormatter_FallbackToJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}

	if err := f.Format(&buf, 42); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "42" {
		t.Errorf("output = %q, want JSON fallback", buf.String())
	}
}

func TestTableFormatter_EmptyStringsRenderDash(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{NoHeaders: true}

	if err := f.Format(&buf, []row{{Name: "desk"}}); err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	if !strings.Contains(buf.String(), "-") {
		t.Errorf("output = %q, want dash for empty address", buf.String())
	}
}
