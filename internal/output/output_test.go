package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrinter_Messages(t *testing.T) {
	tests := []struct {
		name   string
		call   func(p *Printer)
		marker string
		text   string
	}{
		{"success", func(p *Printer) { p.Success("saved plume.yml") }, "✔", "saved plume.yml"},
		{"error", func(p *Printer) { p.Error("bad row count") }, "✘", "bad row count"},
		{"warn", func(p *Printer) { p.Warn("no config file") }, "!", "no config file"},
		{"info", func(p *Printer) { p.Info("Next steps:") }, "•", "Next steps:"},
		{"step", func(p *Printer) { p.Step("plume site check") }, "   ", "plume site check"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.call(New(&buf))

			out := buf.String()
			if !strings.Contains(out, tt.marker) {
				t.Errorf("expected %q in %q", tt.marker, out)
			}
			if !strings.Contains(out, tt.text) {
				t.Errorf("expected %q in %q", tt.text, out)
			}
		})
	}
}

func TestPrinter_Verbose(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)

	p.Verbose("loading plume.yml")
	if buf.Len() != 0 {
		t.Errorf("verbose output should be empty when verbose mode is off, got %q", buf.String())
	}

	p.SetVerbose(true)
	p.Verbose("loading plume.yml")
	if !strings.Contains(buf.String(), "loading plume.yml") {
		t.Errorf("verbose output should contain the message when enabled, got %q", buf.String())
	}
}

func TestPrinter_Quiet(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.SetQuiet(true)
	p.SetVerbose(true)

	p.Success("a")
	p.Info("b")
	p.Step("c")
	p.Verbose("d")
	if buf.Len() != 0 {
		t.Fatalf("quiet mode should suppress non-errors, got %q", buf.String())
	}

	p.Error("still shown")
	if !strings.Contains(buf.String(), "still shown") {
		t.Errorf("errors should print in quiet mode, got %q", buf.String())
	}
}
