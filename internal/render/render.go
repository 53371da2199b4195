// Package render formats triangle rows for display.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// DefaultWidth is used by the pretty format when no width is known.
const DefaultWidth = 80

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown format")

// Source is anything with rows of decimal coefficients.
// pascal.Triangle and pascal.BigTriangle both satisfy it.
type Source interface {
	Len() int
	Strings(i int) []string
}

// Format selects how rows are written.
type Format string

const (
	FormatText   Format = "text"
	FormatPretty Format = "pretty"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatPretty, FormatJSON, FormatYAML}

// ParseFormat maps a name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q (use one of: %s)", ErrUnknownFormat, name, formatList())
}

func formatList() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

var edgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

// Renderer writes a Source in one Format.
type Renderer struct {
	Format Format
	// Width is the line width the pretty format centres rows in.
	Width int
}

// Render writes every row of src to w.
func (r Renderer) Render(w io.Writer, src Source) error {
	switch r.Format {
	case FormatText, "":
		return renderText(w, src)
	case FormatPretty:
		return renderPretty(w, src, r.Width)
	case FormatJSON:
		return renderJSON(w, src)
	case FormatYAML:
		return renderYAML(w, src)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, r.Format)
	}
}

// FormatRow renders one row as "[1, 4, 6, 4, 1]".
func FormatRow(cells []string) string {
	return "[" + strings.Join(cells, ", ") + "]"
}

func renderText(w io.Writer, src Source) error {
	for i := 0; i < src.Len(); i++ {
		if _, err := fmt.Fprintln(w, FormatRow(src.Strings(i))); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return nil
}

// renderPretty centres rows against the widest one, then centres the block
// inside width when it fits.
func renderPretty(w io.Writer, src Source, width int) error {
	if width <= 0 {
		width = DefaultWidth
	}

	lines := make([][]string, src.Len())
	widest := 0
	for i := range lines {
		lines[i] = src.Strings(i)
		widest = max(widest, len(strings.Join(lines[i], " ")))
	}

	margin := 0
	if widest < width {
		margin = (width - widest) / 2
	}

	for i, cells := range lines {
		plain := len(strings.Join(cells, " "))
		pad := margin + (widest-plain)/2

		styled := make([]string, len(cells))
		copy(styled, cells)
		styled[0] = edgeStyle.Render(cells[0])
		if len(cells) > 1 {
			styled[len(cells)-1] = edgeStyle.Render(cells[len(cells)-1])
		}

		line := strings.Repeat(" ", pad) + strings.Join(styled, " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return nil
}

func renderJSON(w io.Writer, src Source) error {
	rows := make([][]json.Number, src.Len())
	for i := range rows {
		cells := src.Strings(i)
		rows[i] = make([]json.Number, len(cells))
		for k, c := range cells {
			rows[i][k] = json.Number(c)
		}
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("encoding rows as json: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// renderYAML emits a block sequence of flow sequences tagged !!int so big
// coefficients stay exact.
func renderYAML(w io.Writer, src Source) error {
	doc := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	if src.Len() == 0 {
		doc.Style = yaml.FlowStyle
	}

	for i := 0; i < src.Len(); i++ {
		row := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for _, c := range src.Strings(i) {
			row.Content = append(row.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: c})
		}
		doc.Content = append(doc.Content, row)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding rows as yaml: %w", err)
	}
	return enc.Close()
}
