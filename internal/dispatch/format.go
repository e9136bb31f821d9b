package dispatch

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/textutils/internal/errors"
	"github.com/conneroisu/textutils/internal/registry"
)

// Format selects how the list meta-command renders the registry.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// SupportedFormats lists the accepted list formats.
var SupportedFormats = []string{string(FormatTable), string(FormatJSON), string(FormatYAML)}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatTable, nil
	case FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeValidationFailed,
			fmt.Sprintf("unsupported format: %s (supported: %s)", s, strings.Join(SupportedFormats, ", ")))
	}
}

// WriteList renders the registry to the dispatcher's output.
func (d *Dispatcher) WriteList(format Format) error {
	if err := RenderList(d.out, d.registry.List(), format); err != nil {
		return errors.NewIOError(errors.ErrCodeOutputWrite, "failed to write command list", err).
			WithCommand(ListCommand)
	}
	return nil
}

// RenderList writes entries to w in the given format.
func RenderList(w io.Writer, entries []registry.Entry, format Format) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, entries)
	case FormatYAML:
		return renderYAML(w, entries)
	case FormatTable, "":
		return renderTable(w, entries)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func renderTable(w io.Writer, entries []registry.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "COMMAND\tDESCRIPTION")
	fmt.Fprintln(tw, strings.Repeat("-", 7)+"\t"+strings.Repeat("-", 11))
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Description)
	}

	return tw.Flush()
}

// OtherCategory heads the group of entries that carry no category.
const OtherCategory = "Other Commands"

// RenderGrouped writes entries as a table split into category groups.
// Categories named in order come first, any remaining categories follow
// alphabetically and entries without a category are listed last.
func RenderGrouped(w io.Writer, entries []registry.Entry, order []string) error {
	groups := make(map[string][]registry.Entry)
	for _, e := range entries {
		groups[e.Category] = append(groups[e.Category], e)
	}

	seen := make(map[string]bool, len(order))
	var headings []string
	for _, c := range order {
		if len(groups[c]) > 0 && !seen[c] {
			headings = append(headings, c)
		}
		seen[c] = true
	}
	var rest []string
	for c := range groups {
		if c != "" && !seen[c] {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	headings = append(headings, rest...)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	write := func(title string, group []registry.Entry) {
		fmt.Fprintln(tw, title+":")
		for _, e := range group {
			fmt.Fprintf(tw, "  %s\t%s\n", e.Name, e.Description)
		}
	}

	for i, c := range headings {
		if i > 0 {
			fmt.Fprintln(tw)
		}
		write(c, groups[c])
	}
	if other := groups[""]; len(other) > 0 {
		if len(headings) > 0 {
			fmt.Fprintln(tw)
		}
		write(OtherCategory, other)
	}

	return tw.Flush()
}

func renderJSON(w io.Writer, entries []registry.Entry) error {
	if entries == nil {
		entries = []registry.Entry{}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(entries)
}

func renderYAML(w io.Writer, entries []registry.Entry) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(entries); err != nil {
		return err
	}
	return encoder.Close()
}
