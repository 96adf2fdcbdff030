// Package fixture renders path records as fixture tables for test suites
// of path handling libraries.
package fixture

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kuleuven/pathcases"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown fixture format")

type Format string

const (
	Literal Format = "literal" // Aligned array of object literals, one record per line.
	JSON    Format = "json"
	YAML    Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{Literal, JSON, YAML}

// ParseFormat returns the format with the given name.
// The empty string selects Literal.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return Literal, nil
	}

	f := Format(strings.ToLower(name))

	if !lo.Contains(Formats, f) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}

	return f, nil
}

// Entry is a record with every field rendered as a string.
type Entry struct {
	Path       string `json:"path" yaml:"path"`
	IsAbsolute string `json:"isAbsolute" yaml:"isAbsolute"`
	Basename   string `json:"basename" yaml:"basename"`
	Dirname    string `json:"dirname" yaml:"dirname"`
	Extname    string `json:"extname" yaml:"extname"`
	Parent     string `json:"parent" yaml:"parent"`
	Cleanpath  string `json:"cleanpath" yaml:"cleanpath"`
}

func NewEntry(r pathcases.Record) Entry {
	return Entry{
		Path:       r.Path,
		IsAbsolute: strconv.FormatBool(r.IsAbsolute),
		Basename:   r.Basename,
		Dirname:    r.Dirname,
		Extname:    r.Extname,
		Parent:     r.Parent,
		Cleanpath:  r.Cleanpath,
	}
}

// Keys holds the field names in output order.
var Keys = []string{"path", "isAbsolute", "basename", "dirname", "extname", "parent", "cleanpath"}

// literals returns the fields in output order, quoted as string literals.
// The boolean is left unquoted.
func (e Entry) literals() []string {
	return []string{
		strconv.Quote(e.Path),
		e.IsAbsolute,
		strconv.Quote(e.Basename),
		strconv.Quote(e.Dirname),
		strconv.Quote(e.Extname),
		strconv.Quote(e.Parent),
		strconv.Quote(e.Cleanpath),
	}
}

// Encode writes the records to w in the given format.
func Encode(w io.Writer, format Format, records []pathcases.Record) error {
	entries := lo.Map(records, func(r pathcases.Record, _ int) Entry {
		return NewEntry(r)
	})

	switch format {
	case Literal:
		_, err := io.WriteString(w, renderLiteral(entries))

		return err
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		return enc.Encode(entries)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)

		if err := enc.Encode(entries); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderLiteral(entries []Entry) string {
	rows := lo.Map(entries, func(e Entry, _ int) []string {
		return e.literals()
	})

	widths := make([]int, len(Keys))

	for _, row := range rows {
		for i, value := range row {
			widths[i] = max(widths[i], len(value))
		}
	}

	var sb strings.Builder

	sb.WriteString("[\n")

	for _, row := range rows {
		sb.WriteString("    {")

		for i, value := range row {
			if i > 0 {
				sb.WriteString(",")
			}

			fmt.Fprintf(&sb, " %q: %-*s", Keys[i], widths[i], value)
		}

		sb.WriteString(" },\n")
	}

	sb.WriteString("]\n")

	return sb.String()
}
