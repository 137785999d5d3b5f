// Package export writes palettes in formats other tools can consume.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sdahlbac/palettegen/colorspace"
	"github.com/sdahlbac/palettegen/contrast"
	"github.com/sdahlbac/palettegen/palette"
)

// Format is an export file format.
type Format string

const (
	Text Format = "text"
	CSS  Format = "css"
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Formats lists the supported formats.
var Formats = []Format{Text, CSS, JSON, TOML, YAML}

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat looks up a format by name, ignoring case. "yml" is accepted
// for YAML.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "yml" {
		return YAML, nil
	}
	for _, f := range Formats {
		if Format(name) == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Document is the structure written by the JSON, TOML and YAML formats.
type Document struct {
	Colors []Swatch `json:"colors" yaml:"colors" toml:"colors"`
}

// Swatch is one exported colour.
type Swatch struct {
	Hex    string         `json:"hex" yaml:"hex" toml:"hex"`
	HSL    colorspace.HSL `json:"hsl" yaml:"hsl" toml:"hsl"`
	Text   string         `json:"text" yaml:"text" toml:"text"`
	Locked bool           `json:"locked,omitempty" yaml:"locked,omitempty" toml:"locked,omitempty"`
}

// NewDocument describes p. Text is the black or white text colour that
// reads best on each swatch.
func NewDocument(p palette.Palette) Document {
	d := Document{Colors: make([]Swatch, 0, len(p))}
	for _, e := range p {
		d.Colors = append(d.Colors, Swatch{
			Hex:    e.Hex,
			HSL:    e.HSL,
			Text:   contrast.ReadableOn(e.Hex),
			Locked: e.Locked,
		})
	}
	return d
}

// Write writes p to w in format f.
func Write(w io.Writer, p palette.Palette, f Format) error {
	var err error
	switch f {
	case Text:
		err = writeText(w, p)
	case CSS:
		err = writeCSS(w, p)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(NewDocument(p))
	case TOML:
		err = toml.NewEncoder(w).Encode(NewDocument(p))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(NewDocument(p)); err == nil {
			err = enc.Close()
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", f, err)
	}
	return nil
}

// String returns p in format f.
func String(p palette.Palette, f Format) (string, error) {
	var b strings.Builder
	if err := Write(&b, p, f); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeText(w io.Writer, p palette.Palette) error {
	for _, e := range p {
		if _, err := fmt.Fprintln(w, e.Hex); err != nil {
			return err
		}
	}
	return nil
}

func writeCSS(w io.Writer, p palette.Palette) error {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, e := range p {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, e.Hex)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(w, b.String())
	return err
}
