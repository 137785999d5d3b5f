// Package codec turns a palette into a short URL-safe share code and back.
//
// A share code is the palette's hex values as a JSON array, base64 encoded
// with the URL-safe alphabet and no padding. The format carries no version.
package codec

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/sdahlbac/palettegen/palette"
)

// Codec encodes and decodes share codes, reporting failures to Logger.
type Codec struct {
	Logger *slog.Logger
}

// New returns a Codec logging to logger, or to slog.Default when nil.
func New(logger *slog.Logger) *Codec {
	if logger == nil {
		logger = slog.Default()
	}
	return &Codec{Logger: logger}
}

func (c *Codec) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Encode returns the share code for p. It returns "" if p cannot be
// serialised; the cause is logged, not returned.
func (c *Codec) Encode(p palette.Palette) string {
	hexes := p.Hexes()
	data, err := json.Marshal(hexes)
	if err != nil {
		c.logger().Error("failed to encode palette", "colors", len(hexes), "err", err)
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(data)
}

// decoders are tried in order. The standard alphabets accept codes made by
// browsers with btoa.
var decoders = []*base64.Encoding{
	base64.RawURLEncoding,
	base64.URLEncoding,
	base64.StdEncoding,
	base64.RawStdEncoding,
}

// Decode returns the hex values held in code, in order, with empty and
// non-string elements removed. It reports false if code is empty, is not
// base64, or does not hold a JSON array.
func (c *Codec) Decode(code string) ([]string, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, false
	}

	data, err := decodeBase64(code)
	if err != nil {
		c.logger().Warn("failed to decode palette", "stage", "base64", "err", err)
		return nil, false
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		c.logger().Warn("failed to decode palette", "stage", "json", "err", err)
		return nil, false
	}
	if items == nil {
		// JSON null is not a list
		c.logger().Warn("failed to decode palette", "stage", "json", "err", "not an array")
		return nil, false
	}

	hexes := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			hexes = append(hexes, s)
		}
	}
	return hexes, true
}

func decodeBase64(code string) ([]byte, error) {
	var err error
	for _, enc := range decoders {
		var data []byte
		if data, err = enc.DecodeString(code); err == nil {
			return data, nil
		}
	}
	return nil, err
}

var std = &Codec{}

// Encode encodes p with a Codec that logs to slog.Default.
func Encode(p palette.Palette) string {
	return std.Encode(p)
}

// Decode decodes code with a Codec that logs to slog.Default.
func Decode(code string) ([]string, bool) {
	return std.Decode(code)
}
