package objsoup

import (
	"fmt"
	"log"
)

// Logger receives one line per load. Replace it to silence or redirect loaders.
var Logger = log.Default()

// Format selects how the scanner recognises record markers at the start of a
// line.
type Format int

const (
	// FormatLegacy keys on the first character of a line only, so "vt" and
	// "vn" lines are read as positions. It is the default.
	FormatLegacy Format = iota

	// FormatStrict requires the marker to be followed by whitespace. "vt",
	// "vn" and any other multi-letter keyword are ignored.
	FormatStrict
)

func (f Format) String() string {
	switch f {
	case FormatLegacy:
		return "legacy"
	case FormatStrict:
		return "strict"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "legacy", "":
		return FormatLegacy, nil
	case "strict":
		return FormatStrict, nil
	}
	return FormatLegacy, fmt.Errorf("unknown geometry format %q", s)
}

type options struct {
	format Format
	name   string
}

type Option func(*options)

func WithFormat(f Format) Option {
	return func(o *options) { o.format = f }
}

// WithName sets the resource name reported in TokenError.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
