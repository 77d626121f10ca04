// Package trace reads recorded agent position traces and replays them into an
// explore.Grid.
//
// Two formats are supported:
//
//	text: one step per line, "x,y" or "x,y,x" / "x,y,y" for border points.
//	      Blank lines and lines starting with '#' are skipped.
//	json: an array of {"x":1,"y":2,"border":"x"} objects; "border" is optional.
package trace

import (
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
)

// Error types attached to trace errors.
const (
	ErrTypeMalformedTrace = "trace-malformed"
	ErrTypeUnknownFormat  = "trace-unknown-format"
)

// Axis names the border a step was reported on.
type Axis string

const (
	// AxisNone marks a plain step.
	AxisNone Axis = ""
	// AxisX marks a step on the left or right border.
	AxisX Axis = "x"
	// AxisY marks a step on the top or bottom border.
	AxisY Axis = "y"
)

func (a Axis) valid() bool {
	return a == AxisNone || a == AxisX || a == AxisY
}

// Step is a single recorded agent position.
type Step struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Border Axis `json:"border,omitempty"`
}

// Format selects the trace encoding.
type Format string

const (
	// FormatText is the line based "x,y[,axis]" encoding.
	FormatText Format = "text"
	// FormatJSON is a JSON array of steps.
	FormatJSON Format = "json"
)

// ParseFormat returns the Format named by s, case-insensitive.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", errors.New("unknown trace format").
			WithType(ErrTypeUnknownFormat).
			WithTag("format", s)
	}
}

// FormatFromPath guesses the format from a file extension; anything that is
// not ".json" is text.
func FormatFromPath(path string) Format {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return FormatJSON
	}
	return FormatText
}
