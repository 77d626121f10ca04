package trace

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/segmentio/encoding/json"
)

// Read decodes steps from r using format.
func Read(r io.Reader, format Format) ([]Step, error) {
	switch format {
	case FormatText:
		return ReadText(r)
	case FormatJSON:
		return ReadJSON(r)
	default:
		return nil, errors.New("unknown trace format").
			WithType(ErrTypeUnknownFormat).
			WithTag("format", string(format))
	}
}

// ReadText decodes the line based format. Errors carry the 1-based line number.
func ReadText(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		step, err := parseLine(text)
		if err != nil {
			return nil, errors.New("malformed trace line").
				WithType(ErrTypeMalformedTrace).
				WithTag("line", line).
				WithTag("text", text).
				Wrap(err)
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.New("reading trace failed").Wrap(err)
	}
	return steps, nil
}

func parseLine(text string) (Step, error) {
	fields := strings.Split(text, ",")
	if len(fields) < 2 || len(fields) > 3 {
		return Step{}, errors.Newf("expected 2 or 3 fields, got %d", len(fields))
	}

	x, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Step{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return Step{}, err
	}

	step := Step{X: x, Y: y}
	if len(fields) == 3 {
		step.Border = Axis(strings.ToLower(strings.TrimSpace(fields[2])))
		if step.Border == AxisNone || !step.Border.valid() {
			return Step{}, errors.Newf("unknown border axis %q", fields[2])
		}
	}
	return step, nil
}

// ReadJSON decodes a JSON array of steps.
func ReadJSON(r io.Reader) ([]Step, error) {
	var steps []Step
	if err := json.NewDecoder(r).Decode(&steps); err != nil {
		return nil, errors.New("decoding json trace failed").
			WithType(ErrTypeMalformedTrace).
			Wrap(err)
	}

	for i, s := range steps {
		if !s.Border.valid() {
			return nil, errors.New("unknown border axis").
				WithType(ErrTypeMalformedTrace).
				WithTag("step", i).
				WithTag("border", string(s.Border))
		}
	}
	return steps, nil
}
