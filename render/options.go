package render

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Mode is a formatting policy.
type Mode uint8

// Render modes.
const (
	Compact Mode = iota // minified output
	Pretty              // indented output, one declaration per line
)

// ErrUnknownMode is returned when parsing a mode name other than
// "compact" or "pretty".
var ErrUnknownMode = errors.New("unknown render mode")

func (m Mode) String() string {
	switch m {
	case Compact:
		return "compact"
	case Pretty:
		return "pretty"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode finds the mode for a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "compact":
		return Compact, nil
	case "pretty":
		return Pretty, nil
	}
	return Compact, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m != Compact && m != Pretty {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so modes may be read
// from configuration files.
func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// Options is the set of render options. The zero value renders compact.
type Options struct {
	Mode Mode `json:"mode" yaml:"mode"`
}

// LoadOptions reads render options from a YAML document such as
//
//	mode: pretty
//
// Missing keys keep their zero value.
func LoadOptions(data []byte) (Options, error) {
	var opts Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("render options: %w", err)
	}
	return opts, nil
}
