package presenter

import (
	"fmt"
	"strings"
)

// Edge is the side of the host view the content enters from and exits to.
type Edge int

const (
	// Bottom slides the content up from below the host. It is the zero value.
	Bottom Edge = iota
	// Leading slides the content in from the left.
	Leading
	// Trailing slides the content in from the right.
	Trailing
	// Top slides the content down from above the host.
	Top
)

// String returns the lowercase edge name.
func (e Edge) String() string {
	switch e {
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// ParseEdge parses an edge name. It accepts the String forms plus the
// aliases left, right, up and down.
func ParseEdge(s string) (Edge, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "leading", "left":
		return Leading, nil
	case "trailing", "right":
		return Trailing, nil
	case "top", "up":
		return Top, nil
	case "bottom", "down", "":
		return Bottom, nil
	}
	return Bottom, fmt.Errorf("unknown edge %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Edge) UnmarshalText(text []byte) error {
	parsed, err := ParseEdge(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (e Edge) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// horizontal reports whether the edge moves content along the x axis.
func (e Edge) horizontal() bool {
	return e == Leading || e == Trailing
}
