// Package marquee implements an auto-scrolling single-line text display: the
// layout, scroll cycle and edge-fade logic that a host widget renders.
//
// A Marquee is not safe for concurrent use. Hosts call it from their UI
// thread only, the same way they would touch any other widget state.
package marquee

import (
	"math"
	"time"
)

// Direction selects which way content travels while scrolling.
type Direction int

const (
	// Forward moves content right-to-left: the offset grows from 0.
	Forward Direction = iota
	// Backward mirrors Forward: the offset shrinks toward 0.
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Alignment positions a non-overflowing label inside the viewport.
type Alignment int

const (
	AlignLeading Alignment = iota
	AlignCenter
	AlignTrailing
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignTrailing:
		return "trailing"
	default:
		return "leading"
	}
}

// Mode selects what happens after a leg completes.
type Mode int

const (
	// Alternate runs the next leg back toward the rest edge (ping-pong).
	Alternate Mode = iota
	// Continuous snaps back to the rest edge and repeats the same leg; the
	// duplicate label makes the snap invisible.
	Continuous
)

func (m Mode) String() string {
	if m == Continuous {
		return "continuous"
	}
	return "alternate"
}

const (
	// DefaultScrollSpeed is used whenever a non-positive speed is configured.
	DefaultScrollSpeed float32 = 30
	// DefaultPause is the rest interval before every leg.
	DefaultPause = 1500 * time.Millisecond
	// DefaultLabelSpacing is the gap between the content and spacer labels.
	DefaultLabelSpacing float32 = 20
	// DefaultFadeLength is the width of each edge fade while scrolling.
	DefaultFadeLength float32 = 7
)

// Config is an immutable snapshot of the scroll parameters.
type Config struct {
	ScrollSpeed  float32 // pixels per second, > 0
	Direction    Direction
	Pause        time.Duration
	LabelSpacing float32
	FadeLength   float32
	Alignment    Alignment
	Mode         Mode
}

// DefaultConfig returns the configuration a fresh Marquee starts with.
func DefaultConfig() Config {
	return Config{
		ScrollSpeed:  DefaultScrollSpeed,
		Direction:    Forward,
		Pause:        DefaultPause,
		LabelSpacing: DefaultLabelSpacing,
		FadeLength:   DefaultFadeLength,
		Alignment:    AlignLeading,
		Mode:         Alternate,
	}
}

// configIssue records one field that had to be replaced during normalisation.
type configIssue struct {
	field string
	got   any
	used  any
}

// normalized clamps out-of-range values and reports every substitution.
func (c Config) normalized() (Config, []configIssue) {
	var issues []configIssue
	if !(c.ScrollSpeed > 0) || math.IsInf(float64(c.ScrollSpeed), 0) {
		issues = append(issues, configIssue{"scrollSpeed", c.ScrollSpeed, DefaultScrollSpeed})
		c.ScrollSpeed = DefaultScrollSpeed
	}
	if c.Pause < 0 {
		issues = append(issues, configIssue{"pause", c.Pause, time.Duration(0)})
		c.Pause = 0
	}
	if !(c.LabelSpacing >= 0) {
		issues = append(issues, configIssue{"labelSpacing", c.LabelSpacing, float32(0)})
		c.LabelSpacing = 0
	}
	if !(c.FadeLength >= 0) {
		issues = append(issues, configIssue{"fadeLength", c.FadeLength, float32(0)})
		c.FadeLength = 0
	}
	if c.Direction != Backward {
		c.Direction = Forward
	}
	if c.Mode != Continuous {
		c.Mode = Alternate
	}
	if c.Alignment < AlignLeading || c.Alignment > AlignTrailing {
		c.Alignment = AlignLeading
	}
	return c, issues
}

// legDuration is the time one leg takes: label width at the configured speed.
func (c Config) legDuration(labelWidth float32) time.Duration {
	speed := c.ScrollSpeed
	if !(speed > 0) {
		speed = DefaultScrollSpeed
	}
	if labelWidth <= 0 {
		return 0
	}
	return time.Duration(float64(labelWidth) / float64(speed) * float64(time.Second))
}
