package marquee

import (
	"time"
	"unicode/utf8"
)

// stubMetrics measures every rune as runeWidth wide (one unit wider when
// bold) and every line as lineHeight tall.
type stubMetrics struct {
	runeWidth  float32
	lineHeight float32
	calls      int
}

func newStubMetrics() *stubMetrics { return &stubMetrics{runeWidth: 10, lineHeight: 20} }

func (s *stubMetrics) MeasureText(text string, f Font) Size {
	s.calls++
	w := s.runeWidth
	if f.Bold {
		w++
	}
	return Size{Width: w * float32(utf8.RuneCountInString(text)), Height: s.lineHeight}
}

// textOfWidth returns a string the stub measures as n*10 wide.
func textOfWidth(px int) string {
	b := make([]byte, px/10)
	for i := range b {
		b[i] = 'a' + byte(i%26)
	}
	return string(b)
}

type fakeClock struct{ t time.Time }

func newFakeClock() *fakeClock { return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)} }

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func seconds(s float64) time.Duration { return time.Duration(s * float64(time.Second)) }

// scenarioConfig is the configuration used by the worked examples.
func scenarioConfig() Config {
	cfg := DefaultConfig()
	cfg.ScrollSpeed = 30
	cfg.Pause = seconds(1.5)
	cfg.LabelSpacing = 20
	return cfg
}
