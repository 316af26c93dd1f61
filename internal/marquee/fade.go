package marquee

// Stop is one point of the horizontal alpha gradient. Position is a fraction
// of the viewport width; Alpha 0 is transparent and 1 opaque.
type Stop struct {
	Position float32
	Alpha    float32
}

// Mask is the 4-stop edge fade: transparent, opaque, opaque, transparent.
type Mask struct {
	Stops [4]Stop
}

// maxFadeFraction keeps the inner stops from crossing.
const maxFadeFraction float32 = 0.5

// ComputeMask returns the fade for the current state, or nil when content
// fits and no mask applies. While content is at rest the left fade is
// dropped, and a backward marquee drops the right fade as well. A forward
// marquee at rest keeps its right fade: the text it hides is what the next
// leg reveals.
func ComputeMask(overflowing bool, dir Direction, fadeLength, viewportWidth float32, scrollActive bool) *Mask {
	if !overflowing || viewportWidth <= 0 {
		return nil
	}
	p := fadeLength / viewportWidth
	if !(p > 0) {
		p = 0
	}
	if p > maxFadeFraction {
		p = maxFadeFraction
	}
	lead, trail := p, 1-p
	if !scrollActive {
		// content rests flush left in both directions
		lead = 0
		if dir == Backward {
			trail = 1
		}
	}
	return &Mask{Stops: [4]Stop{
		{Position: 0, Alpha: 0},
		{Position: lead, Alpha: 1},
		{Position: trail, Alpha: 1},
		{Position: 1, Alpha: 0},
	}}
}

// LeadingFade is the fraction of the width faded on the left edge.
func (m *Mask) LeadingFade() float32 {
	if m == nil {
		return 0
	}
	return m.Stops[1].Position - m.Stops[0].Position
}

// TrailingFade is the fraction of the width faded on the right edge.
func (m *Mask) TrailingFade() float32 {
	if m == nil {
		return 0
	}
	return m.Stops[3].Position - m.Stops[2].Position
}

// AlphaAt samples the gradient at x, a fraction of the viewport width. A nil
// mask is fully opaque.
func (m *Mask) AlphaAt(x float32) float32 {
	if m == nil {
		return 1
	}
	if x <= m.Stops[0].Position {
		return m.Stops[0].Alpha
	}
	for i := 1; i < len(m.Stops); i++ {
		lo, hi := m.Stops[i-1], m.Stops[i]
		if x > hi.Position {
			continue
		}
		span := hi.Position - lo.Position
		if span <= 0 {
			return hi.Alpha
		}
		t := (x - lo.Position) / span
		return lo.Alpha + (hi.Alpha-lo.Alpha)*t
	}
	return m.Stops[len(m.Stops)-1].Alpha
}
