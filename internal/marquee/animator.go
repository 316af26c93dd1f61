package marquee

import "time"

// Phase is the scroll state reported to renderers.
type Phase int

const (
	// PhaseIdle means no cycle is running: content fits, or the marquee is
	// not on a live display.
	PhaseIdle Phase = iota
	// PhasePaused is the rest interval before each leg.
	PhasePaused
	// PhaseAnimating means the offset is being interpolated.
	PhaseAnimating
)

func (p Phase) String() string {
	switch p {
	case PhasePaused:
		return "paused"
	case PhaseAnimating:
		return "animating"
	default:
		return "idle"
	}
}

const (
	// maxCatchUp bounds how many transitions one Tick replays after a stall.
	maxCatchUp = 64
	minLeg     = time.Millisecond
)

// Animator is the pause/scroll state machine. It owns the scroll offset and
// only moves when Tick is called, so every pending pause or leg is just a
// deadline that Cancel can drop.
type Animator struct {
	phase    Phase
	cfg      Config
	layout   Layout
	offset   float32
	from, to float32
	legStart time.Time
	legDur   time.Duration
	deadline time.Time
	active   bool
	onActive func(active bool)
}

// NewAnimator returns an idle animator. onActive, when set, is called each
// time motion starts (true) or stops (false).
func NewAnimator(onActive func(active bool)) *Animator {
	return &Animator{onActive: onActive}
}

// Arm restarts the cycle from the rest edge with a pause. A layout that does
// not overflow leaves the animator idle.
func (a *Animator) Arm(l Layout, cfg Config, now time.Time) {
	a.Cancel()
	if !l.Overflowing {
		return
	}
	a.layout = l
	a.cfg = cfg
	a.legDur = max(cfg.legDuration(l.LabelWidth()), minLeg)
	a.from, a.to = a.restAndFar()
	a.offset = a.from
	a.enterPause(now)
}

// Cancel stops the cycle and drops any pending pause or leg. It is safe to
// call at any time, including when already idle.
func (a *Animator) Cancel() {
	a.phase = PhaseIdle
	a.offset = 0
	a.deadline = time.Time{}
	a.legStart = time.Time{}
	a.setActive(false)
}

// SetPause changes the rest interval; it applies from the next pause on.
func (a *Animator) SetPause(d time.Duration) {
	a.cfg.Pause = max(d, 0)
}

// Tick advances the state machine to now and reports whether the offset or
// phase changed.
func (a *Animator) Tick(now time.Time) bool {
	if a.phase == PhaseIdle {
		return false
	}
	prevOffset, prevPhase := a.offset, a.phase
	for i := 0; !now.Before(a.deadline); i++ {
		if i == maxCatchUp {
			// host stalled for many legs: restart the current step at now
			a.reanchor(now)
			break
		}
		switch a.phase {
		case PhasePaused:
			a.startLeg(a.deadline)
		case PhaseAnimating:
			a.finishLeg(a.deadline)
		}
	}
	if a.phase == PhaseAnimating {
		a.offset = a.interpolate(now)
	}
	return a.offset != prevOffset || a.phase != prevPhase
}

// Offset is the current horizontal translation.
func (a *Animator) Offset() float32 { return a.offset }

// Phase reports the current state.
func (a *Animator) Phase() Phase { return a.phase }

// ScrollActive reports whether content is moving.
func (a *Animator) ScrollActive() bool { return a.active }

// LegDuration is the time one leg takes for the armed layout.
func (a *Animator) LegDuration() time.Duration {
	if a.phase == PhaseIdle {
		return 0
	}
	return a.legDur
}

// NextDeadline is when the current pause or leg ends. Hosts may sleep until
// then while paused instead of ticking every frame.
func (a *Animator) NextDeadline() (time.Time, bool) {
	if a.phase == PhaseIdle {
		return time.Time{}, false
	}
	return a.deadline, true
}

func (a *Animator) restAndFar() (rest, far float32) {
	travel := a.layout.Travel()
	if a.cfg.Direction == Backward {
		return travel, 0
	}
	return 0, travel
}

func (a *Animator) enterPause(at time.Time) {
	a.phase = PhasePaused
	a.deadline = at.Add(a.cfg.Pause)
	a.setActive(false)
}

func (a *Animator) startLeg(at time.Time) {
	a.phase = PhaseAnimating
	a.legStart = at
	a.deadline = at.Add(a.legDur)
	a.setActive(true)
}

func (a *Animator) finishLeg(at time.Time) {
	a.offset = a.to
	a.setActive(false)
	if a.cfg.Mode == Continuous {
		a.offset = a.from
	} else {
		a.from, a.to = a.to, a.from
	}
	a.enterPause(at)
}

func (a *Animator) reanchor(now time.Time) {
	switch a.phase {
	case PhasePaused:
		a.deadline = now.Add(a.cfg.Pause)
	case PhaseAnimating:
		a.legStart = now
		a.deadline = now.Add(a.legDur)
	}
}

func (a *Animator) interpolate(now time.Time) float32 {
	t := float32(now.Sub(a.legStart)) / float32(a.legDur)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.from + (a.to-a.from)*t
}

func (a *Animator) setActive(v bool) {
	if a.active == v {
		return
	}
	a.active = v
	if a.onActive != nil {
		a.onActive(v)
	}
}
