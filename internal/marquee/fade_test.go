package marquee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stopPositions(m *Mask) [4]float32 {
	var out [4]float32
	for i, s := range m.Stops {
		out[i] = s.Position
	}
	return out
}

func TestComputeMask(t *testing.T) {
	tests := []struct {
		name        string
		overflowing bool
		dir         Direction
		fade        float32
		width       float32
		active      bool
		want        *[4]float32
	}{
		{name: "fits has no mask", overflowing: false, fade: 7, width: 100, active: true},
		{name: "zero width has no mask", overflowing: true, fade: 7, width: 0},
		{name: "scrolling fades both edges", overflowing: true, dir: Forward, fade: 10, width: 100, active: true, want: &[4]float32{0, 0.1, 0.9, 1}},
		{name: "forward at rest drops the left fade", overflowing: true, dir: Forward, fade: 10, width: 100, want: &[4]float32{0, 0, 0.9, 1}},
		{name: "backward at rest drops both fades", overflowing: true, dir: Backward, fade: 10, width: 100, want: &[4]float32{0, 0, 1, 1}},
		{name: "long fade is clamped to half", overflowing: true, fade: 400, width: 100, active: true, want: &[4]float32{0, 0.5, 0.5, 1}},
		{name: "zero fade keeps edges opaque", overflowing: true, fade: 0, width: 100, active: true, want: &[4]float32{0, 0, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ComputeMask(tt.overflowing, tt.dir, tt.fade, tt.width, tt.active)
			if tt.want == nil {
				assert.Nil(t, m)
				return
			}
			require.NotNil(t, m)
			got := stopPositions(m)
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-6, "stop %d", i)
			}
			assert.Equal(t, []float32{0, 1, 1, 0}, []float32{m.Stops[0].Alpha, m.Stops[1].Alpha, m.Stops[2].Alpha, m.Stops[3].Alpha})
		})
	}
}

func TestMaskAlphaAt(t *testing.T) {
	m := ComputeMask(true, Forward, 10, 100, true)
	assert.InDelta(t, 0.5, m.AlphaAt(0.05), 1e-4)
	assert.InDelta(t, 1, m.AlphaAt(0.5), 1e-4)
	assert.InDelta(t, 0.5, m.AlphaAt(0.95), 1e-4)
	assert.InDelta(t, 0, m.AlphaAt(1.2), 1e-4)
	assert.InDelta(t, 0.1, m.LeadingFade(), 1e-4)
	assert.InDelta(t, 0.1, m.TrailingFade(), 1e-4)

	idle := ComputeMask(true, Forward, 10, 100, false)
	assert.InDelta(t, 1, idle.AlphaAt(0.01), 1e-4, "left edge is opaque at rest")
	assert.Zero(t, idle.LeadingFade())

	var none *Mask
	assert.Equal(t, float32(1), none.AlphaAt(0.3))
	assert.Zero(t, none.TrailingFade())
}
