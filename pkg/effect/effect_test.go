package effect

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistortionBypassedWhenDisabled(t *testing.T) {
	d := NewDistortion()
	assert.Equal(t, 0.5, d.Process(0.5))
}

func TestDistortionEnabledShapesSignal(t *testing.T) {
	d := NewDistortion()
	d.SetEnabled(true)
	d.Tick()
	d.Drive = 1.0
	out := d.Process(0.9)
	assert.InDelta(t, 1.0, out, 0.05)
}

func TestBitcrusherDecimatesSampleRate(t *testing.T) {
	b := NewBitcrusher()
	b.SetEnabled(true)
	b.Tick()
	b.FreqStep = 4
	b.Bits = 16

	first := b.Process(1.0)
	second := b.Process(-1.0)
	assert.Equal(t, first, second, "held sample should not change before FreqStep elapses")
}

func TestBitcrusherQuantizesBitDepth(t *testing.T) {
	b := NewBitcrusher()
	b.SetEnabled(true)
	b.Tick()
	b.FreqStep = 1
	b.Bits = 1

	out := b.Process(0.3)
	assert.True(t, out == 0 || math.Abs(out-1) < 1e-9 || math.Abs(out+1) < 1e-9 || out == 0.5 || out == -0.5)
}

func TestEQPassesSignalWhenNoPolesConfigured(t *testing.T) {
	eq := NewEQ(48000)
	eq.SetEnabled(true)
	eq.Tick()
	assert.Equal(t, 0.25, eq.Process(0.25))
}

func TestEQLowpassAttenuatesHighFrequencyEnergy(t *testing.T) {
	eq := NewEQ(48000)
	eq.SetEnabled(true)
	eq.Tick()
	eq.SetPoles([]Pole{{Type: PoleLowpass, Freq: 200, Q: 0.707}})

	var outRMS float64
	for i := 0; i < 2000; i++ {
		in := math.Sin(2 * math.Pi * 8000 * float64(i) / 48000)
		out := eq.Process(in)
		if i > 200 {
			outRMS += out * out
		}
	}
	outRMS = math.Sqrt(outRMS / 1800)
	assert.Less(t, outRMS, 0.3)
}

func TestPanningCenterSplitsEqually(t *testing.T) {
	p := NewPanning()
	p.Position = 0
	for i := 0; i < panningDelayMax+2; i++ {
		p.Process(1.0)
	}
	l, r := p.Process(1.0)
	assert.InDelta(t, l, r, 1e-9)
}

func TestPanningFullLeftSilencesRight(t *testing.T) {
	p := NewPanning()
	p.Position = -1
	for i := 0; i < panningDelayMax+2; i++ {
		p.Process(1.0)
	}
	_, r := p.Process(1.0)
	assert.InDelta(t, 0, r, 1e-6)
}

func TestChorusBypassedWhenDisabled(t *testing.T) {
	c := NewChorus(48000)
	l, r := c.Process(0.5, -0.5)
	assert.Equal(t, 0.5, l)
	assert.Equal(t, -0.5, r)
}

func TestEchoProducesRepeatAfterDelay(t *testing.T) {
	e := NewEcho(48000)
	e.SetEnabled(true)
	e.DelaySeconds = 0.01
	for i := 0; i < 2000; i++ {
		e.Tick()
	}
	e.Feedback = 0.5
	e.Mix = 1.0

	e.Process(1.0, 1.0)
	var sawEcho bool
	for i := 0; i < 1000; i++ {
		l, _ := e.Process(0, 0)
		if math.Abs(l) > 1e-6 {
			sawEcho = true
			break
		}
	}
	assert.True(t, sawEcho)
}

func TestReverbBypassedWhenDisabled(t *testing.T) {
	r := NewReverb(48000)
	l, rr := r.Process(0.3, 0.3)
	assert.Equal(t, 0.3, l)
	assert.Equal(t, 0.3, rr)
}

func TestReverbProducesTailWhenEnabled(t *testing.T) {
	r := NewReverb(48000)
	r.SetEnabled(true)
	r.Tick()
	r.Mix = 1.0

	r.Process(1.0, 1.0)
	var tailEnergy float64
	for i := 0; i < 4000; i++ {
		l, rr := r.Process(0, 0)
		tailEnergy += l*l + rr*rr
	}
	assert.Greater(t, tailEnergy, 0.0)
}

func TestFaderAppliesGainAndFadeIn(t *testing.T) {
	f := NewFader()
	f.GainDb = 0
	f.FadeInSetting = 0

	l, r := f.Process(1.0, 1.0, 10.0)
	assert.InDelta(t, 1.0, l, 1e-9)
	assert.InDelta(t, 1.0, r, 1e-9)
}

func TestFaderFadeInRampsFromZero(t *testing.T) {
	f := NewFader()
	f.FadeInSetting = 1.0

	l, _ := f.Process(1.0, 1.0, 0.0)
	assert.InDelta(t, 0, l, 1e-9)
}

func TestChainRunsFullOrderWithoutPanic(t *testing.T) {
	c := NewChain(48000)
	c.Distortion.SetEnabled(true)
	c.Bitcrusher.SetEnabled(true)
	c.Chorus.SetEnabled(true)
	c.Echo.SetEnabled(true)
	c.Reverb.SetEnabled(true)
	c.Tick()

	for i := 0; i < 100; i++ {
		l, r := c.Process(0.2, float64(i)/48000.0)
		assert.False(t, math.IsNaN(l))
		assert.False(t, math.IsNaN(r))
	}
}
