package effect

import "math"

// echoLineMax bounds the delay line length, enough for a couple of
// seconds of echo at typical audio sample rates.
const echoLineMax = 1 << 17

// Echo is a feedback delay line. DelaySeconds is interpolated toward
// its target across ticks rather than applied instantly, so a host
// automating the delay time doesn't produce a pitch-bend artifact from
// the read pointer jumping.
type Echo struct {
	toggle

	sampleRate float64
	lineL, lineR []float64
	writePos     int

	DelaySeconds float64 // target delay time
	Feedback     float64 // 0..1
	Mix          float64 // 0 = dry, 1 = fully wet

	currentDelaySamples float64
}

// NewEcho creates an echo with a quarter-second delay, moderate
// feedback, and a minority wet mix.
func NewEcho(sampleRate float64) *Echo {
	lineLen := echoLineMax
	e := &Echo{
		sampleRate:   sampleRate,
		lineL:        make([]float64, lineLen),
		lineR:        make([]float64, lineLen),
		DelaySeconds: 0.25,
		Feedback:     0.35,
		Mix:          0.3,
	}
	e.currentDelaySamples = e.DelaySeconds * sampleRate
	return e
}

// Tick interpolates the read delay one step toward DelaySeconds,
// called once per tick boundary rather than once per sample.
func (e *Echo) Tick() {
	e.toggle.Tick()
	target := clamp(e.DelaySeconds, 0, float64(len(e.lineL)-1)/e.sampleRate) * e.sampleRate
	const smoothing = 0.1
	e.currentDelaySamples += (target - e.currentDelaySamples) * smoothing
}

func (e *Echo) readDelayed(line []float64) float64 {
	readPos := float64(e.writePos) - e.currentDelaySamples
	n := float64(len(line))
	for readPos < 0 {
		readPos += n
	}
	i0 := int(readPos) % len(line)
	i1 := (i0 + 1) % len(line)
	frac := readPos - math.Floor(readPos)
	return line[i0]*(1-frac) + line[i1]*frac
}

// Process runs one stereo sample pair through the echo.
func (e *Echo) Process(inL, inR float64) (outL, outR float64) {
	if !e.enabled {
		return inL, inR
	}

	echoL := e.readDelayed(e.lineL)
	echoR := e.readDelayed(e.lineR)

	feedback := clamp(e.Feedback, 0, 0.98)
	e.lineL[e.writePos] = inL + echoL*feedback
	e.lineR[e.writePos] = inR + echoR*feedback
	e.writePos = (e.writePos + 1) % len(e.lineL)

	mix := clamp(e.Mix, 0, 1)
	outL = inL*(1-mix) + echoL*mix
	outR = inR*(1-mix) + echoR*mix
	return outL, outR
}

// Stop clears the delay lines.
func (e *Echo) Stop() {
	for i := range e.lineL {
		e.lineL[i] = 0
		e.lineR[i] = 0
	}
}
