package effect

import "math"

// Distortion is a mono waveshaper: the drive parameter scales the
// signal into a tanh soft-clip curve, then compensates the level so
// higher drive doesn't just get quieter.
type Distortion struct {
	toggle
	Drive float64 // 0 = unity, higher = harder clip
}

// NewDistortion creates a bypassed-by-default distortion stage.
func NewDistortion() *Distortion {
	return &Distortion{Drive: 0}
}

// Process applies the waveshaper to one mono sample.
func (d *Distortion) Process(in float64) float64 {
	if !d.enabled {
		return in
	}
	gain := 1.0 + d.Drive*8.0
	shaped := math.Tanh(in * gain)
	// Tanh compresses toward its asymptote; rescale so unity drive
	// still passes a full-scale sine near unity peak.
	return shaped / math.Tanh(gain)
}

// Stop resets the effect's state. Distortion is stateless between
// samples, so there is nothing to reset.
func (d *Distortion) Stop() {}
