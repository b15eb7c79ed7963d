package wifi

// Falloff maps the relative distance t (0 at the access point, 1 at the
// edge of its range) to a fraction of the peak speed.
type Falloff func(t float64) float64

// Linear loses speed evenly towards the edge.
func Linear(t float64) float64 { return 1 - t }

// Quadratic holds speed near the access point and drops sharply at the edge.
func Quadratic(t float64) float64 { return 1 - t*t }

// Flat gives full speed anywhere inside the range.
func Flat(float64) float64 { return 1 }

// SpeedProfile describes one direction of a link.
type SpeedProfile struct {
	Max     float64 // MiB/s right next to the access point
	Falloff Falloff // Defaults to Linear when nil
}

// At returns the speed at distance from an access point broadcasting over
// radius. The falloff result is clamped to [0, 1].
func (s SpeedProfile) At(distance, radius float64) float64 {
	if radius <= 0 || distance > radius || s.Max <= 0 {
		return 0
	}
	falloff := s.Falloff
	if falloff == nil {
		falloff = Linear
	}
	f := falloff(distance / radius)
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return s.Max * f
}
