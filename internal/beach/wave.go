package beach

import "math"

// WaveParams are the four tunables of the dual-sinusoid wall driver.
type WaveParams struct {
	FastAmp    float64
	FastFreq   float64
	SlowAmp    float64
	SlowPeriod float64
}

// WaveOffset returns the wall's offset from its base position and its velocity
// at elapsed time t. It is a pure function of its inputs: identical arguments
// produce bit-identical results. A non-positive slow period disables the slow
// swell term.
func WaveOffset(t float64, p WaveParams) (offset, velocity float64) {
	fastW := 2 * math.Pi * p.FastFreq
	offset = p.FastAmp * math.Sin(fastW*t)
	velocity = p.FastAmp * fastW * math.Cos(fastW*t)
	if p.SlowPeriod > 0 {
		slowW := 2 * math.Pi / p.SlowPeriod
		offset += p.SlowAmp * math.Sin(slowW*t)
		velocity += p.SlowAmp * slowW * math.Cos(slowW*t)
	}
	return offset, velocity
}
