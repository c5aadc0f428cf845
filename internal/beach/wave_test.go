package beach

import (
	"math"
	"testing"
)

func TestWaveOffsetDeterministic(t *testing.T) {
	p := WaveParams{FastAmp: 40, FastFreq: 0.25, SlowAmp: 120, SlowPeriod: 10}
	for _, tm := range []float64{0, 0.5, 1.7, 33.33} {
		o1, v1 := WaveOffset(tm, p)
		o2, v2 := WaveOffset(tm, p)
		if o1 != o2 || v1 != v2 {
			t.Fatalf("identical inputs must give bit-identical outputs at t=%v", tm)
		}
	}
}

func TestWaveOffsetFastTerm(t *testing.T) {
	// Infinite slow period silences the swell, leaving only the fast chop.
	p := WaveParams{FastAmp: 40, FastFreq: 0.25, SlowAmp: 120, SlowPeriod: math.Inf(1)}
	offset, velocity := WaveOffset(2, p)
	// At t=2 the fast phase is pi: offset crosses zero heading backward.
	if math.Abs(offset) > 1e-9 {
		t.Fatalf("expected offset ~0 at the fast zero crossing, got %v", offset)
	}
	want := -40 * 2 * math.Pi * 0.25
	if math.Abs(velocity-want) > 1e-9 {
		t.Fatalf("expected velocity %v, got %v", want, velocity)
	}
}

func TestWaveOffsetZeroSlowPeriod(t *testing.T) {
	fastOnly := WaveParams{FastAmp: 40, FastFreq: 0.25}
	zeroPeriod := fastOnly
	zeroPeriod.SlowAmp = 120
	for _, tm := range []float64{0, 1, 2.5, 7} {
		o1, v1 := WaveOffset(tm, fastOnly)
		o2, v2 := WaveOffset(tm, zeroPeriod)
		if o1 != o2 || v1 != v2 {
			t.Fatalf("zero slow period must behave as fast-only at t=%v", tm)
		}
		if math.IsNaN(o2) || math.IsNaN(v2) {
			t.Fatalf("zero slow period must not produce NaN at t=%v", tm)
		}
	}
}

func TestWaveOffsetSlowContribution(t *testing.T) {
	p := WaveParams{FastAmp: 40, FastFreq: 0.25, SlowAmp: 120, SlowPeriod: 10}
	// A quarter of the slow period puts the swell at its full amplitude while
	// the fast phase sits at a zero crossing.
	offset, _ := WaveOffset(2.5, p)
	fast := 40 * math.Sin(2*math.Pi*0.25*2.5)
	want := fast + 120
	if math.Abs(offset-want) > 1e-9 {
		t.Fatalf("expected offset %v at the swell peak, got %v", want, offset)
	}
}
