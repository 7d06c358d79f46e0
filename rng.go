package mds

// lcg48 is the 48-bit linear congruential generator glibc's erand48 uses
// (multiplier 0x5DEECE66D, increment 0xB, modulus 2^48), simplified per
// spec to return the top 32 bits of the advanced state mapped into
// [0,1). This exact recipe — not golang.org/x/exp/rand, not math/rand —
// is required to reproduce reference starting points bit-for-bit across
// language implementations.
type lcg48 struct {
	state uint64
}

const (
	lcgMultiplier = 0x5DEECE66D
	lcgIncrement  = 0xB
	lcgMask       = (uint64(1) << 48) - 1
)

// newTrialRNG seeds a stream for worker rank of a run of ntrials total
// trials, seeded from tseed exactly as multistart_mds_mpi.c seeds its
// randBuffer: {0, 0, tseed+rank+ntrials}, i.e. only the low 16 bits of the
// sum occupy the top word of the 48-bit state.
func newTrialRNG(tseed, rank, ntrials int) *lcg48 {
	seed16 := uint16(tseed + rank + ntrials)
	return &lcg48{state: uint64(seed16) << 32}
}

// next draws the next uniform in [0,1) and advances the stream.
func (g *lcg48) next() float64 {
	g.state = (lcgMultiplier*g.state + lcgIncrement) & lcgMask
	top32 := g.state >> 16
	return float64(top32) / 4294967296.0 // 2^32
}

// startPoint draws n uniforms from g and maps them into bounds, advancing
// the stream by n draws. The same *lcg48 persists across every trial of
// one worker — it is never reseeded per trial.
func (g *lcg48) startPoint(bounds Bounds) []float64 {
	n := bounds.Dim()
	p := make([]float64, n)
	for j := 0; j < n; j++ {
		u := g.next()
		p[j] = bounds.Lower[j] + (bounds.Upper[j]-bounds.Lower[j])*u
	}
	return p
}
