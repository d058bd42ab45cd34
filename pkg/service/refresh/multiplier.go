package refresh

import "math/rand/v2"

// Bounds for the synthetic GDP multiplier. The multiplier is an intentionally
// randomized demand/price-level proxy, not a real economic model; the only
// contract is that every drawn value stays inside this range.
const (
	MultiplierMin = 1000.0
	MultiplierMax = 2000.0
)

// Multiplier draws the bounded scaling factor applied to one country record.
// It is injected into the service so tests can pin the value instead of
// asserting on live entropy.
type Multiplier interface {
	Draw() float64
}

// UniformMultiplier draws uniformly from [MultiplierMin, MultiplierMax].
type UniformMultiplier struct{}

func (UniformMultiplier) Draw() float64 {
	return MultiplierMin + rand.Float64()*(MultiplierMax-MultiplierMin)
}
