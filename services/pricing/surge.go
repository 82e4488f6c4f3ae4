package pricing

// SurgeFactors layers caller-supplied demand factors on top of the base
// occupancy-derived multiplier. Zero-valued factors are treated as 1.0.
type SurgeFactors struct {
	// Base is the occupancy-derived multiplier from the admission checker.
	Base      float64
	TimeOfDay float64
	Weekend   float64
	Season    float64
	Holiday   float64
}

func factor(f float64) float64 {
	if f <= 0 {
		return 1.0
	}
	return f
}

// EffectiveMultiplier combines all factors and caps the result. A cap of 0
// means uncapped.
func (s SurgeFactors) EffectiveMultiplier(cap float64) float64 {
	m := factor(s.Base) * factor(s.TimeOfDay) * factor(s.Weekend) * factor(s.Season) * factor(s.Holiday)
	if cap > 0 && m > cap {
		m = cap
	}
	if m < 1.0 {
		m = 1.0
	}
	return m
}
