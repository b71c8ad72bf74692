package engine

const (
	// NoBeanInYPos is returned by GetInFlightBeanXPos for a row with no
	// in-flight bean.
	NoBeanInYPos = -1

	// LuckSkillLevel marks a bean that decides by coin flip instead of a
	// numeric skill level.
	LuckSkillLevel = -1

	// Validation constants
	MinSlotCount = 1
)

// Source is the random-generation capability beans draw from. A single
// Source is typically shared by every bean in an experiment; given a fixed
// seed and a fixed call order the whole run is reproducible. *rand.Rand
// satisfies Source.
type Source interface {
	Intn(n int) int
	NormFloat64() float64
}

// MovementPolicy decides, one peg at a time, whether a bean falls to the
// right. A policy is constructed once per bean and owned by it for the
// bean's whole lifetime.
type MovementPolicy interface {
	// NextRight reports whether the bean goes right at the next peg it
	// hits. Called once per row the bean passes through.
	NextRight() bool

	// ResetProgress rewinds any per-run decision state so the bean can
	// re-enter circulation for another experiment.
	ResetProgress()
}
