package engine

import "math"

// randomPolicy flips a fair coin at every peg. Each call consumes exactly
// one draw from the shared source; there is no per-run state to reset.
type randomPolicy struct {
	src Source
}

func (p *randomPolicy) NextRight() bool {
	return p.src.Intn(2) == 1
}

func (p *randomPolicy) ResetProgress() {}

// skillPolicy goes right for the first skill pegs and left for all the
// rest. stepsTaken starts at 1, so a skill of k yields exactly k right
// decisions. The random source is never consulted after construction.
type skillPolicy struct {
	skill      int
	stepsTaken int
}

func (p *skillPolicy) NextRight() bool {
	if p.stepsTaken <= p.skill {
		p.stepsTaken++
		return true
	}
	return false
}

func (p *skillPolicy) ResetProgress() {
	p.stepsTaken = 1
}

// Bean is a single bean circulating through the machine. Its identity and
// skill level are fixed at construction; only its movement progress changes
// between runs.
type Bean struct {
	skill  int
	policy MovementPolicy
}

// NewBean creates a bean for a machine with slotCount slots.
//
// In luck mode the bean records LuckSkillLevel and decides every peg by a
// fair coin flip drawn from src.
//
// In skill mode the bean draws a skill level from a normal distribution
// with mean slotCount*0.5 and standard deviation sqrt(slotCount*0.5*0.5),
// rounded to the nearest integer. The draw happens exactly once, here, and
// is never repeated even across experiment repeats, so a skill bean always
// lands in the same slot.
func NewBean(slotCount int, isLuck bool, src Source) *Bean {
	if isLuck {
		return &Bean{
			skill:  LuckSkillLevel,
			policy: &randomPolicy{src: src},
		}
	}

	mean := float64(slotCount) * 0.5
	stdev := math.Sqrt(float64(slotCount) * 0.5 * (1 - 0.5))
	skill := int(math.Round(src.NormFloat64()*stdev + mean))

	return &Bean{
		skill:  skill,
		policy: &skillPolicy{skill: skill, stepsTaken: 1},
	}
}

// SkillLevel returns the bean's fixed skill level, or LuckSkillLevel for a
// luck-mode bean.
func (b *Bean) SkillLevel() int {
	return b.skill
}

// chooseRight asks the bean's policy for its decision at the next peg.
func (b *Bean) chooseRight() bool {
	return b.policy.NextRight()
}

// resetProgress rewinds the bean's movement progress so it can re-enter
// circulation.
func (b *Bean) resetProgress() {
	b.policy.ResetProgress()
}
