package engine

import "fmt"

// BeanCounter provides the main interface for machine operations
type BeanCounter interface {
	// Lifecycle
	Reset(beans []*Bean)
	Repeat()
	AdvanceStep() bool

	// Read accessors
	GetSlotCount() int
	GetRemainingBeanCount() int
	GetInFlightBeanXPos(yPos int) int
	GetSlotBeanCount(i int) int
	CountBeansInSlots() int
	GetAverageSlotBeanCount() float64

	// Distribution filters
	UpperHalf()
	LowerHalf()
}

// Board implements the BeanCounter interface. It owns the triangular grid
// of in-flight bean positions, the pool of not-yet-dropped beans, and the
// per-slot accumulation lists.
//
// Only grid cells with x <= y are meaningful, and at most one bean occupies
// any row at a time: beans enter one per step from the top, so the
// triangular fan-out keeps a single occupied column per row.
type Board struct {
	slotCount int
	grid      [][]*Bean
	slots     [][]*Bean
	remaining []*Bean
}

// NewBoard creates an empty board with the given number of bottom slots.
func NewBoard(slotCount int) (*Board, error) {
	if slotCount < MinSlotCount {
		return nil, fmt.Errorf("board: slot count must be at least %d, got %d", MinSlotCount, slotCount)
	}

	b := &Board{
		slotCount: slotCount,
		grid:      make([][]*Bean, slotCount),
		slots:     make([][]*Bean, slotCount),
	}
	for y := range b.grid {
		b.grid[y] = make([]*Bean, slotCount)
	}
	for i := range b.slots {
		b.slots[i] = []*Bean{}
	}

	return b, nil
}

// Reset performs a hard reset, initializing the machine with the passed
// beans. All slots and the grid are cleared, the beans become the remaining
// pool in the given order, and the machine starts with the first bean at
// the top.
func (b *Board) Reset(beans []*Bean) {
	for i := range b.slots {
		b.slots[i] = []*Bean{}
	}
	for y := range b.grid {
		for x := range b.grid[y] {
			b.grid[y][x] = nil
		}
	}

	b.remaining = append([]*Bean(nil), beans...)
	b.dropNext()
}

// Repeat scoops every bean currently in flight or in a slot back into the
// remaining pool, rewinding each bean's movement progress, and starts over
// with the first collected bean at the top. Unlike Reset, no beans are
// discarded.
//
// Collection order is in-flight beans by row first, then slot beans in slot
// order, oldest first within each slot. The order never changes where a
// skill bean lands; it only affects the draw interleaving of luck beans.
func (b *Board) Repeat() {
	for y := 0; y < b.slotCount; y++ {
		x := b.GetInFlightBeanXPos(y)
		if x == NoBeanInYPos {
			continue
		}
		bean := b.grid[y][x]
		bean.resetProgress()
		b.remaining = append(b.remaining, bean)
		b.grid[y][x] = nil
	}

	for i := 0; i < b.slotCount; i++ {
		for _, bean := range b.slots[i] {
			bean.resetProgress()
			b.remaining = append(b.remaining, bean)
		}
		b.slots[i] = []*Bean{}
	}

	b.dropNext()
}

// AdvanceStep advances the machine one step. The bean on the bottom row
// drops into its slot, every other in-flight bean falls one row choosing
// left or right at its peg, and a new bean enters the top if any remain.
//
// It returns whether there has been any state change. False means the
// machine was already finished: no beans remaining and an empty grid.
func (b *Board) AdvanceStep() bool {
	if len(b.remaining) == 0 && b.gridEmpty() {
		return false
	}

	bottom := b.slotCount - 1
	if x := b.GetInFlightBeanXPos(bottom); x != NoBeanInYPos {
		b.slots[x] = append(b.slots[x], b.grid[bottom][x])
		b.grid[bottom][x] = nil
	}

	// Rows are walked from the bottom up so a bean moved into row y+1 is
	// not advanced again within the same step.
	for y := b.slotCount - 2; y >= 0; y-- {
		x := b.GetInFlightBeanXPos(y)
		if x == NoBeanInYPos {
			continue
		}
		bean := b.grid[y][x]
		if bean.chooseRight() {
			b.grid[y+1][x+1] = bean
		} else {
			b.grid[y+1][x] = bean
		}
		b.grid[y][x] = nil
	}

	b.dropNext()
	return true
}

// UpperHalf removes the lower half of all beans currently in slots, keeping
// only the upper half. Beans are removed scanning from slot 0 upward,
// oldest first within a slot. For an odd total, (N-1)/2 beans are removed
// and (N+1)/2 remain.
func (b *Board) UpperHalf() {
	toRemove := b.CountBeansInSlots() / 2
	removed := 0
	for i := 0; i < b.slotCount && removed < toRemove; i++ {
		for len(b.slots[i]) > 0 && removed < toRemove {
			b.slots[i] = b.slots[i][1:]
			removed++
		}
	}
}

// LowerHalf removes the upper half of all beans currently in slots, keeping
// only the lower half. Beans are removed scanning from the highest slot
// downward, oldest first within a slot. For an odd total, (N-1)/2 beans are
// removed and (N+1)/2 remain.
func (b *Board) LowerHalf() {
	toRemove := b.CountBeansInSlots() / 2
	removed := 0
	for i := b.slotCount - 1; i >= 0 && removed < toRemove; i-- {
		for len(b.slots[i]) > 0 && removed < toRemove {
			b.slots[i] = b.slots[i][1:]
			removed++
		}
	}
}

// GetSlotCount returns the number of slots the machine was initialized
// with.
func (b *Board) GetSlotCount() int {
	return b.slotCount
}

// GetRemainingBeanCount returns the number of beans waiting to be inserted.
func (b *Board) GetRemainingBeanCount() int {
	return len(b.remaining)
}

// GetInFlightBeanXPos returns the x-coordinate of the in-flight bean on row
// yPos, or NoBeanInYPos if the row is empty. yPos must be within
// [0, slot count).
func (b *Board) GetInFlightBeanXPos(yPos int) int {
	for x := 0; x < b.slotCount; x++ {
		if b.grid[yPos][x] != nil {
			return x
		}
	}
	return NoBeanInYPos
}

// GetSlotBeanCount returns the number of beans in slot i.
func (b *Board) GetSlotBeanCount(i int) int {
	return len(b.slots[i])
}

// CountBeansInSlots returns the total number of beans across all slots.
func (b *Board) CountBeansInSlots() int {
	count := 0
	for i := range b.slots {
		count += len(b.slots[i])
	}
	return count
}

// GetAverageSlotBeanCount returns the mean slot index over all slotted
// beans, or 0 when no beans have landed yet.
func (b *Board) GetAverageSlotBeanCount() float64 {
	count := 0
	sum := 0
	for i := range b.slots {
		count += len(b.slots[i])
		sum += i * len(b.slots[i])
	}
	if count == 0 {
		return 0
	}
	return float64(sum) / float64(count)
}

// dropNext inserts the oldest remaining bean at the top of the board, if
// any beans remain.
func (b *Board) dropNext() {
	if len(b.remaining) == 0 {
		return
	}
	b.grid[0][0] = b.remaining[0]
	b.remaining = b.remaining[1:]
}

// gridEmpty reports whether no bean is in flight on any row.
func (b *Board) gridEmpty() bool {
	for y := 0; y < b.slotCount; y++ {
		if b.GetInFlightBeanXPos(y) != NoBeanInYPos {
			return false
		}
	}
	return true
}
