// Package engine provides the core simulation logic for the Galton box
// bean machine (also known as a quincunx or bean counter).
//
// The engine package implements the machine mechanics including:
//   - The triangular peg board and in-flight bean tracking
//   - Per-bean movement policies (luck and skill variants)
//   - Slot accumulation and distribution statistics
//   - Half-filtering and experiment repetition
//   - Text rendering of the board state
//
// Core Types:
//
// The BeanCounter interface defines the main contract for machine
// operations, implemented by Board. Bean represents a single bean bound to
// a MovementPolicy that decides, one peg at a time, whether it falls left
// or right. Source abstracts the random capability beans draw from.
//
// Usage:
//
//	board, err := engine.NewBoard(10)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	src := rand.New(rand.NewSource(seed))
//	beans := make([]*engine.Bean, 400)
//	for i := range beans {
//		beans[i] = engine.NewBean(10, true, src)
//	}
//
//	board.Reset(beans)
//	for board.AdvanceStep() {
//	}
//	fmt.Println(board.GetSlotString())
//
// Machine Rules:
//
// Beans enter one at a time from the top of the board. On every step each
// in-flight bean falls one row, choosing left or right at the peg it hits.
// In luck mode the choice is a fair coin flip; in skill mode a bean goes
// right for its first skillLevel pegs and left for the rest, so it always
// lands in the same slot. Beans that clear the bottom row pile up in the
// slots, approximating a binomial distribution in luck mode.
//
// The board uses a logical coordinate system for in-flight beans. For a
// 4-slot machine:
//
//	                     (0, 0)
//	              (0, 1)        (1, 1)
//	       (0, 2)        (1, 2)        (2, 2)
//	(0, 3)        (1, 3)        (2, 3)        (3, 3)
//	[Slot0]       [Slot1]       [Slot2]       [Slot3]
package engine
