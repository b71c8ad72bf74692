// Command analyze prints quick, human-readable distribution summaries for a
// matrix of bean machine scenarios. For each scenario it runs the full
// experiment with a fixed seed and reports the mean landing slot, the
// expected mean, and a per-slot histogram.
package main

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/jmfields/galtonbox/machine/engine"
)

// analysisSeed keeps the report stable between invocations.
const analysisSeed = 42

// histogramWidth is the length of the longest histogram bar.
const histogramWidth = 40

// scenario is one machine configuration to analyze.
type scenario struct {
	SlotCount int
	BeanCount int
	Luck      bool
}

func main() {
	scenarios := []scenario{
		{SlotCount: 5, BeanCount: 200, Luck: true},
		{SlotCount: 10, BeanCount: 400, Luck: true},
		{SlotCount: 10, BeanCount: 400, Luck: false},
		{SlotCount: 20, BeanCount: 1000, Luck: true},
		{SlotCount: 20, BeanCount: 1000, Luck: false},
	}

	for _, sc := range scenarios {
		mode := "skill"
		if sc.Luck {
			mode = "luck"
		}
		fmt.Printf("\n=== Analyzing %d slots, %d beans, %s mode ===\n", sc.SlotCount, sc.BeanCount, mode)
		analyzeScenario(sc)
	}
}

// analyzeScenario runs one scenario to completion and prints its summary.
func analyzeScenario(sc scenario) {
	board, err := engine.NewBoard(sc.SlotCount)
	if err != nil {
		fmt.Printf("Error creating board: %v\n", err)
		return
	}

	src := rand.New(rand.NewSource(analysisSeed))
	beans := make([]*engine.Bean, sc.BeanCount)
	for i := range beans {
		beans[i] = engine.NewBean(sc.SlotCount, sc.Luck, src)
	}

	board.Reset(beans)
	steps := 0
	for board.AdvanceStep() {
		steps++
	}

	// In luck mode the landing slot is binomial(slotCount-1, 0.5), so the
	// expected mean slot is (slotCount-1)/2.
	expected := float64(sc.SlotCount-1) / 2
	fmt.Printf("Steps: %d\n", steps)
	fmt.Printf("Mean slot: %.3f (expected %.3f)\n", board.GetAverageSlotBeanCount(), expected)

	max := 0
	for i := 0; i < sc.SlotCount; i++ {
		if n := board.GetSlotBeanCount(i); n > max {
			max = n
		}
	}
	for i := 0; i < sc.SlotCount; i++ {
		n := board.GetSlotBeanCount(i)
		bar := 0
		if max > 0 {
			bar = n * histogramWidth / max
		}
		fmt.Printf("%3d |%-*s %d\n", i, histogramWidth, strings.Repeat("#", bar), n)
	}
}
