package engine

import (
	"fmt"
	"strings"
)

// xspacing is the number of spaces between numbers when printing the board.
// Keep it odd; even values don't align the triangle.
const xspacing = 3

// indent returns the number of spaces to indent the given row of pegs.
func (b *Board) indent(yPos int) int {
	rootIndent := (b.slotCount-1)*(xspacing+1)/2 + (xspacing + 1)
	return rootIndent - (xspacing+1)/2*yPos
}

// GetSlotString formats the bean count of every slot in fixed-width
// columns.
func (b *Board) GetSlotString() string {
	var sb strings.Builder
	for i := 0; i < b.slotCount; i++ {
		fmt.Fprintf(&sb, "%*d", xspacing+1, b.GetSlotBeanCount(i))
	}
	return sb.String()
}

// String renders the entire machine. A peg with a bean above it prints as
// "1", every other peg as "0", and the slot bean counts are attached at the
// very bottom. Purely a debugging aid; it only consumes read accessors.
func (b *Board) String() string {
	var sb strings.Builder
	for yPos := 0; yPos < b.slotCount; yPos++ {
		xBeanPos := b.GetInFlightBeanXPos(yPos)
		for xPos := 0; xPos <= yPos; xPos++ {
			width := xspacing + 1
			if xPos == 0 {
				width = b.indent(yPos)
			}
			mark := 0
			if xPos == xBeanPos {
				mark = 1
			}
			fmt.Fprintf(&sb, "%*d", width, mark)
		}
		sb.WriteByte('\n')
	}
	return sb.String() + b.GetSlotString()
}
