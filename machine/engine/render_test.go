package engine

import "testing"

func TestGetSlotString(t *testing.T) {
	board, err := NewBoard(3)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}

	board.Reset([]*Bean{skillBean(t, 3, 0), skillBean(t, 3, 0), skillBean(t, 3, 2)})
	runToCompletion(t, board)

	want := "   2   0   1"
	if got := board.GetSlotString(); got != want {
		t.Errorf("Expected slot string %q, got %q", want, got)
	}
}

func TestString_EmptyBoard(t *testing.T) {
	board, err := NewBoard(2)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	board.Reset(nil)

	want := "" +
		"     0\n" +
		"   0   0\n" +
		"   0   0"
	if got := board.String(); got != want {
		t.Errorf("Expected rendering:\n%q\ngot:\n%q", want, got)
	}
}

func TestString_MarksInFlightBean(t *testing.T) {
	board, err := NewBoard(2)
	if err != nil {
		t.Fatalf("Failed to create board: %v", err)
	}
	board.Reset([]*Bean{NewBean(2, true, alwaysRight())})

	want := "" +
		"     1\n" +
		"   0   0\n" +
		"   0   0"
	if got := board.String(); got != want {
		t.Errorf("Expected rendering:\n%q\ngot:\n%q", want, got)
	}

	board.AdvanceStep()
	want = "" +
		"     0\n" +
		"   0   1\n" +
		"   0   0"
	if got := board.String(); got != want {
		t.Errorf("Expected rendering after step:\n%q\ngot:\n%q", want, got)
	}
}
