package game

import "testing"

func TestWriteGridTopRowFirst(t *testing.T) {
	b := parseBoard(t,
		"...O...",
		"X..O...",
	)
	want := "" +
		"| . . . . . . . |\n" +
		"| . . . . . . . |\n" +
		"| . . . . . . . |\n" +
		"| . . . . . . . |\n" +
		"| . . . O . . . |\n" +
		"| X . . O . . . |\n" +
		"  0 1 2 3 4 5 6\n"
	if got := b.String(); got != want {
		t.Fatalf("grid:\n%s\nwant:\n%s", got, want)
	}
}
