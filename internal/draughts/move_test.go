package draughts

import "testing"

func TestMovePath(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want []Coord
	}{
		{
			name: "simple step",
			move: Move{From: C(2, 1), To: C(3, 2)},
			want: []Coord{C(3, 2)},
		},
		{
			name: "single jump",
			move: Move{From: C(2, 1), To: C(4, 3), Captures: []Coord{C(3, 2)}},
			want: []Coord{C(4, 3)},
		},
		{
			name: "double jump changing direction",
			move: Move{From: C(2, 1), To: C(6, 1), Captures: []Coord{C(3, 2), C(5, 2)}},
			want: []Coord{C(4, 3), C(6, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.move.Path()
			if len(got) != len(tt.want) {
				t.Fatalf("Path() = %v; want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Path()[%d] = %v; want %v", i, got[i], tt.want[i])
				}
			}
			if last := got[len(got)-1]; last != tt.move.To {
				t.Errorf("last landing %v != To %v", last, tt.move.To)
			}
		})
	}
}

func TestMoveEqualAndString(t *testing.T) {
	a := Move{From: C(2, 1), To: C(6, 1), Captures: []Coord{C(3, 2), C(5, 2)}}
	b := Move{From: C(2, 1), To: C(6, 1), Captures: []Coord{C(3, 2), C(5, 2)}}
	c := Move{From: C(2, 1), To: C(6, 1), Captures: []Coord{C(3, 0), C(5, 0)}}

	if !a.Equal(b) {
		t.Error("Equal() = false for identical moves")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for moves with different captures")
	}
	if got, want := a.String(), "(2,1)-(6,1) x(3,2),(5,2)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if got, want := (Move{From: C(5, 0), To: C(4, 1)}).String(), "(5,0)-(4,1)"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	if a.IsCapture() != true || (Move{}).IsCapture() {
		t.Error("IsCapture() mismatch")
	}
}
