package snake

import "testing"

func TestIsOppositeToSymmetric(t *testing.T) {
	dirs := []Direction{DirLeft, DirUp, DirRight, DirDown}

	for _, d1 := range dirs {
		for _, d2 := range dirs {
			if d1.IsOppositeTo(d2) != d2.IsOppositeTo(d1) {
				t.Errorf("IsOppositeTo not symmetric for %v/%v", d1, d2)
			}
		}
	}
}

func TestNoDirectionIsItsOwnOpposite(t *testing.T) {
	for _, d := range []Direction{DirNone, DirLeft, DirUp, DirRight, DirDown} {
		if d.IsOppositeTo(d) {
			t.Errorf("%v should not be opposite to itself", d)
		}
	}
}

func TestOppositePairs(t *testing.T) {
	tests := []struct {
		d, opposite Direction
	}{
		{DirLeft, DirRight},
		{DirRight, DirLeft},
		{DirUp, DirDown},
		{DirDown, DirUp},
	}

	for _, tt := range tests {
		if !tt.d.IsOppositeTo(tt.opposite) {
			t.Errorf("%v should be opposite to %v", tt.d, tt.opposite)
		}
		if tt.d.Opposite() != tt.opposite {
			t.Errorf("%v.Opposite() = %v, want %v", tt.d, tt.d.Opposite(), tt.opposite)
		}
	}
}

func TestNoneIsOppositeToNothing(t *testing.T) {
	for _, d := range []Direction{DirNone, DirLeft, DirUp, DirRight, DirDown} {
		if DirNone.IsOppositeTo(d) {
			t.Errorf("DirNone should not be opposite to %v", d)
		}
		if d.IsOppositeTo(DirNone) {
			t.Errorf("%v should not be opposite to DirNone", d)
		}
	}
}
