package dimacs

import "testing"

func TestLit_Slot(t *testing.T) {
	tests := []struct {
		lit  Lit
		want int
	}{
		{0, 0},
		{1, 2},
		{-1, 3},
		{2, 4},
		{-2, 5},
		{7, 14},
		{-7, 15},
	}
	for _, tt := range tests {
		if got := tt.lit.Slot(); got != tt.want {
			t.Errorf("Lit(%d).Slot() = %d, want %d", tt.lit, got, tt.want)
		}
	}
}

func TestLit_SlotInjective(t *testing.T) {
	const vars = 20
	seen := make(map[int]Lit)
	for v := 1; v <= vars; v++ {
		for _, l := range []Lit{Lit(v), Lit(-v)} {
			slot := l.Slot()
			if slot <= 0 || slot >= SlotCount(vars) {
				t.Fatalf("Lit(%d).Slot() = %d, outside (0, %d)", l, slot, SlotCount(vars))
			}
			if prev, dup := seen[slot]; dup {
				t.Fatalf("slot %d claimed by both %d and %d", slot, prev, l)
			}
			seen[slot] = l
		}
	}
}

func TestLit_SlotParity(t *testing.T) {
	for v := 1; v <= 10; v++ {
		pos, neg := Lit(v).Slot(), Lit(-v).Slot()
		if pos%2 != 0 {
			t.Errorf("Lit(%d).Slot() = %d, want even", v, pos)
		}
		if neg%2 != 1 {
			t.Errorf("Lit(%d).Slot() = %d, want odd", -v, neg)
		}
		if pos == neg {
			t.Errorf("slots for %d and %d collide at %d", v, -v, pos)
		}
	}
}

func TestLit_VarAndPolarity(t *testing.T) {
	if got := Lit(-4).Var(); got != 4 {
		t.Errorf("Lit(-4).Var() = %d, want 4", got)
	}
	if got := Lit(4).Var(); got != 4 {
		t.Errorf("Lit(4).Var() = %d, want 4", got)
	}
	if Lit(-4).Positive() {
		t.Error("Lit(-4).Positive() = true, want false")
	}
	if got := Lit(4).Neg(); got != Lit(-4) {
		t.Errorf("Lit(4).Neg() = %d, want -4", got)
	}
}

func TestSlotCount(t *testing.T) {
	if got := SlotCount(3); got != 8 {
		t.Errorf("SlotCount(3) = %d, want 8", got)
	}
	if got := SlotCount(0); got != 2 {
		t.Errorf("SlotCount(0) = %d, want 2", got)
	}
}
