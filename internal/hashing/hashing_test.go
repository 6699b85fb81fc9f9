package hashing

import (
	"testing"

	"github.com/lgbarn/checkers-go/internal/draughts"
)

func TestZobristHashConsistency(t *testing.T) {
	pos1 := draughts.NewPosition()
	pos2 := draughts.NewPosition()

	hash1 := GenerateZobristHash(&pos1)
	hash2 := GenerateZobristHash(&pos2)

	if hash1 != hash2 {
		t.Errorf("Identical positions produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	start := draughts.NewPosition()
	base := GenerateZobristHash(&start)

	tests := []struct {
		name   string
		modify func(p *draughts.Position)
	}{
		{"man moved", func(p *draughts.Position) {
			p.Set(draughts.C(2, 1), draughts.Empty)
			p.Set(draughts.C(3, 2), draughts.FirstMan)
		}},
		{"man promoted", func(p *draughts.Position) {
			p.Set(draughts.C(2, 1), draughts.FirstKing)
		}},
		{"piece removed", func(p *draughts.Position) {
			p.Set(draughts.C(5, 0), draughts.Empty)
		}},
		{"side to move", func(p *draughts.Position) {
			p.ToMove = draughts.Second
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := draughts.NewPosition()
			tt.modify(&pos)
			if GenerateZobristHash(&pos) == base {
				t.Error("Different positions produced the same hash")
			}
		})
	}
}

func TestZobristHashIsIncremental(t *testing.T) {
	// Hashes are XOR sums, so the order pieces are placed in does not matter.
	var a, b draughts.Position
	a.Set(draughts.C(2, 1), draughts.FirstMan)
	a.Set(draughts.C(5, 4), draughts.SecondKing)
	b.Set(draughts.C(5, 4), draughts.SecondKing)
	b.Set(draughts.C(2, 1), draughts.FirstMan)

	if GenerateZobristHash(&a) != GenerateZobristHash(&b) {
		t.Error("placement order changed the hash")
	}

	var empty draughts.Position
	if got := GenerateZobristHash(&empty); got != 0 {
		t.Errorf("GenerateZobristHash(empty, First) = %x, want 0", got)
	}
}

func TestTable(t *testing.T) {
	table := NewTable(0)
	pos := draughts.NewPosition()

	if _, ok := table.Lookup(&pos, 3); ok {
		t.Error("Lookup on an empty table found an entry")
	}

	table.Store(&pos, 3, 266)
	nodes, ok := table.Lookup(&pos, 3)
	if !ok || nodes != 266 {
		t.Errorf("Lookup(start, 3) = %d, %v, want 266, true", nodes, ok)
	}

	if _, ok := table.Lookup(&pos, 2); ok {
		t.Error("Lookup found an entry stored at another depth")
	}

	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
	if table.Hits() != 1 || table.Misses() != 2 {
		t.Errorf("Hits/Misses = %d/%d, want 1/2", table.Hits(), table.Misses())
	}
}

func TestTable_Capacity(t *testing.T) {
	tests := []struct {
		name        string
		maxCapacity int
		stores      int
		wantLen     int
		wantFull    bool
	}{
		{"unlimited", 0, 5, 5, false},
		{"negative means unlimited", -1, 5, 5, false},
		{"under capacity", 10, 5, 5, false},
		{"at capacity", 3, 3, 3, true},
		{"over capacity drops entries", 3, 5, 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.maxCapacity)
			pos := draughts.NewPosition()
			for depth := 1; depth <= tt.stores; depth++ {
				table.Store(&pos, depth, uint64(depth))
			}
			if table.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", table.Len(), tt.wantLen)
			}
			if table.IsFull() != tt.wantFull {
				t.Errorf("IsFull() = %v, want %v", table.IsFull(), tt.wantFull)
			}
		})
	}
}
