// Package hashing provides Zobrist hashing of draughts positions and a
// position table used to cache perft subtree counts.
package hashing

import (
	"github.com/lgbarn/checkers-go/internal/draughts"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed uint64 = 0x9E3779B97F4A7C15

// pieceIndex maps occupied square values to a key column.
var pieceIndex = map[draughts.Square]int{
	draughts.FirstMan:   0,
	draughts.FirstKing:  1,
	draughts.SecondMan:  2,
	draughts.SecondKing: 3,
}

var (
	squareKeys [draughts.BoardSize][draughts.BoardSize][4]uint64
	secondKey  uint64
)

func init() {
	state := zobristSeed
	for row := range squareKeys {
		for col := range squareKeys[row] {
			for p := range squareKeys[row][col] {
				squareKeys[row][col][p] = splitmix64(&state)
			}
		}
	}
	secondKey = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash returns the Zobrist hash of pos, including the side to
// move.
func GenerateZobristHash(pos *draughts.Position) uint64 {
	var hash uint64
	for row := range pos.Squares {
		for col, sq := range pos.Squares[row] {
			if p, ok := pieceIndex[sq]; ok {
				hash ^= squareKeys[row][col][p]
			}
		}
	}
	if pos.ToMove == draughts.Second {
		hash ^= secondKey
	}
	return hash
}

// entryKey identifies a cached perft count.
type entryKey struct {
	hash  uint64
	depth int
}

// Table maps (position, depth) pairs to perft node counts. It is not safe
// for concurrent use; see ThreadSafeTable.
type Table struct {
	entries     map[entryKey]uint64
	maxCapacity int
	hits        int
	misses      int
}

// NewTable creates an empty table. maxCapacity of 0 means unlimited capacity;
// once full, Store drops new entries.
func NewTable(maxCapacity int) *Table {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &Table{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached count for pos searched to depth.
func (t *Table) Lookup(pos *draughts.Position, depth int) (uint64, bool) {
	nodes, ok := t.entries[entryKey{GenerateZobristHash(pos), depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records the count for pos searched to depth.
func (t *Table) Store(pos *draughts.Position, depth int, nodes uint64) {
	if t.IsFull() {
		return
	}
	t.entries[entryKey{GenerateZobristHash(pos), depth}] = nodes
}

// Len returns the number of cached entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Hits returns how many lookups found an entry.
func (t *Table) Hits() int {
	return t.hits
}

// Misses returns how many lookups found nothing.
func (t *Table) Misses() int {
	return t.misses
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}
