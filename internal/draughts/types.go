// Package draughts provides the core English draughts types: sides, squares,
// coordinates, positions and moves.
package draughts

import "fmt"

// Side is one of the two players.
type Side uint8

const (
	First  Side = iota // Starts on rows 0-2 and moves first
	Second             // Starts on rows 5-7
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Second {
		return "Second"
	}
	return "First"
}

// MarshalText encodes the side by name, so JSON output reads "First" or
// "Second" rather than a number.
func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a side name written by MarshalText.
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "First":
		*s = First
	case "Second":
		*s = Second
	default:
		return fmt.Errorf("unknown side %q", text)
	}
	return nil
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == First {
		return Second
	}
	return First
}

// Forward returns the row step a man of this side advances by.
func (s Side) Forward() int {
	if s == First {
		return 1
	}
	return -1
}

// PromotionRow returns the row on which a man of this side becomes a king.
func (s Side) PromotionRow() int {
	if s == First {
		return BoardSize - 1
	}
	return 0
}

// Rank distinguishes regular pieces (men) from kings.
type Rank uint8

const (
	Man Rank = iota
	King
)

// String returns the string representation of a rank.
func (r Rank) String() string {
	if r == King {
		return "King"
	}
	return "Man"
}

// Square is the content of a board square: Empty or an occupied value built
// with MakeSquare. The occupied flag, side and rank are packed into the low
// three bits.
type Square uint8

const (
	occupiedBit Square = 0x4
	kingBit     Square = 0x2
	sideBit     Square = 0x1
)

// Empty is an unoccupied square.
const Empty Square = 0

// The four occupied square values.
var (
	FirstMan   = MakeSquare(First, Man)
	FirstKing  = MakeSquare(First, King)
	SecondMan  = MakeSquare(Second, Man)
	SecondKing = MakeSquare(Second, King)
	allSquares = [...]Square{Empty, FirstMan, FirstKing, SecondMan, SecondKing}
)

// MakeSquare returns the square holding a piece of the given side and rank.
func MakeSquare(side Side, rank Rank) Square {
	sq := occupiedBit | Square(side&1)
	if rank == King {
		sq |= kingBit
	}
	return sq
}

// IsEmpty reports whether no piece stands on the square.
func (sq Square) IsEmpty() bool {
	return sq&occupiedBit == 0
}

// Side returns the owner of the piece. Only meaningful when !IsEmpty().
func (sq Square) Side() Side {
	return Side(sq & sideBit)
}

// Rank returns the rank of the piece. Only meaningful when !IsEmpty().
func (sq Square) Rank() Rank {
	if sq&kingBit != 0 {
		return King
	}
	return Man
}

// Owned reports whether the square holds a piece of the given side.
func (sq Square) Owned(side Side) bool {
	return !sq.IsEmpty() && sq.Side() == side
}

// Promote returns the king of the same side. Empty squares and kings are
// returned unchanged.
func (sq Square) Promote() Square {
	if sq.IsEmpty() {
		return sq
	}
	return sq | kingBit
}

// Valid reports whether sq is one of the five square values.
func (sq Square) Valid() bool {
	for _, v := range allSquares {
		if sq == v {
			return true
		}
	}
	return false
}

// String returns a readable name such as "First King".
func (sq Square) String() string {
	if sq.IsEmpty() {
		return "Empty"
	}
	return sq.Side().String() + " " + sq.Rank().String()
}

// BoardSize is the number of rows and columns.
const BoardSize = 8

// MaxPieces is the number of pieces each side starts with.
const MaxPieces = 12

// Coord addresses a square by row and column, both 0-7.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Playable reports whether the coordinate is a dark square pieces may stand on.
func (c Coord) Playable() bool {
	return c.InBounds() && (c.Row+c.Col)%2 == 1
}

// Add returns the coordinate offset by n steps in direction d.
func (c Coord) Add(d Direction, n int) Coord {
	return Coord{Row: c.Row + d.DRow*n, Col: c.Col + d.DCol*n}
}

// String returns the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is a diagonal step.
type Direction struct {
	DRow, DCol int
}

// The four diagonals, in enumeration order.
var (
	UpLeft    = Direction{-1, -1}
	UpRight   = Direction{-1, 1}
	DownLeft  = Direction{1, -1}
	DownRight = Direction{1, 1}
)

// AllDirections lists the diagonals in enumeration order.
var AllDirections = []Direction{UpLeft, UpRight, DownLeft, DownRight}

// Directions returns the diagonals a piece of the given side and rank may
// move and capture along, in enumeration order.
func Directions(side Side, rank Rank) []Direction {
	if rank == King {
		return AllDirections
	}
	if side == First {
		return []Direction{DownLeft, DownRight}
	}
	return []Direction{UpLeft, UpRight}
}
