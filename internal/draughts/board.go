package draughts

// Position is a board together with the side to move. It is a plain value:
// assigning a Position copies the whole grid, so positions handed to
// concurrent evaluations never alias each other.
type Position struct {
	// Squares is indexed [row][col], row 0 first.
	Squares [BoardSize][BoardSize]Square

	// Who has the next move.
	ToMove Side
}

// NewPosition returns the standard starting position: First's twelve men on
// the playable squares of rows 0-2, Second's on rows 5-7, First to move.
func NewPosition() Position {
	var p Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := C(row, col)
			if !c.Playable() {
				continue
			}
			switch {
			case row < 3:
				p.Squares[row][col] = FirstMan
			case row > 4:
				p.Squares[row][col] = SecondMan
			}
		}
	}
	p.ToMove = First
	return p
}

// At returns the content of square c. Squares off the board read as Empty.
func (p *Position) At(c Coord) Square {
	if !c.InBounds() {
		return Empty
	}
	return p.Squares[c.Row][c.Col]
}

// Set places sq on square c. Coordinates off the board are ignored.
func (p *Position) Set(c Coord, sq Square) {
	if c.InBounds() {
		p.Squares[c.Row][c.Col] = sq
	}
}

// Count returns the number of pieces the given side has on the board.
func (p *Position) Count(side Side) int {
	n := 0
	for row := range p.Squares {
		for _, sq := range p.Squares[row] {
			if sq.Owned(side) {
				n++
			}
		}
	}
	return n
}

// Pieces returns the coordinates of the given side's pieces in row-major order.
func (p *Position) Pieces(side Side) []Coord {
	var out []Coord
	for row := range p.Squares {
		for col, sq := range p.Squares[row] {
			if sq.Owned(side) {
				out = append(out, C(row, col))
			}
		}
	}
	return out
}

// Kings returns the number of kings the given side has on the board.
func (p *Position) Kings(side Side) int {
	n := 0
	for row := range p.Squares {
		for _, sq := range p.Squares[row] {
			if sq.Owned(side) && sq.Rank() == King {
				n++
			}
		}
	}
	return n
}

