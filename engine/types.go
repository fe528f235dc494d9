package engine

// Square indexes the board a1 = 0 ... h8 = 63 (file + 8*rank). Any Position
// handed to the engine must use this numbering.
type Square uint8

// Mirror flips the square vertically (a1 <-> a8), so a table written for
// White can be read for Black.
func (sq Square) Mirror() Square {
	return sq ^ 56
}

func (sq Square) File() int { return int(sq) % 8 }
func (sq Square) Rank() int { return int(sq) / 8 }

func (sq Square) String() string {
	if sq > 63 {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// Piece is a piece type without color. Values match dragontoothmg.
type Piece uint8

const (
	NoPiece Piece = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceLetters = [7]byte{' ', 'p', 'n', 'b', 'r', 'q', 'k'}

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Other() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Move is produced by a Position. The engine only reads From, To, Promotion
// and Drop; Token is an opaque encoding private to the Position that
// generated the move.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
	Drop      Piece
	Token     uint32
}

// NullMove is the "no move" result.
var NullMove = Move{}

func (m Move) IsNull() bool {
	return m == NullMove
}

// String prints the move in UCI notation.
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	if m.Drop != NoPiece {
		return string(pieceLetters[m.Drop]-'a'+'A') + "@" + m.To.String()
	}
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(pieceLetters[m.Promotion])
	}
	return s
}

// CastlingRook describes the rook hop that accompanies a castling king move.
type CastlingRook struct {
	KingTo   Square
	RookFrom Square
	RookTo   Square
}

const (
	SqA1 Square = 0
	SqC1 Square = 2
	SqD1 Square = 3
	SqE1 Square = 4
	SqF1 Square = 5
	SqG1 Square = 6
	SqH1 Square = 7
	SqA8 Square = 56
	SqC8 Square = 58
	SqD8 Square = 59
	SqE8 Square = 60
	SqF8 Square = 61
	SqG8 Square = 62
	SqH8 Square = 63
)

var KingStart = [2]Square{White: SqE1, Black: SqE8}

// CastlingRooks holds kingside then queenside for each color.
var CastlingRooks = [2][2]CastlingRook{
	White: {
		{KingTo: SqG1, RookFrom: SqH1, RookTo: SqF1},
		{KingTo: SqC1, RookFrom: SqA1, RookTo: SqD1},
	},
	Black: {
		{KingTo: SqG8, RookFrom: SqH8, RookTo: SqF8},
		{KingTo: SqC8, RookFrom: SqA8, RookTo: SqD8},
	},
}

// castlingRook reports the rook hop for a king move, if the move is a castle.
func castlingRook(side Color, from, to Square) (CastlingRook, bool) {
	if from != KingStart[side] {
		return CastlingRook{}, false
	}
	for _, cr := range CastlingRooks[side] {
		if cr.KingTo == to {
			return cr, true
		}
	}
	return CastlingRook{}, false
}

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MateScore int32 = 30000
	Infinity  int32 = 32000
	DrawScore int32 = 0
)
