package engine

// Position is the rules engine the search runs on. The engine never copies a
// Position; it mutates it through Apply and restores it through Unmake in
// strict LIFO order.
type Position interface {
	SideToMove() Color
	LegalMoves() []Move

	IsGameOver() bool
	IsCheckmate() bool
	IsStalemate() bool
	IsInsufficientMaterial() bool

	// Apply plays a move taken from LegalMoves. Legality is not re-checked.
	Apply(m Move)
	// Unmake reverses the most recent Apply and returns its move.
	Unmake() Move

	IsCapture(m Move) bool
	// Captured returns the piece a move removes and the square it stood on,
	// or NoPiece. En passant victims are reported on their real square.
	Captured(m Move) (Piece, Square)
	PieceAt(sq Square) (Piece, Color)
}
