// Package board adapts github.com/dylhunn/dragontoothmg to engine.Position.
package board

import (
	"errors"
	"fmt"
	"strings"

	"chess-agent/engine"

	"github.com/dylhunn/dragontoothmg"
)

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrBadFEN       = errors.New("malformed FEN")
	ErrEmptyHistory = errors.New("no move to unmake")
)

// Startpos is the FEN of the initial position.
const Startpos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

type frame struct {
	move engine.Move
	undo func()
}

type legalCache struct {
	valid bool
	hash  uint64
	ply   int
	moves []engine.Move
}

// Board is a dragontoothmg board plus the undo history the engine needs for
// Unmake and the position history needed for repetition draws.
type Board struct {
	b       dragontoothmg.Board
	history []frame
	states  []state
	cache   legalCache
}

var _ engine.Position = (*Board)(nil)

func New() *Board {
	b, err := FromFEN(Startpos)
	if err != nil {
		panic(err)
	}
	return b
}

// FromFEN parses a six-field FEN string.
func FromFEN(fen string) (board *Board, err error) {
	if len(strings.Fields(fen)) != 6 {
		return nil, fmt.Errorf("parse %q: %w", fen, ErrBadFEN)
	}
	defer func() {
		if r := recover(); r != nil {
			board = nil
			err = fmt.Errorf("parse %q: %w: %v", fen, ErrBadFEN, r)
		}
	}()
	board = &Board{b: dragontoothmg.ParseFen(fen)}
	board.resetStates()
	return board, nil
}

func (b *Board) FEN() string {
	return b.b.ToFen()
}

func (b *Board) String() string {
	return b.FEN()
}

func (b *Board) Hash() uint64 {
	return b.b.Hash()
}

// Ply is the number of moves applied since the board was created.
func (b *Board) Ply() int {
	return len(b.history)
}

// Moves returns the applied moves, oldest first.
func (b *Board) Moves() []engine.Move {
	moves := make([]engine.Move, len(b.history))
	for i, f := range b.history {
		moves[i] = f.move
	}
	return moves
}

func (b *Board) SideToMove() engine.Color {
	if b.b.Wtomove {
		return engine.White
	}
	return engine.Black
}

func (b *Board) LegalMoves() []engine.Move {
	hash, ply := b.b.Hash(), len(b.history)
	if b.cache.valid && b.cache.hash == hash && b.cache.ply == ply {
		return b.cache.moves
	}
	raw := b.b.GenerateLegalMoves()
	moves := make([]engine.Move, len(raw))
	for i := range raw {
		moves[i] = toMove(raw[i])
	}
	b.cache = legalCache{valid: true, hash: hash, ply: ply, moves: moves}
	return moves
}

func toMove(mv dragontoothmg.Move) engine.Move {
	return engine.Move{
		From:      engine.Square(mv.From()),
		To:        engine.Square(mv.To()),
		Promotion: engine.Piece(mv.Promote()),
		Token:     uint32(mv),
	}
}

// Apply plays a move produced by LegalMoves or ParseMove.
func (b *Board) Apply(m engine.Move) {
	if m.Token == 0 {
		panic(fmt.Sprintf("board.Apply: move %s was not produced by a board", m))
	}
	undo := b.b.Apply(dragontoothmg.Move(m.Token))
	b.history = append(b.history, frame{move: m, undo: undo})
	b.pushState()
}

func (b *Board) Unmake() engine.Move {
	if len(b.history) == 0 {
		panic(ErrEmptyHistory)
	}
	last := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	last.undo()
	b.popState()
	return last.move
}

// ParseMove finds the legal move written in UCI notation (e2e4, e7e8q).
func (b *Board) ParseMove(s string) (engine.Move, error) {
	mv, err := dragontoothmg.ParseMove(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return engine.NullMove, fmt.Errorf("parse move %q: %w", s, err)
	}
	from, to, promote := mv.From(), mv.To(), mv.Promote()
	for _, m := range b.LegalMoves() {
		if m.From == engine.Square(from) && m.To == engine.Square(to) && m.Promotion == engine.Piece(promote) {
			return m, nil
		}
	}
	return engine.NullMove, fmt.Errorf("%w: %s in %s", ErrIllegalMove, s, b.FEN())
}

// PlayUCI parses and applies a space separated list of UCI moves.
func (b *Board) PlayUCI(moves string) error {
	for _, s := range strings.Fields(moves) {
		m, err := b.ParseMove(s)
		if err != nil {
			return err
		}
		b.Apply(m)
	}
	return nil
}

func (b *Board) InCheck() bool {
	return b.b.OurKingInCheck()
}

func (b *Board) IsCheckmate() bool {
	return b.InCheck() && len(b.LegalMoves()) == 0
}

func (b *Board) IsStalemate() bool {
	return !b.InCheck() && len(b.LegalMoves()) == 0
}

func (b *Board) IsGameOver() bool {
	return len(b.LegalMoves()) == 0 ||
		b.IsInsufficientMaterial() ||
		b.IsSeventyFiveMoves() ||
		b.IsFivefoldRepetition()
}

func (b *Board) PieceAt(sq engine.Square) (engine.Piece, engine.Color) {
	if p, ok := pieceAt(uint8(sq), &b.b.White); ok {
		return p, engine.White
	}
	if p, ok := pieceAt(uint8(sq), &b.b.Black); ok {
		return p, engine.Black
	}
	return engine.NoPiece, engine.White
}

func (b *Board) IsCapture(m engine.Move) bool {
	victim, _ := b.Captured(m)
	return victim != engine.NoPiece
}

func (b *Board) Captured(m engine.Move) (engine.Piece, engine.Square) {
	if m.Drop != engine.NoPiece {
		return engine.NoPiece, 0
	}
	us, them := b.sides()
	if p, ok := pieceAt(uint8(m.To), them); ok {
		return p, m.To
	}
	// En passant: a pawn moving diagonally onto an empty square.
	if p, ok := pieceAt(uint8(m.From), us); ok && p == engine.Pawn && m.From.File() != m.To.File() {
		victimSq := m.To - 8
		if !b.b.Wtomove {
			victimSq = m.To + 8
		}
		if q, ok := pieceAt(uint8(victimSq), them); ok && q == engine.Pawn {
			return engine.Pawn, victimSq
		}
	}
	return engine.NoPiece, 0
}

func (b *Board) sides() (us, them *dragontoothmg.Bitboards) {
	if b.b.Wtomove {
		return &b.b.White, &b.b.Black
	}
	return &b.b.Black, &b.b.White
}

func pieceAt(position uint8, bitboards *dragontoothmg.Bitboards) (engine.Piece, bool) {
	mask := uint64(1) << position
	switch {
	case bitboards.All&mask == 0:
		return engine.NoPiece, false
	case bitboards.Pawns&mask != 0:
		return engine.Pawn, true
	case bitboards.Knights&mask != 0:
		return engine.Knight, true
	case bitboards.Bishops&mask != 0:
		return engine.Bishop, true
	case bitboards.Rooks&mask != 0:
		return engine.Rook, true
	case bitboards.Queens&mask != 0:
		return engine.Queen, true
	case bitboards.Kings&mask != 0:
		return engine.King, true
	}
	return engine.NoPiece, false
}
