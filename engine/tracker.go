package engine

import "fmt"

type trackedMove struct {
	move  Move
	delta int32
}

// Tracker keeps a running evaluation in step with the moves applied to a
// Position, so leaves are scored in O(1) instead of by a full Balance.
//
// OnApply must be called before the move is applied to the position (it
// reads the pre-move board). OnUnmake must be called with the moves in the
// reverse order of their OnApply calls.
type Tracker struct {
	white int32
	side  Color
	stack []trackedMove
}

func NewTracker(pos Position) *Tracker {
	return &Tracker{
		white: Balance(pos),
		side:  pos.SideToMove(),
		stack: make([]trackedMove, 0, 64),
	}
}

// Score is the running evaluation for the side to move.
func (t *Tracker) Score() int32 {
	return Relative(t.white, t.side)
}

// Absolute is the running White-minus-Black evaluation.
func (t *Tracker) Absolute() int32 {
	return t.white
}

func (t *Tracker) SideToMove() Color {
	return t.side
}

// Depth is the number of applied moves not yet unmade.
func (t *Tracker) Depth() int {
	return len(t.stack)
}

func (t *Tracker) OnApply(pos Position, m Move) {
	d := moveDelta(pos, m, t.side)
	t.white += d
	t.side = t.side.Other()
	t.stack = append(t.stack, trackedMove{move: m, delta: d})
}

func (t *Tracker) OnUnmake(m Move) {
	if len(t.stack) == 0 {
		panic("engine.Tracker: unmake with no tracked move")
	}
	top := t.stack[len(t.stack)-1]
	if top.move != m {
		panic(fmt.Sprintf("engine.Tracker: unmake %s does not match last applied %s", m, top.move))
	}
	t.stack = t.stack[:len(t.stack)-1]
	t.white -= top.delta
	t.side = t.side.Other()
}

// moveDelta is the change m makes to the White-minus-Black balance.
func moveDelta(pos Position, m Move, mover Color) int32 {
	var gain int32

	if m.Drop != NoPiece {
		gain += PieceValue[m.Drop] + psqt(m.Drop, mover, m.To)
	} else {
		piece, _ := pos.PieceAt(m.From)
		gain -= psqt(piece, mover, m.From)

		placed := piece
		if m.Promotion != NoPiece {
			placed = m.Promotion
			gain += PieceValue[m.Promotion] - PieceValue[piece]
		}
		gain += psqt(placed, mover, m.To)

		if piece == King {
			if cr, ok := castlingRook(mover, m.From, m.To); ok {
				gain += psqt(Rook, mover, cr.RookTo) - psqt(Rook, mover, cr.RookFrom)
			}
		}
	}

	// Removing an enemy piece gains its material and its square bonus.
	if victim, sq := pos.Captured(m); victim != NoPiece {
		gain += PieceValue[victim] + psqt(victim, mover.Other(), sq)
	}

	return Relative(gain, mover)
}
