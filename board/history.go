package board

const (
	seventyFiveMoveLimit = 150
	fivefoldLimit        = 5
)

// state captures what we need to reason about repetitions and the move
// clock for every position reached, the current one last.
type state struct {
	hash   uint64
	rule50 int
}

func (b *Board) resetStates() {
	b.states = b.states[:0]
	b.pushState()
}

func (b *Board) pushState() {
	b.states = append(b.states, state{
		hash:   b.b.Hash(),
		rule50: int(b.b.Halfmoveclock),
	})
}

func (b *Board) popState() {
	if len(b.states) <= 1 {
		return
	}
	b.states = b.states[:len(b.states)-1]
}

// Repetitions counts how often the current position occurred before,
// looking back only as far as the last capture or pawn move.
func (b *Board) Repetitions() int {
	if len(b.states) <= 1 {
		return 0
	}
	curr := b.states[len(b.states)-1]
	start := len(b.states) - 1 - curr.rule50
	if start < 0 {
		start = 0
	}
	count := 0
	for i := len(b.states) - 2; i >= start; i-- {
		if b.states[i].hash == curr.hash {
			count++
		}
	}
	return count
}

func (b *Board) IsFivefoldRepetition() bool {
	return b.Repetitions()+1 >= fivefoldLimit
}

func (b *Board) IsThreefoldRepetition() bool {
	return b.Repetitions()+1 >= 3
}

// IsSeventyFiveMoves applies the 75-move rule; a mate delivered on the last
// move still counts as mate.
func (b *Board) IsSeventyFiveMoves() bool {
	return int(b.b.Halfmoveclock) >= seventyFiveMoveLimit && len(b.LegalMoves()) > 0
}
