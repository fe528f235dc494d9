package board

// Perft counts the leaf nodes of the legal move tree to the given depth,
// walking it with Apply and Unmake.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		b.Apply(m)
		nodes += Perft(b, depth-1)
		b.Unmake()
	}
	return nodes
}

// PerftDivide reports the perft count below each root move, keyed by UCI.
func PerftDivide(b *Board, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	for _, m := range b.LegalMoves() {
		b.Apply(m)
		div[m.String()] = Perft(b, depth-1)
		b.Unmake()
	}
	return div
}
