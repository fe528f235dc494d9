package engine

// Searcher runs depth-limited alpha-beta over one Position. Every frame of
// the recursion works on the same position and tracker through make/unmake;
// nothing is copied.
type Searcher struct {
	pos     Position
	tracker *Tracker

	// QuiescenceNodeLimit caps the quiescence nodes visited by one call to
	// Search or Quiescence. Zero means unlimited.
	QuiescenceNodeLimit uint64

	qnodes uint64
	stats  Stats
}

func NewSearcher(pos Position, tracker *Tracker) *Searcher {
	return &Searcher{pos: pos, tracker: tracker}
}

func (s *Searcher) Stats() Stats {
	return s.stats
}

func (s *Searcher) ResetStats() {
	s.stats.Reset()
}

// Search is minimax with alpha-beta pruning. Scores are from the point of
// view of the player maximizing at the top-level call. The returned move is
// NullMove only at a leaf.
func (s *Searcher) Search(depth int, alpha int32, beta int32, maximizing bool) (int32, Move) {
	s.qnodes = 0
	return s.search(depth, alpha, beta, maximizing)
}

func (s *Searcher) search(depth int, alpha int32, beta int32, maximizing bool) (int32, Move) {
	s.stats.Nodes++

	if depth <= 0 || s.pos.IsGameOver() {
		return s.leaf(alpha, beta, maximizing), NullMove
	}

	moves := s.pos.LegalMoves()
	if len(moves) == 0 {
		s.stats.TerminalLeaves++
		return perspective(Evaluate(s.pos), maximizing), NullMove
	}

	bestMove := NullMove

	if maximizing {
		maxVal := -Infinity
		for _, move := range moves {
			s.make(move)
			childVal, _ := s.search(depth-1, alpha, beta, false)
			s.unmake(move)

			if childVal > maxVal {
				maxVal = childVal
				bestMove = move
			}
			alpha = max(alpha, childVal)
			if beta <= alpha {
				s.stats.BetaCutoffs++
				break
			}
		}
		return maxVal, bestMove
	}

	minVal := Infinity
	for _, move := range moves {
		s.make(move)
		childVal, _ := s.search(depth-1, alpha, beta, true)
		s.unmake(move)

		if childVal < minVal {
			minVal = childVal
			bestMove = move
		}
		beta = min(beta, childVal)
		if beta <= alpha {
			s.stats.BetaCutoffs++
			break
		}
	}
	return minVal, bestMove
}

// Quiescence searches captures only until the position is quiet. The result
// is relative to the side to move and fail-hard: always within [alpha, beta].
func (s *Searcher) Quiescence(alpha int32, beta int32) int32 {
	s.qnodes = 0
	return s.quiescence(alpha, beta)
}

func (s *Searcher) quiescence(alpha int32, beta int32) int32 {
	s.qnodes++
	s.stats.QuiescenceNodes++

	if s.pos.IsGameOver() {
		s.stats.TerminalLeaves++
		return failHard(Evaluate(s.pos), alpha, beta)
	}

	standPat := s.tracker.Score()
	if standPat >= beta {
		s.stats.QStandPatCutoffs++
		return beta
	}
	if alpha < standPat {
		alpha = standPat
	}

	if s.QuiescenceNodeLimit > 0 && s.qnodes > s.QuiescenceNodeLimit {
		s.stats.QNodeLimitHits++
		return alpha
	}

	for _, move := range s.pos.LegalMoves() {
		if !s.pos.IsCapture(move) {
			continue
		}
		s.make(move)
		score := -s.quiescence(-beta, -alpha)
		s.unmake(move)

		if score >= beta {
			s.stats.QBetaCutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// leaf scores a horizon node for the player the node belongs to. Quiescence
// answers for the side to move, which is the maximizing player only at
// maximizing nodes.
func (s *Searcher) leaf(alpha int32, beta int32, maximizing bool) int32 {
	if maximizing {
		return s.quiescence(alpha, beta)
	}
	return -s.quiescence(-beta, -alpha)
}

func (s *Searcher) make(m Move) {
	s.tracker.OnApply(s.pos, m)
	s.pos.Apply(m)
}

func (s *Searcher) unmake(m Move) {
	s.pos.Unmake()
	s.tracker.OnUnmake(m)
}

func perspective(score int32, maximizing bool) int32 {
	if maximizing {
		return score
	}
	return -score
}

func failHard(score, alpha, beta int32) int32 {
	if score >= beta {
		return beta
	}
	if score > alpha {
		return score
	}
	return alpha
}
