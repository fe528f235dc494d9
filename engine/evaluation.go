package engine

// Relative turns a White-minus-Black score into a score for the side to
// move. Every evaluator in the package goes through here.
func Relative(white int32, side Color) int32 {
	if side == Black {
		return -white
	}
	return white
}

// Evaluate scores pos for the side to move: -MateScore when that side is
// checkmated, DrawScore for any drawn game-over, material plus piece-square
// terms otherwise.
func Evaluate(pos Position) int32 {
	if pos.IsCheckmate() {
		return -MateScore
	}
	if pos.IsStalemate() || pos.IsInsufficientMaterial() || pos.IsGameOver() {
		return DrawScore
	}
	return Relative(Balance(pos), pos.SideToMove())
}

// Balance is the White-minus-Black sum of material and piece-square terms.
func Balance(pos Position) int32 {
	var score int32
	for sq := Square(0); sq < 64; sq++ {
		piece, color := pos.PieceAt(sq)
		if piece == NoPiece {
			continue
		}
		v := PieceValue[piece] + psqt(piece, color, sq)
		if color == White {
			score += v
		} else {
			score -= v
		}
	}
	return score
}

// MaterialBalance is Balance without the piece-square terms.
func MaterialBalance(pos Position) int32 {
	var score int32
	for sq := Square(0); sq < 64; sq++ {
		piece, color := pos.PieceAt(sq)
		if piece == NoPiece {
			continue
		}
		if color == White {
			score += PieceValue[piece]
		} else {
			score -= PieceValue[piece]
		}
	}
	return score
}
