package board

import (
	"math/bits"

	"github.com/dylhunn/dragontoothmg"
)

const (
	lightSquares uint64 = 0x55aa55aa55aa55aa
	darkSquares  uint64 = 0xaa55aa55aa55aa55
)

// IsInsufficientMaterial reports that neither side can possibly mate.
func (b *Board) IsInsufficientMaterial() bool {
	return b.hasInsufficientMaterial(&b.b.White, &b.b.Black) &&
		b.hasInsufficientMaterial(&b.b.Black, &b.b.White)
}

func (b *Board) hasInsufficientMaterial(us, them *dragontoothmg.Bitboards) bool {
	if us.Pawns|us.Rooks|us.Queens != 0 {
		return false
	}
	// A lone knight mates only with help from enemy pieces other than a queen.
	if us.Knights != 0 {
		return bits.OnesCount64(us.All) <= 2 && them.All&^(them.Kings|them.Queens) == 0
	}
	// Bishops mate only if they stand on both colors or the enemy can block.
	if us.Bishops != 0 {
		allBishops := b.b.White.Bishops | b.b.Black.Bishops
		sameColor := allBishops&darkSquares == 0 || allBishops&lightSquares == 0
		noPawns := b.b.White.Pawns|b.b.Black.Pawns == 0
		noKnights := b.b.White.Knights|b.b.Black.Knights == 0
		return sameColor && noPawns && noKnights
	}
	return true
}
