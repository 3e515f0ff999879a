package main

// 0 - 5   origin square
// 6 - 11  destination square
// 12 - 14 moving piece kind
// 15      moving piece color
// 16 - 18 captured piece kind (0 - none)
// 19 - 21 promotion piece kind (0 - none)
// 22      castle flag
// 23      en passant flag
type Move uint32

const (
	NilMove Move = 0xffffffff

	BitMask6 uint32 = 0x3f
	BitMask3 uint32 = 0x7

	castleBit    Move = 1 << 22
	enPassantBit Move = 1 << 23
)

func BuildMove(origin Square, destination Square, mover ColoredPiece, captured PieceKind, promotion PieceKind) Move {
	return Move(origin) |
		Move(destination)<<6 |
		Move(mover.Kind())<<12 |
		Move(mover.Color())<<15 |
		Move(captured)<<16 |
		Move(promotion)<<19
}

func BuildCastleMove(origin Square, destination Square, mover ColoredPiece) Move {
	return BuildMove(origin, destination, mover, Empty, Empty) | castleBit
}

func BuildEnPassantMove(origin Square, destination Square, mover ColoredPiece) Move {
	return BuildMove(origin, destination, mover, Pawn, Empty) | enPassantBit
}

func (m Move) OriginSquare() Square      { return Square(uint32(m) & BitMask6) }
func (m Move) DestinationSquare() Square { return Square(uint32(m) >> 6 & BitMask6) }
func (m Move) MovingKind() PieceKind     { return PieceKind(uint32(m) >> 12 & BitMask3) }
func (m Move) MovingColor() Color        { return Color(uint32(m) >> 15 & 1) }
func (m Move) CapturedKind() PieceKind   { return PieceKind(uint32(m) >> 16 & BitMask3) }
func (m Move) PromotionKind() PieceKind  { return PieceKind(uint32(m) >> 19 & BitMask3) }
func (m Move) IsCastle() bool            { return m&castleBit != 0 }
func (m Move) IsEnPassant() bool         { return m&enPassantBit != 0 }
func (m Move) IsCapture() bool           { return m.CapturedKind() != Empty }

var promotionRunes = [7]string{"", "", "n", "b", "r", "q", ""}

// String renders the move in the long-algebraic form UCI speaks: origin,
// destination, and a trailing piece letter for promotions (e7e8q).
func (m Move) String() string {
	if m == NilMove {
		return "0000"
	}
	return m.OriginSquare().String() + m.DestinationSquare().String() + promotionRunes[m.PromotionKind()]
}
