package common

import "math/bits"

const (
	FileAMask uint64 = 0x0101010101010101 << iota
	FileBMask
	FileCMask
	FileDMask
	FileEMask
	FileFMask
	FileGMask
	FileHMask
)

const (
	Rank1Mask uint64 = 0xFF << (8 * iota)
	Rank2Mask
	Rank3Mask
	Rank4Mask
	Rank5Mask
	Rank6Mask
	Rank7Mask
	Rank8Mask
)

// Opponent disks that can lie inside a flanked run. A run along a row can
// never include files A or H, a run along a file never ranks 1 or 8.
const (
	horizontalInner uint64 = ^(FileAMask | FileHMask)
	verticalInner   uint64 = ^(Rank1Mask | Rank8Mask)
	diagonalInner          = horizontalInner & verticalInner
)

// BorderRing is the outer ring of the board.
const BorderRing = FileAMask | FileHMask | Rank1Mask | Rank8Mask

type direction struct {
	shift int
	mask  uint64 // cells a one-step shift may land on without wrapping
}

var directions = [8]direction{
	{8, ^Rank1Mask},                // up
	{7, ^(Rank1Mask | FileHMask)},  // up-left
	{-1, ^FileHMask},               // left
	{-9, ^(Rank8Mask | FileHMask)}, // down-left
	{-8, ^Rank8Mask},               // down
	{-7, ^(Rank8Mask | FileAMask)}, // down-right
	{1, ^FileAMask},                // right
	{9, ^(Rank1Mask | FileAMask)},  // up-right
}

func (d direction) step(b uint64) uint64 {
	if d.shift > 0 {
		return (b << uint(d.shift)) & d.mask
	}
	return (b >> uint(-d.shift)) & d.mask
}

func PopCount(b uint64) int {
	return bits.OnesCount64(b)
}

func FirstOne(b uint64) int {
	return bits.TrailingZeros64(b)
}

// Squares lists the set bits of b in increasing order.
func Squares(b uint64) []int {
	var result = make([]int, 0, PopCount(b))
	for x := b; x != 0; x &= x - 1 {
		result = append(result, FirstOne(x))
	}
	return result
}

func BitboardString(b uint64) string {
	var s = ""
	for x := b; x != 0; x &= x - 1 {
		sq := FirstOne(x)
		if s != "" {
			s += ","
		}
		s += SquareName(sq)
	}
	return "(" + s + ")"
}

func shiftFill(own, inner uint64, shift int) uint64 {
	var run uint64
	if shift > 0 {
		var s = uint(shift)
		run = inner & (own << s)
		run |= inner & (run << s)
		run |= inner & (run << s)
		run |= inner & (run << s)
		run |= inner & (run << s)
		run |= inner & (run << s)
		return run << s
	}
	var s = uint(-shift)
	run = inner & (own >> s)
	run |= inner & (run >> s)
	run |= inner & (run >> s)
	run |= inner & (run >> s)
	run |= inner & (run >> s)
	run |= inner & (run >> s)
	return run >> s
}

// ReversibleArea returns the legal-move mask of side. It does not look at
// anything but its arguments.
func ReversibleArea(side Color, black, white uint64) uint64 {
	var own, opp = black, white
	if side == White {
		own, opp = white, black
	}
	var empty = ^(black | white)
	var horizontal = opp & horizontalInner
	var vertical = opp & verticalInner
	var diagonal = opp & diagonalInner

	var result = shiftFill(own, horizontal, 1) |
		shiftFill(own, horizontal, -1) |
		shiftFill(own, vertical, 8) |
		shiftFill(own, vertical, -8) |
		shiftFill(own, diagonal, 7) |
		shiftFill(own, diagonal, -7) |
		shiftFill(own, diagonal, 9) |
		shiftFill(own, diagonal, -9)
	return result & empty
}

// Flips returns the opponent disks bracketed by a disk of own placed on sq.
// The square itself is not checked for emptiness.
func Flips(own, opp uint64, sq int) uint64 {
	var put = SquareMask(sq)
	var result uint64
	for _, d := range directions {
		var run uint64
		var cur = d.step(put)
		for cur&opp != 0 {
			run |= cur
			cur = d.step(cur)
		}
		if cur&own != 0 {
			result |= run
		}
	}
	return result
}

func CountDisks(black, white uint64) (nBlack, nWhite int) {
	return PopCount(black), PopCount(white)
}

func TurnPlayable(side Color, black, white uint64) bool {
	return ReversibleArea(side, black, white) != 0
}
