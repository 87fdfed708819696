package common

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

type Color int8

const (
	Black Color = iota
	White
)

func (c Color) Opposite() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

func ParseColor(s string) (Color, error) {
	switch strings.ToLower(s) {
	case "black", "b", "x":
		return Black, nil
	case "white", "w", "o":
		return White, nil
	}
	return Black, fmt.Errorf("bad color %q", s)
}

const (
	InitialBlack uint64 = 0x0000000810000000
	InitialWhite uint64 = 0x0000001008000000
)

var InitialPosition = Position{Black: InitialBlack, White: InitialWhite}

// Position is the pair of occupancy masks. It is copied by value, the search
// never shares one between nodes.
type Position struct {
	Black uint64
	White uint64
}

func (p Position) Pieces(side Color) (own, opp uint64) {
	if side == White {
		return p.White, p.Black
	}
	return p.Black, p.White
}

func (p Position) Empty() uint64 {
	return ^(p.Black | p.White)
}

func (p Position) ReversibleArea(side Color) uint64 {
	return ReversibleArea(side, p.Black, p.White)
}

func (p Position) IsReversible(side Color, sq int) bool {
	return p.ReversibleArea(side)&SquareMask(sq) != 0
}

func (p Position) TurnPlayable(side Color) bool {
	return p.ReversibleArea(side) != 0
}

func (p Position) CountDisks() (nBlack, nWhite int) {
	return CountDisks(p.Black, p.White)
}

// IsTerminal reports whether neither side can move. A full board is terminal
// as well.
func (p Position) IsTerminal() bool {
	return p.Empty() == 0 ||
		(!p.TurnPlayable(Black) && !p.TurnPlayable(White))
}

// MakeMove places a disk of side on sq and flips every bracketed run. Legality
// is the caller's business: an occupied or unreachable square yields a
// position that cannot arise in play.
func (p Position) MakeMove(side Color, sq int) Position {
	var own, opp = p.Pieces(side)
	var flips = Flips(own, opp, sq)
	own ^= SquareMask(sq) | flips
	opp ^= flips
	if side == White {
		return Position{Black: opp, White: own}
	}
	return Position{Black: own, White: opp}
}

// ParsePosition reads 64 cells in square order a1..h8. 'X'/'B'/'*' is black,
// 'O'/'W' is white, '-'/'.' is empty. Whitespace and '/' are ignored.
func ParsePosition(s string) (Position, error) {
	var result Position
	var sq = 0
	for _, ch := range s {
		if unicode.IsSpace(ch) || ch == '/' {
			continue
		}
		if sq >= 64 {
			return Position{}, errors.New("position too long")
		}
		switch unicode.ToUpper(ch) {
		case 'X', 'B', '*':
			result.Black |= SquareMask(sq)
		case 'O', 'W':
			result.White |= SquareMask(sq)
		case '-', '.':
		default:
			return Position{}, fmt.Errorf("bad cell %q", ch)
		}
		sq++
	}
	if sq != 64 {
		return Position{}, fmt.Errorf("position has %v cells", sq)
	}
	return result, nil
}

func (p Position) String() string {
	var sb strings.Builder
	for sq := 0; sq < 64; sq++ {
		var mask = SquareMask(sq)
		switch {
		case p.Black&mask != 0:
			sb.WriteByte('X')
		case p.White&mask != 0:
			sb.WriteByte('O')
		default:
			sb.WriteByte('-')
		}
		if File(sq) == FileH && sq != SquareH8 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}
