package common

import (
	"fmt"
	"strings"
)

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// SquareNone marks the absence of a move: a forced pass or a leaf of the search.
const SquareNone = -1

const (
	SquareA1 = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
	SquareA3
	SquareB3
	SquareC3
	SquareD3
	SquareE3
	SquareF3
	SquareG3
	SquareH3
	SquareA4
	SquareB4
	SquareC4
	SquareD4
	SquareE4
	SquareF4
	SquareG4
	SquareH4
	SquareA5
	SquareB5
	SquareC5
	SquareD5
	SquareE5
	SquareF5
	SquareG5
	SquareH5
	SquareA6
	SquareB6
	SquareC6
	SquareD6
	SquareE6
	SquareF6
	SquareG6
	SquareH6
	SquareA7
	SquareB7
	SquareC7
	SquareD7
	SquareE7
	SquareF7
	SquareG7
	SquareH7
	SquareA8
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8
)

// File is the column of a square.
func File(sq int) int {
	return sq & 7
}

// Rank is the row of a square.
func Rank(sq int) int {
	return sq >> 3
}

func MakeSquare(file, rank int) int {
	return (rank << 3) | file
}

func SquareMask(sq int) uint64 {
	return uint64(1) << uint(sq)
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	if sq == SquareNone {
		return "pass"
	}
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}

func ParseSquare(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "pass" || s == "-" {
		return SquareNone, nil
	}
	if len(s) != 2 {
		return SquareNone, fmt.Errorf("bad square %q", s)
	}
	var file = strings.IndexByte(fileNames, s[0])
	var rank = strings.IndexByte(rankNames, s[1])
	if file < 0 || rank < 0 {
		return SquareNone, fmt.Errorf("bad square %q", s)
	}
	return MakeSquare(file, rank), nil
}
