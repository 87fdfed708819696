package common

// HistoryCapacity bounds the undo log. A game has at most 60 moves, so the
// bound only matters for boards that are reused across games.
const HistoryCapacity = 128

// Board is the authoritative position of a game together with its undo and
// redo logs. The bottom entry of the undo log is the position the board was
// created with and is never popped.
type Board struct {
	position Position
	log      []Position
	redoLog  []Position
}

// BoardState is a copy of everything a Board holds.
type BoardState struct {
	Position Position
	Log      []Position
	Redo     []Position
}

func NewBoard() *Board {
	return NewBoardFrom(InitialPosition)
}

func NewBoardFrom(p Position) *Board {
	return &Board{
		position: p,
		log:      []Position{p},
	}
}

// Position is the current position (return_board).
func (b *Board) Position() Position {
	return b.position
}

// PlayerBoard returns the masks of side and of its opponent.
func (b *Board) PlayerBoard(side Color) (own, opp uint64) {
	return b.position.Pieces(side)
}

func (b *Board) ReversibleArea(side Color) uint64 {
	return b.position.ReversibleArea(side)
}

func (b *Board) IsReversible(side Color, sq int) bool {
	return b.position.IsReversible(side, sq)
}

func (b *Board) TurnPlayable(side Color) bool {
	return b.position.TurnPlayable(side)
}

func (b *Board) CountDisks() (nBlack, nWhite int) {
	return b.position.CountDisks()
}

// ApplyMove plays sq for side on p. With commit the result replaces the
// current position, is pushed to the undo log and the redo log is dropped.
func (b *Board) ApplyMove(side Color, sq int, p Position, commit bool) Position {
	var child = p.MakeMove(side, sq)
	if commit {
		b.position = child
		b.push(child)
		b.redoLog = b.redoLog[:0]
	}
	return child
}

// Play commits sq for side on the current position.
func (b *Board) Play(side Color, sq int) Position {
	return b.ApplyMove(side, sq, b.position, true)
}

func (b *Board) push(p Position) {
	if len(b.log) >= HistoryCapacity {
		copy(b.log, b.log[1:])
		b.log = b.log[:len(b.log)-1]
	}
	b.log = append(b.log, p)
}

// Undo steps back two plies, one per side, so the side to move stays the
// same. It returns how many plies were actually taken back.
func (b *Board) Undo() int {
	var steps = 0
	for ; steps < 2 && len(b.log) > 1; steps++ {
		var last = b.log[len(b.log)-1]
		b.log = b.log[:len(b.log)-1]
		b.redoLog = append(b.redoLog, last)
	}
	b.position = b.log[len(b.log)-1]
	return steps
}

// Redo replays up to two plies taken back by Undo.
func (b *Board) Redo() int {
	var steps = 0
	for ; steps < 2 && len(b.redoLog) > 0; steps++ {
		var last = b.redoLog[len(b.redoLog)-1]
		b.redoLog = b.redoLog[:len(b.redoLog)-1]
		b.push(last)
	}
	b.position = b.log[len(b.log)-1]
	return steps
}

func (b *Board) HistoryLen() int {
	return len(b.log) - 1
}

func (b *Board) RedoLen() int {
	return len(b.redoLog)
}

func (b *Board) State() BoardState {
	return BoardState{
		Position: b.position,
		Log:      append([]Position(nil), b.log...),
		Redo:     append([]Position(nil), b.redoLog...),
	}
}

func (b *Board) LoadState(state BoardState) {
	b.position = state.Position
	b.log = append([]Position(nil), state.Log...)
	if len(b.log) == 0 {
		b.log = []Position{state.Position}
	}
	b.redoLog = append([]Position(nil), state.Redo...)
}
