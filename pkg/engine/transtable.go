package engine

import (
	"encoding/gob"
	"io"

	. "github.com/ChizhovVadim/OthelloGo/pkg/common"
)

type TransKey struct {
	Black  uint64
	White  uint64
	Player Color
	Turn   Color
	Depth  int8
}

type transEntry struct {
	score int32
	move  int8
}

// transTable grows without bound: an entry is a pure function of its key, so
// nothing is ever replaced or evicted.
type transTable struct {
	entries map[TransKey]transEntry
}

func NewTransTable() TransTable {
	return &transTable{
		entries: make(map[TransKey]transEntry),
	}
}

func (tt *transTable) Len() int {
	return len(tt.entries)
}

func (tt *transTable) Clear() {
	tt.entries = make(map[TransKey]transEntry)
}

func (tt *transTable) Read(key TransKey) (score, move int, ok bool) {
	entry, ok := tt.entries[key]
	if !ok {
		return 0, SquareNone, false
	}
	return int(entry.score), int(entry.move), true
}

func (tt *transTable) Update(key TransKey, score, move int) {
	tt.entries[key] = transEntry{
		score: int32(score),
		move:  int8(move),
	}
}

type transRecord struct {
	Key   TransKey
	Score int32
	Move  int8
}

type transSnapshot struct {
	Records []transRecord
}

// Load merges a snapshot written by Save into the table.
func (tt *transTable) Load(r io.Reader) error {
	var snapshot transSnapshot
	if err := gob.NewDecoder(r).Decode(&snapshot); err != nil {
		return err
	}
	for _, rec := range snapshot.Records {
		tt.entries[rec.Key] = transEntry{score: rec.Score, move: rec.Move}
	}
	return nil
}

func (tt *transTable) Save(w io.Writer) error {
	var snapshot = transSnapshot{
		Records: make([]transRecord, 0, len(tt.entries)),
	}
	for key, entry := range tt.entries {
		snapshot.Records = append(snapshot.Records, transRecord{
			Key:   key,
			Score: entry.score,
			Move:  entry.move,
		})
	}
	return gob.NewEncoder(w).Encode(&snapshot)
}
