package ai

type ttFlag uint8

const (
	exactScore ttFlag = iota
	lowerBound
	upperBound
)

type ttEntry struct {
	score int
	depth int
	flag  ttFlag
}

// transpositionTable caches search results by zobrist key. Each root move
// gets its own table, so it is never shared between goroutines.
type transpositionTable struct {
	table map[uint64]ttEntry
}

func newTranspositionTable() *transpositionTable {
	return &transpositionTable{table: make(map[uint64]ttEntry)}
}

func (tt *transpositionTable) get(key uint64) (ttEntry, bool) {
	e, ok := tt.table[key]
	return e, ok
}

func (tt *transpositionTable) put(key uint64, e ttEntry) {
	if old, ok := tt.table[key]; ok && old.depth > e.depth {
		return
	}
	tt.table[key] = e
}

func (tt *transpositionTable) len() int {
	return len(tt.table)
}
