package ai

import (
	"sync"

	"othello/internal/rules"
)

// zobristTable holds one random key per (square, colour) plus the side key.
// Keys come from a fixed seed so hashes are stable between runs.
type zobristTable struct {
	size  int
	cells []uint64
	side  uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[int]*zobristTable
}

var zobristTables = &zobristStore{tables: make(map[int]*zobristTable)}

func getZobrist(size int) *zobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[size]; ok {
		return table
	}
	rng := splitmix64{state: uint64(0x9e3779b97f4a7c15) ^ uint64(size)}
	table := &zobristTable{size: size, cells: make([]uint64, size*size*2)}
	for i := range table.cells {
		table.cells[i] = rng.next()
	}
	table.side = rng.next()
	zobristTables.tables[size] = table
	return table
}

func (z *zobristTable) hash(b rules.Board, toMove rules.Piece) uint64 {
	var h uint64
	b.Cells(func(p rules.Point, c rules.Cell) {
		if owner, ok := c.Piece(); ok {
			h ^= z.cells[(p.Y*z.size+p.X)*2+int(owner)]
		}
	})
	if toMove == rules.White {
		h ^= z.side
	}
	return h
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
