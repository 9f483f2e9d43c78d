package engine

// ImpassabilityTable maps terrain graphics ids to "blocks non-aerial projectiles"
// Written at scenario load, read-only during simulation
type ImpassabilityTable struct {
	bits []uint64
	size int
}

// NewImpassabilityTable creates a table for terrain ids 0..size-1, all passable
func NewImpassabilityTable(size int) *ImpassabilityTable {
	if size < 0 {
		size = 0
	}
	return &ImpassabilityTable{
		bits: make([]uint64, (size+63)/64),
		size: size,
	}
}

// Size returns the number of terrain ids covered
func (t *ImpassabilityTable) Size() int {
	return t.size
}

// Reset marks every terrain id passable
func (t *ImpassabilityTable) Reset() {
	clear(t.bits)
}

// Set records whether terrainID blocks projectiles
// Returns false for ids outside the table
func (t *ImpassabilityTable) Set(terrainID int, blocked bool) bool {
	if terrainID < 0 || terrainID >= t.size {
		return false
	}
	word, bit := terrainID>>6, uint(terrainID&63)
	if blocked {
		t.bits[word] |= 1 << bit
	} else {
		t.bits[word] &^= 1 << bit
	}
	return true
}

// IsImpassable reports whether terrainID blocks projectiles; unknown ids are passable
func (t *ImpassabilityTable) IsImpassable(terrainID int) bool {
	if terrainID < 0 || terrainID >= t.size {
		return false
	}
	return t.bits[terrainID>>6]&(1<<uint(terrainID&63)) != 0
}
