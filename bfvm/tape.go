package bfvm

// Tape models memory as two slices growing away from cell 0: Right holds
// cells at indexes >= 0, Left holds cells at indexes < 0, with Left[i]
// being the cell at index -(i+1). Cells are bytes, so arithmetic wraps
// modulo 256 natively.
type Tape struct {
	Right []byte
	Left  []byte
}

func NewTape() *Tape {
	return &Tape{
		Right: make([]byte, 1, 8),
	}
}

// Reserve extends the tape so the cell at index exists.
func (t *Tape) Reserve(index int) {
	if index >= 0 {
		if index >= len(t.Right) {
			t.Right = grow(t.Right, index+1)
		}
		return
	}
	if j := -index - 1; j >= len(t.Left) {
		t.Left = grow(t.Left, j+1)
	}
}

func (t *Tape) Cell(index int) *byte {
	t.Reserve(index)
	if index >= 0 {
		return &t.Right[index]
	}
	return &t.Left[-index-1]
}

func (t *Tape) Get(index int) byte {
	return *t.Cell(index)
}

func (t *Tape) Set(index int, value byte) {
	*t.Cell(index) = value
}

// Len is the number of allocated cells.
func (t *Tape) Len() int {
	return len(t.Right) + len(t.Left)
}

func grow(s []byte, n int) []byte {
	if n <= cap(s) {
		return s[:n]
	}
	newCap := max(cap(s)*2, n, 8)
	newSlice := make([]byte, n, newCap)
	copy(newSlice, s)
	return newSlice
}
