package cursor

// Point is one cursor position on the screen plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PathBuffer is a fixed-capacity FIFO of recent cursor positions. Once
// full, each push evicts the oldest point.
type PathBuffer struct {
	data []Point
	pos  int
	full bool
}

// NewPathBuffer creates a PathBuffer with the given capacity.
func NewPathBuffer(capacity int) *PathBuffer {
	return &PathBuffer{data: make([]Point, capacity)}
}

// Push appends a point, evicting the oldest one if the buffer is full.
func (b *PathBuffer) Push(p Point) {
	b.data[b.pos] = p
	b.pos++
	if b.pos >= len(b.data) {
		b.pos = 0
		b.full = true
	}
}

// Len returns the number of retained points.
func (b *PathBuffer) Len() int {
	if b.full {
		return len(b.data)
	}
	return b.pos
}

// Points returns the retained points oldest-first. The slice is a copy and
// safe to hold across further pushes.
func (b *PathBuffer) Points() []Point {
	out := make([]Point, b.Len())
	if b.full {
		copy(out, b.data[b.pos:])
		copy(out[len(b.data)-b.pos:], b.data[:b.pos])
	} else {
		copy(out, b.data[:b.pos])
	}
	return out
}

// Reset empties the buffer without reallocating.
func (b *PathBuffer) Reset() {
	b.pos = 0
	b.full = false
}
