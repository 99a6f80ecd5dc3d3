package game

// body is a double-ended queue of blocks backed by a ring buffer. Index 0
// is the head. Recycling the tail into a new head never allocates.
type body struct {
	buf   []Block
	start int
	n     int
}

func newBody(capacity int) *body {
	if capacity < 4 {
		capacity = 4
	}
	return &body{buf: make([]Block, capacity)}
}

func (b *body) len() int { return b.n }

func (b *body) at(i int) Block {
	return b.buf[(b.start+i)%len(b.buf)]
}

func (b *body) front() Block { return b.at(0) }

func (b *body) back() Block { return b.at(b.n - 1) }

func (b *body) pushFront(blk Block) {
	if b.n == len(b.buf) {
		b.grow()
	}
	b.start = (b.start - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.start] = blk
	b.n++
}

// popBack panics on an empty body, mirroring slice indexing.
func (b *body) popBack() Block {
	if b.n == 0 {
		panic("game: popBack on empty body")
	}
	blk := b.back()
	b.n--
	return blk
}

func (b *body) grow() {
	buf := make([]Block, len(b.buf)*2)
	for i := 0; i < b.n; i++ {
		buf[i] = b.at(i)
	}
	b.buf = buf
	b.start = 0
}

// slice copies the blocks head first.
func (b *body) slice() []Block {
	out := make([]Block, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}
