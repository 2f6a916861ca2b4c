package breakout

import "iter"

// BrickField is an arena of bricks addressed by stable slot indices. Slots are
// handed out in insertion order and never reused; removing a brick only marks
// its slot destroyed, so indices held by callers stay valid for the round.
type BrickField struct {
	slots []Brick
	alive []bool
	live  int
}

// NewBrickField lays out rows×cols bricks row-major, so slot = row*cols + col.
func NewBrickField(cfg Config) *BrickField {
	bf := &BrickField{
		slots: make([]Brick, 0, cfg.BrickRows*cfg.BrickCols),
		alive: make([]bool, 0, cfg.BrickRows*cfg.BrickCols),
	}
	for row := 0; row < cfg.BrickRows; row++ {
		for col := 0; col < cfg.BrickCols; col++ {
			b := Brick{
				Rect: Rect{
					X: float64(col)*(cfg.BrickWidth+cfg.BrickGapX) + cfg.BrickOffsetX,
					Y: float64(row)*(cfg.BrickHeight+cfg.BrickGapY) + cfg.BrickOffsetY,
					W: cfg.BrickWidth,
					H: cfg.BrickHeight,
				},
				Row: row,
				Col: col,
			}
			if len(cfg.BrickColors) > 0 {
				b.Color = cfg.BrickColors[row%len(cfg.BrickColors)]
			}
			bf.Add(b)
		}
	}
	return bf
}

// Add appends a brick and returns its slot. A brick whose rectangle matches a
// live brick is rejected with ok=false.
func (bf *BrickField) Add(b Brick) (slot int, ok bool) {
	for i, other := range bf.slots {
		if bf.alive[i] && other.Rect == b.Rect {
			return -1, false
		}
	}
	bf.slots = append(bf.slots, b)
	bf.alive = append(bf.alive, true)
	bf.live++
	return len(bf.slots) - 1, true
}

// Remove destroys the brick in slot. It returns false if the slot is out of
// range or already destroyed.
func (bf *BrickField) Remove(slot int) bool {
	if !bf.Alive(slot) {
		return false
	}
	bf.alive[slot] = false
	bf.live--
	return true
}

// Alive reports whether slot holds a live brick.
func (bf *BrickField) Alive(slot int) bool {
	return slot >= 0 && slot < len(bf.alive) && bf.alive[slot]
}

// Brick returns the brick stored in slot, live or not.
func (bf *BrickField) Brick(slot int) (Brick, bool) {
	if slot < 0 || slot >= len(bf.slots) {
		return Brick{}, false
	}
	return bf.slots[slot], true
}

// Len is the number of live bricks.
func (bf *BrickField) Len() int { return bf.live }

// Total is the number of slots ever allocated.
func (bf *BrickField) Total() int { return len(bf.slots) }

// Empty reports whether every brick has been destroyed.
func (bf *BrickField) Empty() bool { return bf.live == 0 }

// Live yields live bricks in slot order.
func (bf *BrickField) Live() iter.Seq2[int, Brick] {
	return func(yield func(int, Brick) bool) {
		for i, b := range bf.slots {
			if !bf.alive[i] {
				continue
			}
			if !yield(i, b) {
				return
			}
		}
	}
}

// FirstIntersecting returns the lowest live slot whose brick overlaps r.
func (bf *BrickField) FirstIntersecting(r Rect) (int, bool) {
	for slot, b := range bf.Live() {
		if b.Intersects(r) {
			return slot, true
		}
	}
	return -1, false
}
