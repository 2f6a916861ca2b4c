package breakout

import "testing"

func TestBrickField_ClassicLayout(t *testing.T) {
	cfg := ConfigFor(VariantClassic)
	bf := NewBrickField(cfg)
	if bf.Len() != 48 || bf.Total() != 48 {
		t.Fatalf("expected 6x8=48 bricks, got len=%d total=%d", bf.Len(), bf.Total())
	}
	first, _ := bf.Brick(0)
	if first.Rect != (Rect{X: 35, Y: 50, W: 60, H: 20}) {
		t.Fatalf("unexpected first brick %+v", first.Rect)
	}
	// slot = row*cols + col
	b, ok := bf.Brick(1*8 + 3)
	if !ok || b.Row != 1 || b.Col != 3 {
		t.Fatalf("slot 11 should be row 1 col 3, got %+v", b)
	}
	if b.X != 3*70+35 || b.Y != 1*25+50 {
		t.Fatalf("slot 11 at wrong position (%v,%v)", b.X, b.Y)
	}
	if b.Color != cfg.BrickColors[1] {
		t.Fatalf("row 1 should use colour 1, got %v", b.Color)
	}
}

func TestBrickField_AssistedLayout(t *testing.T) {
	bf := NewBrickField(ConfigFor(VariantAssisted))
	if bf.Len() != 56 {
		t.Fatalf("expected 7x8=56 bricks, got %d", bf.Len())
	}
}

func TestBrickField_RejectsDuplicateRect(t *testing.T) {
	bf := &BrickField{}
	r := Rect{X: 1, Y: 2, W: 3, H: 4}
	if _, ok := bf.Add(Brick{Rect: r}); !ok {
		t.Fatal("first add should succeed")
	}
	if _, ok := bf.Add(Brick{Rect: r}); ok {
		t.Fatal("duplicate rect should be rejected")
	}
	if bf.Len() != 1 {
		t.Fatalf("expected 1 brick, got %d", bf.Len())
	}
}

func TestBrickField_RemoveIsIdempotent(t *testing.T) {
	bf := NewBrickField(ConfigFor(VariantClassic))
	if !bf.Remove(5) {
		t.Fatal("first remove should report true")
	}
	if bf.Remove(5) {
		t.Fatal("second remove of the same slot should report false")
	}
	if bf.Remove(-1) || bf.Remove(1000) {
		t.Fatal("out-of-range slots should not be removable")
	}
	if bf.Len() != 47 || bf.Total() != 48 {
		t.Fatalf("expected len=47 total=48, got len=%d total=%d", bf.Len(), bf.Total())
	}
	if bf.Alive(5) {
		t.Fatal("slot 5 should be destroyed")
	}
	// Other slots keep their indices.
	b, _ := bf.Brick(6)
	if b.Col != 6 || !bf.Alive(6) {
		t.Fatalf("slot 6 should be untouched, got %+v alive=%v", b, bf.Alive(6))
	}
}

func TestBrickField_LiveSkipsDestroyedInSlotOrder(t *testing.T) {
	bf := NewBrickField(ConfigFor(VariantClassic))
	bf.Remove(0)
	bf.Remove(2)
	var slots []int
	for slot := range bf.Live() {
		slots = append(slots, slot)
		if len(slots) == 3 {
			break
		}
	}
	want := []int{1, 3, 4}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("expected live slots %v, got %v", want, slots)
		}
	}
}

func TestBrickField_FirstIntersectingPicksLowestSlot(t *testing.T) {
	bf := &BrickField{}
	bf.Add(Brick{Rect: Rect{X: 0, Y: 0, W: 50, H: 20}})
	bf.Add(Brick{Rect: Rect{X: 30, Y: 0, W: 50, H: 20}})
	probe := Rect{X: 35, Y: 5, W: 10, H: 10}
	slot, ok := bf.FirstIntersecting(probe)
	if !ok || slot != 0 {
		t.Fatalf("expected slot 0, got %d ok=%v", slot, ok)
	}
	bf.Remove(0)
	slot, ok = bf.FirstIntersecting(probe)
	if !ok || slot != 1 {
		t.Fatalf("expected slot 1 after removing 0, got %d ok=%v", slot, ok)
	}
	bf.Remove(1)
	if _, ok := bf.FirstIntersecting(probe); ok {
		t.Fatal("empty field should not intersect")
	}
	if !bf.Empty() {
		t.Fatal("field should be empty")
	}
}
