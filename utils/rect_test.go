package utils

import "testing"

func TestRectIntersect(t *testing.T) {
	a := Rect{0, 0, 100, 50}
	b := Rect{50, 25, 100, 100}
	if got := a.Intersect(b); got != (Rect{50, 25, 50, 25}) {
		t.Fatalf("unexpected intersection %s", got)
	}
	c := Rect{200, 200, 10, 10}
	if a.Intersects(c) {
		t.Fatal("disjoint rectangles should not intersect")
	}
	if !a.Intersect(c).Empty() {
		t.Fatal("expected empty intersection")
	}
	// a zero sized box inside a intersects it
	if !(Rect{10, 10, 0, 0}).Intersects(a) {
		t.Fatal("empty box inside should intersect")
	}
	// an empty clip hides everything, even at its origin
	if (Rect{0, 0, 0, 0}).Intersects(Rect{0, 0, 0, 0}) || a.Intersects(Rect{0, 0, 0, 0}) {
		t.Fatal("empty clip should not intersect")
	}
}
