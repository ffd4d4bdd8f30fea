package puzzle

import "testing"

func TestAnimationLifecycle(t *testing.T) {
	a := NewAnimation(100, 20)
	if a.InProgress() {
		t.Fatal("new animation should be idle")
	}
	if a.Advance() {
		t.Fatal("Advance on an idle animation should not complete")
	}

	a.Start(Move{Direction: DirRight, Source: Cell{2, 2}, Target: Cell{2, 1}})

	ticks := 0
	for a.InProgress() {
		ticks++
		done := a.Advance()
		if done != !a.InProgress() {
			t.Fatalf("tick %d: Advance() = %v but InProgress() = %v", ticks, done, a.InProgress())
		}
		if ticks > 100 {
			t.Fatal("animation never finished")
		}
	}

	// 0 → 100 in steps of 20, then one tick that sees progress >= tile size.
	if ticks != 6 {
		t.Errorf("slide took %d ticks, expected 6", ticks)
	}
}

func TestAnimationFraction(t *testing.T) {
	a := NewAnimation(100, 30)
	a.Start(Move{Target: Cell{0, 1}})

	if a.Fraction() != 0 {
		t.Errorf("Fraction() at start = %f, expected 0", a.Fraction())
	}
	a.Advance()
	if a.Fraction() != 0.3 {
		t.Errorf("Fraction() after one tick = %f, expected 0.3", a.Fraction())
	}
	for i := 0; i < 3; i++ {
		a.Advance()
	}
	// progress 120 overshoots the tile and is clamped
	if a.Fraction() != 1 {
		t.Errorf("Fraction() should clamp at 1, got %f", a.Fraction())
	}
}

func TestAnimationCancel(t *testing.T) {
	a := NewAnimation(100, 10)
	a.Start(Move{Target: Cell{0, 1}})
	a.Advance()
	a.Cancel()

	if a.InProgress() {
		t.Error("Cancel should leave the animation idle")
	}
	if a.Fraction() != 0 {
		t.Errorf("Fraction() after Cancel = %f, expected 0", a.Fraction())
	}
}

func TestEaseOutQuad(t *testing.T) {
	if easeOutQuad(0) != 0 || easeOutQuad(1) != 1 {
		t.Error("easeOutQuad should map 0→0 and 1→1")
	}
	if easeOutQuad(0.5) <= 0.5 {
		t.Error("easeOutQuad should run ahead of linear at the midpoint")
	}
}
