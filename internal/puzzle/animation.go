package puzzle

import "github.com/vovakirdan/tui-slide/internal/core"

// Animation slides one tile from its cell into the empty slot.
// Distances are in configured pixels; the swap is committed by the engine
// once Advance reports completion.
type Animation struct {
	active   bool
	progress float64 // Distance travelled, 0 → tileSize
	speed    float64 // Distance per tick
	tileSize float64
	move     Move
}

// NewAnimation creates an idle animation for the given tile size and speed.
func NewAnimation(tileSize, speed float64) Animation {
	return Animation{tileSize: tileSize, speed: speed}
}

// Start begins sliding the tile of m.
func (a *Animation) Start(m Move) {
	a.active = true
	a.progress = 0
	a.move = m
}

// Advance moves the animation one tick forward.
// It returns true on the tick the slide completes, after which the
// animation is idle again.
func (a *Animation) Advance() bool {
	if !a.active {
		return false
	}
	if a.progress >= a.tileSize {
		a.active = false
		a.progress = 0
		return true
	}
	a.progress += a.speed
	return false
}

// Cancel drops an in-flight slide without completing it.
func (a *Animation) Cancel() {
	a.active = false
	a.progress = 0
}

// InProgress reports whether a tile is sliding.
func (a Animation) InProgress() bool {
	return a.active
}

// Move returns the move being animated.
func (a Animation) Move() Move {
	return a.move
}

// Fraction returns progress as 0.0 → 1.0.
func (a Animation) Fraction() float64 {
	if !a.active || a.tileSize <= 0 {
		return 0
	}
	return core.ClampF(a.progress/a.tileSize, 0, 1)
}

// easeOutQuad provides smooth deceleration for animation.
func easeOutQuad(t float64) float64 {
	return t * (2 - t)
}
