package coinquest

import (
	"math"

	"github.com/theocoin/coinquest/internal/config"
	"github.com/theocoin/coinquest/internal/core"
)

// maxStepDistance bounds how far the player moves per physics sub-step so
// fast falls at low tick rates cannot pass through a platform.
const maxStepDistance = 8.0

// contactEpsilon keeps boxes that merely touch (up to rounding) from
// counting as overlapping.
const contactEpsilon = 1e-6

// overlaps is Box.Intersects with a rounding tolerance.
func overlaps(a, b core.Box) bool {
	return a.X < b.Right()-contactEpsilon && b.X < a.Right()-contactEpsilon &&
		a.Y < b.Bottom()-contactEpsilon && b.Y < a.Bottom()-contactEpsilon
}

// body is an arcade physics body: an axis-aligned box with a velocity.
type body struct {
	box         core.Box
	vx, vy      float64
	blockedDown bool // Standing on a platform or the world floor
}

// world holds the static geometry the player collides with.
type world struct {
	width, height float64
	platforms     []core.Box
	physics       config.QuestPhysics
}

// step advances b by dt seconds: gravity, movement, and collision with
// platforms and world bounds. Horizontal and vertical motion are resolved
// separately so the player can slide along surfaces.
func (w *world) step(b *body, dt float64) {
	b.vy += w.physics.Gravity * dt

	dist := math.Max(math.Abs(b.vx), math.Abs(b.vy)) * dt
	n := max(1, int(math.Ceil(dist/maxStepDistance)))
	sub := dt / float64(n)

	b.blockedDown = false
	for i := 0; i < n; i++ {
		w.moveX(b, b.vx*sub)
		w.moveY(b, b.vy*sub)
	}
}

func (w *world) moveX(b *body, dx float64) {
	if dx == 0 {
		return
	}
	b.box.X += dx

	for _, p := range w.platforms {
		if !overlaps(b.box, p) {
			continue
		}
		if dx > 0 {
			b.box.X = p.X - b.box.W
		} else {
			b.box.X = p.Right()
		}
	}

	if b.box.X < 0 {
		b.box.X = 0
	}
	if b.box.Right() > w.width {
		b.box.X = w.width - b.box.W
	}
}

func (w *world) moveY(b *body, dy float64) {
	if dy == 0 {
		return
	}
	b.box.Y += dy

	for _, p := range w.platforms {
		if !overlaps(b.box, p) {
			continue
		}
		if dy > 0 {
			b.box.Y = p.Y - b.box.H
			w.land(b)
		} else {
			b.box.Y = p.Bottom()
			w.bump(b)
		}
	}

	if b.box.Y < 0 {
		b.box.Y = 0
		w.bump(b)
	}
	if b.box.Bottom() > w.height {
		b.box.Y = w.height - b.box.H
		w.land(b)
	}
}

// land stops a fall, keeping a small bounce unless it is below the settle speed.
func (w *world) land(b *body) {
	b.blockedDown = true
	rebound := b.vy * w.physics.Bounce
	if rebound < w.physics.SettleSpeed {
		b.vy = 0
		return
	}
	b.vy = -rebound
}

// bump reflects an upward hit off a ceiling.
func (w *world) bump(b *body) {
	if b.vy < 0 {
		b.vy = -b.vy * w.physics.Bounce
	}
}
