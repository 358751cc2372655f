package stagekit

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition animates up to 4 float64 channels of a caller-held Transform
// toward target values, typically to blend an event-triggered override in
// or out instead of snapping. Create one via the convenience constructors
// (TransitionPosition, TransitionScale, TransitionAngle,
// TransitionOpacity) and call Update(dt) each frame.
//
// There is no global transition manager — callers drive Update themselves
// and read the mutated Transform when composing the next frame.
type Transition struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all channel tweens by dt seconds and writes the eased
// values into the target fields. Once every channel finishes, Done is set
// and further calls are no-ops.
func (g *Transition) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TransitionPosition creates a Transition that eases t.Position to the
// given target over duration seconds.
func TransitionPosition(t *Transform, to Vec2, duration float32, fn ease.TweenFunc) *Transition {
	g := &Transition{count: 2}
	g.tweens[0] = gween.New(float32(t.Position.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(t.Position.Y), float32(to.Y), duration, fn)
	g.fields[0] = &t.Position.X
	g.fields[1] = &t.Position.Y
	return g
}

// TransitionScale creates a Transition that eases t.Scale to the given
// target over duration seconds.
func TransitionScale(t *Transform, to Vec2, duration float32, fn ease.TweenFunc) *Transition {
	g := &Transition{count: 2}
	g.tweens[0] = gween.New(float32(t.Scale.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(t.Scale.Y), float32(to.Y), duration, fn)
	g.fields[0] = &t.Scale.X
	g.fields[1] = &t.Scale.Y
	return g
}

// TransitionAngle creates a Transition that eases t.Angle (degrees) to
// the target over duration seconds.
func TransitionAngle(t *Transform, to float64, duration float32, fn ease.TweenFunc) *Transition {
	g := &Transition{count: 1}
	g.tweens[0] = gween.New(float32(t.Angle), float32(to), duration, fn)
	g.fields[0] = &t.Angle
	return g
}

// TransitionOpacity creates a Transition that eases t.Opacity to the
// target over duration seconds. The target is not clamped; pair with the
// fade behavior's evaluation-time clamp if needed.
func TransitionOpacity(t *Transform, to float64, duration float32, fn ease.TweenFunc) *Transition {
	g := &Transition{count: 1}
	g.tweens[0] = gween.New(float32(t.Opacity), float32(to), duration, fn)
	g.fields[0] = &t.Opacity
	return g
}
