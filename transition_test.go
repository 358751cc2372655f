package stagekit

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTransitionPositionReachesTarget(t *testing.T) {
	tr := Transform{Position: Vec2{0, 0}, Scale: Vec2{1, 1}, Opacity: 1}
	g := TransitionPosition(&tr, Vec2{100, 50}, 1, ease.Linear)

	g.Update(0.5)
	if g.Done {
		t.Fatal("transition finished early")
	}
	assertNear(t, "midway x", tr.Position.X, 50)
	assertNear(t, "midway y", tr.Position.Y, 25)

	g.Update(0.5)
	if !g.Done {
		t.Fatal("transition should be done")
	}
	assertNear(t, "final x", tr.Position.X, 100)
	assertNear(t, "final y", tr.Position.Y, 50)
}

func TestTransitionOpacity(t *testing.T) {
	tr := Transform{Scale: Vec2{1, 1}, Opacity: 1}
	g := TransitionOpacity(&tr, 0, 2, ease.Linear)
	g.Update(1)
	assertNear(t, "half faded", tr.Opacity, 0.5)
}

func TestTransitionUpdateAfterDoneIsNoOp(t *testing.T) {
	tr := Transform{Scale: Vec2{1, 1}}
	g := TransitionScale(&tr, Vec2{2, 2}, 0.5, ease.Linear)
	g.Update(1)
	if !g.Done {
		t.Fatal("expected done")
	}
	tr.Scale = Vec2{9, 9}
	g.Update(1)
	assertVec2(t, "no writes after done", tr.Scale, Vec2{9, 9})
}

func TestTransitionAngle(t *testing.T) {
	tr := Transform{Scale: Vec2{1, 1}, Angle: 0}
	g := TransitionAngle(&tr, 90, 1, ease.Linear)
	g.Update(0.25)
	assertNear(t, "quarter way", tr.Angle, 22.5)
}
