package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionConfirm) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionConfirm)
	f.Set(ActionLeft)
	if !f.Has(ActionConfirm) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionConfirm) {
		t.Error("Clear should remove actions")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestInputFramePointer(t *testing.T) {
	f := NewInputFrame()
	if _, ok := f.Pointer(); ok {
		t.Error("new frame should have no pointer")
	}

	f.SetPointer(3, 4)
	f.SetPointer(10, 7)
	p, ok := f.Pointer()
	if !ok || p != (Point{X: 10, Y: 7}) {
		t.Errorf("Pointer() = %v, %v; expected last move (10, 7)", p, ok)
	}

	clone := f.Clone()
	f.Clear()
	if _, ok := f.Pointer(); ok {
		t.Error("Clear should drop the pointer")
	}
	if p, ok := clone.Pointer(); !ok || p.X != 10 {
		t.Error("Clone should keep its own pointer")
	}
}

func TestActionString(t *testing.T) {
	if ActionRight.String() != "Right" {
		t.Errorf("ActionRight.String() = %q", ActionRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
