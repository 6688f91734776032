package core

import "testing"

func TestInputFramePressImpliesHold(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionFire)

	if !f.IsPressed(ActionFire) {
		t.Error("IsPressed(Fire) should be true after Press")
	}
	if !f.IsDown(ActionFire) {
		t.Error("IsDown(Fire) should be true after Press")
	}
	if f.IsPressed(ActionLeft) || f.IsDown(ActionLeft) {
		t.Error("Left should not be active")
	}
}

func TestInputFrameHoldIsNotPress(t *testing.T) {
	f := NewInputFrame()
	f.Hold(ActionLeft)

	if !f.IsDown(ActionLeft) {
		t.Error("IsDown(Left) should be true after Hold")
	}
	if f.IsPressed(ActionLeft) {
		t.Error("IsPressed(Left) should be false after Hold")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionConfirm)
	f.Hold(ActionRight)

	clone := f.Clone()
	f.Clear()

	if f.IsDown(ActionRight) || f.IsPressed(ActionConfirm) {
		t.Error("Clear should reset all actions")
	}
	if !clone.IsDown(ActionRight) || !clone.IsPressed(ActionConfirm) {
		t.Error("Clone should be independent of the original")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.IsDown(ActionFire) || f.IsPressed(ActionFire) {
		t.Error("zero frame should report nothing")
	}
	f.Press(ActionFire)
	if !f.IsPressed(ActionFire) {
		t.Error("Press on zero frame should allocate maps")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionFire, "Fire"},
		{ActionConfirm, "Confirm"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
