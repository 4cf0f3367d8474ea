package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame

	// Zero value is usable
	if f.Has(ActionDrop) {
		t.Error("empty frame should not report any action")
	}

	f.Set(ActionDrop)
	f.Set(ActionLeft)
	if !f.Has(ActionDrop) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRotate) {
		t.Error("unset action reported by Has")
	}

	f.Clear()
	if f.Has(ActionDrop) || f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionRotate, "Rotate"},
		{ActionSwap, "Swap"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}
