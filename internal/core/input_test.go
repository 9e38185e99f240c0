package core

import "testing"

func TestInputClearEdges(t *testing.T) {
	in := InputState{
		LeftPressed:  true,
		RightPressed: true,
		Launch:       true,
		Start:        true,
		Pause:        true,
		Restart:      true,
	}

	in.ClearEdges()

	if in.Launch || in.Start || in.Pause || in.Restart {
		t.Errorf("edge commands not cleared: %+v", in)
	}
	if !in.LeftPressed || !in.RightPressed {
		t.Errorf("held flipper flags must survive ClearEdges: %+v", in)
	}
}

func TestInputClear(t *testing.T) {
	in := InputState{LeftPressed: true, Launch: true}

	in.Clear()

	if in != (InputState{}) {
		t.Errorf("Clear left state: %+v", in)
	}
}
