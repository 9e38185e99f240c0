package core

// InputState is the input sampled for one simulation tick.
//
// The flipper fields are level-triggered: they report whether the key is
// held right now, and the physics reads them every tick without consuming
// them. The remaining fields are edge-triggered one-shot commands; the
// platform sets them for a single tick and clears them afterwards.
type InputState struct {
	LeftPressed  bool // left flipper key held
	RightPressed bool // right flipper key held

	Launch  bool // fire the plunger (launch lane)
	Start   bool // start a new game / restart after game over
	Pause   bool // toggle pause
	Restart bool // restart after game over
}

// ClearEdges resets the one-shot commands, keeping the held flipper flags.
func (in *InputState) ClearEdges() {
	in.Launch = false
	in.Start = false
	in.Pause = false
	in.Restart = false
}

// Clear resets the whole input state.
func (in *InputState) Clear() {
	*in = InputState{}
}
