package instrument

// Note is one sounding event. ID is a scale-step index (see osc.Pitch),
// not a stable identity: the sequencer reuses a fixed default for every
// triggered note.
//
// On and Off are timestamps on the engine's global clock. The note is held
// while On > Off; setting Off at or past On releases it. Active marks pool
// membership; the engine prunes inactive notes after each render pass.
//
// Instrument is a non-owning back-reference. A nil instrument renders as
// silence and never finishes.
type Note struct {
	ID     int
	On     float64
	Off    float64
	Active bool

	Instrument Instrument
}
