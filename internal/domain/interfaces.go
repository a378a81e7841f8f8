package domain

// Renderer is the display sink. It is called after every operation that is
// not silently absorbed.
type Renderer func(DisplayState)

// Editor owns an expression buffer and applies edit operations to it.
type Editor interface {
	AppendDigit(d byte)
	AppendDecimalPoint()
	AppendOperator(op byte)
	Clear()
	DeleteLast()
	ToggleSign()
	Evaluate() (float64, error)
	Apply(a Action) error
	Display() DisplayState

	Snapshot() Snapshot
	Restore(s Snapshot) error
}

// StateStore persists an editor snapshot between CLI runs.
type StateStore interface {
	SaveState(s Snapshot) error
	LoadState() (Snapshot, bool, error)
	ClearState() error
}
