package app

// State is the outcome of a load. It is one of Loading, Rendered or Errored.
type State interface {
	isState()
}

// Loading is the initial state, before the load sequence completes.
type Loading struct{}

// Rendered holds the classified repositories after successful load.
type Rendered struct {
	Model RenderModel
}

// Errored holds the message shown to the user after failed load.
type Errored struct {
	Message string
}

func (Loading) isState()  {}
func (Rendered) isState() {}
func (Errored) isState()  {}

// IsTerminal tells if load sequence has finished.
func IsTerminal(s State) bool {
	switch s.(type) {
	case Rendered, Errored:
		return true
	default:
		return false
	}
}
