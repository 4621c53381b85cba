package app

// State is the position of a Lifecycle in its init to shutdown sequence.
// A lifecycle only ever moves forward; no state is revisited.
type State int

//go:generate go tool stringer -type=State -trimprefix=State

const (
	StateUninitialized State = iota
	StateCreated
	StateBackendInitialized
	StateRunning
	StateClosed
)
