package module

// HeightProvider reports the height of the block the current call executes in.
type HeightProvider interface {
	CurrentHeight() (uint64, error)
}
