package core

// RuntimeConfig contains the surface parameters passed to an interactive
// viewer when it starts.
type RuntimeConfig struct {
	ScreenW  int // Surface width (pixels for windows, cells for terminals)
	ScreenH  int // Surface height
	TickRate int // Frames per second of the playback loop
}
