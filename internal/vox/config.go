package vox

// Chunk geometry. HalfExtent is derived from ChunkSize so the box
// intersector and the voxel grid can never disagree on the cube size.
const (
	ChunkSize  = 32
	HalfExtent = float32(ChunkSize) / 2
)

// Traversal limits.
const (
	// MaxMarchIters caps the outer sample/skip loop. Reaching the cap is
	// not an error; the result is reported as exhausted.
	MaxMarchIters = 24
	// FarFieldCutoff: a distance-field sample above this many voxels
	// terminates the march early as open sky, skipping the DDA entirely.
	FarFieldCutoff = 5.0
)

// Per-axis shading factors for the last-crossed face.
const (
	ShadeX = 0.5
	ShadeY = 1.0
	ShadeZ = 0.75
)

// entryNudge pushes the entry point slightly into the box before the
// grid walk starts, so a point sitting exactly on a max face doesn't
// floor to an out-of-range voxel.
const entryNudge = 1e-4
