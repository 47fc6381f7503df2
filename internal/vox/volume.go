package vox

import "github.com/go-gl/mathgl/mgl32"

// RGBA is a voxel color sample. Alpha of exactly 1 marks a fully opaque
// occupied voxel; alpha 0 marks empty space.
type RGBA struct {
	R, G, B, A float32
}

// MapPoint is an integer voxel coordinate inside one chunk's local grid,
// valid on [0, ChunkSize) per axis.
type MapPoint struct {
	X, Y, Z int
}

// ChunkCoord identifies a chunk tile within the atlas, valid on
// [0, Atlas.Tiles) per axis.
type ChunkCoord struct {
	X, Y, Z int
}

// Atlas holds the color/opacity volume and the co-registered distance
// field for every chunk within render distance, packed into one dense
// cube of edge 2*renderDistance*ChunkSize voxels (the cubelet). Both
// volumes are read-only while a frame is being rendered; population and
// the distance transform happen in a separate phase.
type Atlas struct {
	RenderDistance int
	Tiles          int // chunks per axis: 2*RenderDistance
	Edge           int // voxels per axis: Tiles*ChunkSize

	Color []RGBA
	Dist  []float32
}

func NewAtlas(renderDistance int) *Atlas {
	if renderDistance < 1 {
		renderDistance = 1
	}
	tiles := 2 * renderDistance
	edge := tiles * ChunkSize
	n := edge * edge * edge
	return &Atlas{
		RenderDistance: renderDistance,
		Tiles:          tiles,
		Edge:           edge,
		Color:          make([]RGBA, n),
		Dist:           make([]float32, n),
	}
}

// idx flattens a global voxel coordinate; z varies fastest, matching the
// upload order of the volume.
func (a *Atlas) idx(x, y, z int) int {
	return (x*a.Edge+y)*a.Edge + z
}

// InChunk reports whether p is a valid voxel coordinate within a chunk's
// local grid. Every volume lookup during traversal is guarded by this.
func InChunk(p MapPoint) bool {
	return p.X >= 0 && p.X < ChunkSize &&
		p.Y >= 0 && p.Y < ChunkSize &&
		p.Z >= 0 && p.Z < ChunkSize
}

// global maps a chunk-local voxel coordinate to the atlas grid.
func (a *Atlas) global(c ChunkCoord, p MapPoint) (int, int, int) {
	return c.X*ChunkSize + p.X, c.Y*ChunkSize + p.Y, c.Z*ChunkSize + p.Z
}

// ColorAt samples the color volume for a voxel of chunk c. The caller
// must have checked InChunk(p) and that c is a valid tile.
func (a *Atlas) ColorAt(c ChunkCoord, p MapPoint) RGBA {
	x, y, z := a.global(c, p)
	return a.Color[a.idx(x, y, z)]
}

// DistAt samples the distance field at the same coordinate scheme.
func (a *Atlas) DistAt(c ChunkCoord, p MapPoint) float32 {
	x, y, z := a.global(c, p)
	return a.Dist[a.idx(x, y, z)]
}

// NormCoord is the normalized sampling coordinate for a voxel, the
// addressing contract shared by both volumes: chunk offset plus local
// point, scaled by the cubelet edge.
func (a *Atlas) NormCoord(c ChunkCoord, p MapPoint) mgl32.Vec3 {
	x, y, z := a.global(c, p)
	e := float32(a.Edge)
	return mgl32.Vec3{float32(x) / e, float32(y) / e, float32(z) / e}
}

// SetVoxel writes a color into the atlas at a global voxel coordinate.
func (a *Atlas) SetVoxel(x, y, z int, col RGBA) {
	a.Color[a.idx(x, y, z)] = col
}

// VoxelAt reads a color from the atlas at a global voxel coordinate.
func (a *Atlas) VoxelAt(x, y, z int) RGBA {
	return a.Color[a.idx(x, y, z)]
}

// ClearVoxel empties a cell (transparent black).
func (a *Atlas) ClearVoxel(x, y, z int) {
	a.Color[a.idx(x, y, z)] = RGBA{}
}

// Occupied reports whether the cell holds a fully opaque voxel.
func (a *Atlas) Occupied(x, y, z int) bool {
	return a.Color[a.idx(x, y, z)].A == 1
}
