package vox

import "math"

// EmptyDistance is the seed value for cells with no occupied voxel
// anywhere near them; any real propagated distance replaces it.
const EmptyDistance = float32(100000)

// chamfer weights for the 26-neighbourhood: face, edge, corner.
var (
	chamferFace   = float32(1)
	chamferEdge   = float32(math.Sqrt2)
	chamferCorner = float32(math.Sqrt(3))
)

type chamferOffset struct {
	dx, dy, dz int
	w          float32
}

// chamferHalf lists the 13 neighbours that lexicographically precede a
// cell in (x, y, z) scan order. The backward pass uses the negations.
func chamferHalf() []chamferOffset {
	var offs []chamferOffset
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if dx > 0 || (dx == 0 && dy > 0) || (dx == 0 && dy == 0 && dz >= 0) {
					continue
				}
				n := 0
				if dx != 0 {
					n++
				}
				if dy != 0 {
					n++
				}
				if dz != 0 {
					n++
				}
				w := chamferFace
				switch n {
				case 2:
					w = chamferEdge
				case 3:
					w = chamferCorner
				}
				offs = append(offs, chamferOffset{dx, dy, dz, w})
			}
		}
	}
	return offs
}

// ComputeDistanceField rebuilds the distance volume from the color
// volume: zero on occupied voxels, and an approximate (chamfer metric)
// distance to the nearest occupied voxel everywhere else. Two scans over
// the cubelet, the usual two-pass distance transform.
func ComputeDistanceField(a *Atlas) {
	for i := range a.Dist {
		if a.Color[i].A == 1 {
			a.Dist[i] = 0
		} else {
			a.Dist[i] = EmptyDistance
		}
	}

	half := chamferHalf()
	e := a.Edge

	// Forward pass.
	for x := 0; x < e; x++ {
		for y := 0; y < e; y++ {
			for z := 0; z < e; z++ {
				i := a.idx(x, y, z)
				d := a.Dist[i]
				for _, o := range half {
					nx, ny, nz := x+o.dx, y+o.dy, z+o.dz
					if nx < 0 || nx >= e || ny < 0 || ny >= e || nz < 0 || nz >= e {
						continue
					}
					if nd := a.Dist[a.idx(nx, ny, nz)] + o.w; nd < d {
						d = nd
					}
				}
				a.Dist[i] = d
			}
		}
	}

	// Backward pass with the mirrored neighbourhood.
	for x := e - 1; x >= 0; x-- {
		for y := e - 1; y >= 0; y-- {
			for z := e - 1; z >= 0; z-- {
				i := a.idx(x, y, z)
				d := a.Dist[i]
				for _, o := range half {
					nx, ny, nz := x-o.dx, y-o.dy, z-o.dz
					if nx < 0 || nx >= e || ny < 0 || ny >= e || nz < 0 || nz >= e {
						continue
					}
					if nd := a.Dist[a.idx(nx, ny, nz)] + o.w; nd < d {
						d = nd
					}
				}
				a.Dist[i] = d
			}
		}
	}
}
