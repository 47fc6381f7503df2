package vox

// splitmix64 is a fast, high-quality 64-bit mixer.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	z := x
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// hash3D returns a deterministic 64-bit hash for (x,y,z) under the given seed.
func hash3D(seed uint64, x, y, z int) uint64 {
	h := seed
	h ^= uint64(uint32(x)) * 0x9E3779B185EBCA87
	h ^= uint64(uint32(y)) * 0xC2B2AE3D27D4EB4F
	h ^= uint64(uint32(z)) * 0x165667B19E3779F9
	return splitmix64(h)
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
