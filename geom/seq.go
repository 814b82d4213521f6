package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// Areas returns an iterator that yields the area of each Size yielded
// by sizes.
func Areas(sizes iter.Seq[Size]) iter.Seq[float64] {
	return xiter.Map(sizes, Size.Area)
}

// CollectAreas fills dst with the areas of the sizes yielded by sizes,
// in order. It stops when either dst is full or sizes is exhausted and
// returns the number of elements written.
func CollectAreas(dst []float64, sizes iter.Seq[Size]) int {
	var n int
	for i, a := range xiter.Enumerate(Areas(sizes)) {
		if i >= len(dst) {
			break
		}
		dst[i] = a
		n++
	}
	return n
}
