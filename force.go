package orrery

// PairIndex is an ordered pair position (i,j) in the upper-triangular
// pair grid of a body list (i<j always holds for a valid pair).
type PairIndex struct {
	I, J int
}

// PairFence is an inclusive, ordered range over the lexicographically
// enumerated (i,j), i<j pairs of a body list: (start)..(end). It lets
// distinct workers cover disjoint, complementary slices of the pair
// grid.
type PairFence struct {
	Start, End PairIndex
}

// accelerations computes the gravitational acceleration contributed
// to each body by every pair within fence, in lexicographic (i,j)
// order. On the first pair whose center-to-center distance is at most
// the sum of their radii, it aborts and returns a *CollisionError
// before the partial result is meaningful; otherwise it returns a
// full-length acceleration vector with entries outside the fence left
// at zero.
//
// accelerations is the sequential building block both the
// single-threaded and worker-sharded paths call: the driver sums
// partial results produced over disjoint fences.
func accelerations(bodies []Body, fence PairFence, g float64) ([]Vector3, error) {
	n := len(bodies)
	out := make([]Vector3, n)
	if n < 2 {
		return out, nil
	}

	startI, startJ := fence.Start.I, fence.Start.J
	endI, endJ := fence.End.I, fence.End.J

outer:
	for i := startI; i <= endI; i++ {
		for j := i + 1; j < n; j++ {
			if i == startI && j < startJ {
				continue
			}
			if i == endI && j > endJ {
				break outer
			}

			a, b := bodies[i], bodies[j]
			diff := b.Position.Sub(a.Position)
			dist := diff.Norm()

			if dist <= a.Radius+b.Radius {
				return nil, &CollisionError{I: i, J: j}
			}

			mult := g / (dist * dist * dist)
			out[i] = out[i].Add(diff.Scale(mult * b.Mass))
			out[j] = out[j].Add(diff.Scale(-mult * a.Mass))
		}
	}
	return out, nil
}
