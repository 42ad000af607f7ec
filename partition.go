package orrery

// partitionPairs splits the upper-triangular (i,j), i<j pair grid of
// an n-body list into contiguous slices of near-equal size (sizes
// differ by at most one) across min(threads, pairCount) workers. It
// returns nil when there is nothing to partition (n<2 or threads<=0).
func partitionPairs(n, threads int) []PairFence {
	total := n * (n - 1) / 2
	if total == 0 || threads <= 0 {
		return nil
	}

	workers := threads
	if workers > total {
		workers = total
	}

	base := total / workers
	rem := total % workers
	sizes := make([]int, workers)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}

	advance := func(i, j int) (int, int) {
		j++
		if j == n {
			i++
			j = i + 1
		}
		return i, j
	}

	fences := make([]PairFence, 0, workers)
	i, j := 0, 1
	for _, size := range sizes {
		if size == 0 {
			continue
		}
		startI, startJ := i, j
		for k := 1; k < size; k++ {
			i, j = advance(i, j)
		}
		fences = append(fences, PairFence{Start: PairIndex{I: startI, J: startJ}, End: PairIndex{I: i, J: j}})
		i, j = advance(i, j)
	}
	return fences
}
