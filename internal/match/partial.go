package match

import "math"

// block is a run of size equal runes starting at a[a] and b[b].
type block struct {
	a, b, size int
}

// PartialRatio scores how well the shorter string appears inside the longer
// one, from 0 to 100. Each matching block anchors a window of the longer
// string as wide as the shorter one; the best window ratio wins.
func PartialRatio(s1, s2 string) int {
	shorter, longer := []rune(s1), []rune(s2)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	if len(shorter) == 0 {
		return 0
	}

	best := 0.0

	for _, blk := range matchingBlocks(shorter, longer) {
		start := max(blk.b-blk.a, 0)
		end := min(start+len(shorter), len(longer))

		r := ratio(shorter, longer[start:end])
		if r > 0.995 {
			return 100
		}

		best = max(best, r)
	}

	return int(math.RoundToEven(best * 100))
}

// matchingBlocks returns the non-overlapping common runs of a and b in
// increasing order, found by recursively taking the longest common
// substring and searching the pieces to its left and right. The list ends
// with a zero-sized sentinel at (len(a), len(b)).
func matchingBlocks(a, b []rune) []block {
	b2j := make(map[rune][]int)
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}

	var blocks []block

	var walk func(alo, ahi, blo, bhi int)
	walk = func(alo, ahi, blo, bhi int) {
		m := longestMatch(a, b2j, alo, ahi, blo, bhi)
		if m.size == 0 {
			return
		}

		if alo < m.a && blo < m.b {
			walk(alo, m.a, blo, m.b)
		}

		blocks = append(blocks, m)

		if m.a+m.size < ahi && m.b+m.size < bhi {
			walk(m.a+m.size, ahi, m.b+m.size, bhi)
		}
	}

	walk(0, len(a), 0, len(b))

	return append(blocks, block{a: len(a), b: len(b)})
}

// longestMatch finds the longest common substring of a[alo:ahi] and
// b[blo:bhi]. Ties resolve to the earliest start in a, then in b.
func longestMatch(a []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) block {
	best := block{a: alo, b: blo}
	j2len := map[int]int{}

	for i := alo; i < ahi; i++ {
		next := map[int]int{}

		for _, j := range b2j[a[i]] {
			if j < blo {
				continue
			}

			if j >= bhi {
				break
			}

			k := j2len[j-1] + 1
			next[j] = k

			if k > best.size {
				best = block{a: i - k + 1, b: j - k + 1, size: k}
			}
		}

		j2len = next
	}

	return best
}
