package match

// editDistance computes the weighted edit distance between two rune slices.
// Insertions and deletions cost 1; substitutions cost subCost.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func editDistance(a, b []rune, subCost int) int {
	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Ensure a is the shorter string for space optimization
	if len(a) > len(b) {
		a, b = b, a
	}

	// Use two rows instead of full matrix for space optimization
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = subCost
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Levenshtein computes the classic edit distance between two strings.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	return editDistance([]rune(a), []rune(b), 1)
}

// indel computes the insertion/deletion distance between two strings:
// a substitution counts as one deletion plus one insertion.
func indel(a, b string) int {
	if a == b {
		return 0
	}

	return editDistance([]rune(a), []rune(b), 2)
}

// ratio returns the normalized indel similarity of a and b between 0 and 1:
// 1 - indel / (len(a) + len(b)).
func ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}

	return 1.0 - float64(editDistance(a, b, 2))/float64(total)
}
