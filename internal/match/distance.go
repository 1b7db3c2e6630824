package match

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single byte insertions, deletions or substitutions that
// turn one into the other. Attribute names are ASCII, so bytes are enough.
func Distance(a, b string) int {
	if a == b {
		return 0
	}

	// Keep the shorter string in a; only two rows of len(a)+1 are needed.
	if len(a) > len(b) {
		a, b = b, a
	}

	if a == "" {
		return len(b)
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			substitution := prev[i-1]
			if a[i-1] != b[j-1] {
				substitution++
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, substitution)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Closest returns the candidate nearest to name. A candidate only qualifies
// when at most a third of name has to be edited; ties go to the earlier
// candidate. Very short names never match.
func Closest(name string, candidates []string) (string, bool) {
	limit := len(name) / 3
	if limit == 0 {
		return "", false
	}

	best, bestDistance := "", limit+1

	for _, c := range candidates {
		if d := Distance(name, c); d > 0 && d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, best != ""
}
