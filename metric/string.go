package metric

// Levenshtein is a string under edit distance (insertions, deletions and
// substitutions of runes, each with cost 1).
type Levenshtein string

// Distance implements vptree.Item.
func (s Levenshtein) Distance(other Levenshtein) float64 {
	return float64(editDistance([]rune(string(s)), []rune(string(other))))
}

// editDistance uses the two-row dynamic program.
func editDistance(a, b []rune) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
