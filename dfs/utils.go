// Package dfs provides helpers shared by DFS, cycle detection and topological
// sort: slice construction, cycle signatures and Booth's minimal rotation.
package dfs

import (
	"cmp"
	"strconv"
	"strings"
)

// filled returns a slice of length n with every element set to v.
func filled(n, v int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return out
}

// JoinSig concatenates the elements of c with commas, producing a cycle signature.
// Time Complexity: O(n).
func JoinSig(c []int) string {
	var sb strings.Builder
	for i, v := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// MinimalRotation implements Booth's algorithm to find the lexicographically
// minimal rotation of s. It returns a new slice of length len(s) in O(n) time.
// Algorithm overview:
// 1. Duplicate the sequence (doubled) to length 2n.
// 2. Maintain an array f of failure links initialized to -1.
// 3. Track candidate k = 0; for j from 1 to 2n-1, adjust k based on comparisons.
// 4. After scanning, extract the rotation starting at index k.
func MinimalRotation[E cmp.Ordered](s []E) []E {
	n := len(s)
	doubled := make([]E, 0, 2*n)
	doubled = append(append(doubled, s...), s...)
	f := filled(2*n, -1)
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] { // mismatch with i == -1
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]E(nil), doubled[k:k+n]...)
}
