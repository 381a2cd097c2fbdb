// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzkn

package lzkn

// findLongestMatch scans the window behind pos for the longest prior
// occurrence of the bytes at pos, capped at maxLen. Matches may extend past
// pos into not-yet-encoded territory (disp < length), the usual LZ77
// run-length trick.
//
// The scan runs from pos-1 downward and only a strictly longer match
// replaces the current best, so equal-length candidates resolve to the
// smallest displacement. This tie-break is what keeps short nearby matches
// eligible for the one-byte MODE2 form and must not change.
func findLongestMatch(in []byte, pos, maxLen int) (disp, length int) {
	limit := max(pos-windowSize, 0)
	bestPos := -1

	for q := pos - 1; q >= limit; q-- {
		k := 0
		for in[q+k] == in[pos+k] {
			k++
			if k >= maxLen {
				break
			}
		}

		if k > length {
			length = k
			bestPos = q
		}
	}

	if bestPos < 0 {
		return 0, 0
	}

	return pos - bestPos, length
}
