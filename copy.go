// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzkn

package lzkn

// copyBackRef copies count bytes from dst[outPos-disp:] to dst[outPos:] and
// returns the advanced output position. If disp < count, LZ semantics require
// "forward" expansion (newly written bytes become valid source for the
// remainder of the match); the in-bounds path implements this with repeated
// doubling instead of a byte loop.
//
// Writes past len(dst) are dropped while the position keeps advancing, so a
// malformed stream still yields best-effort output and the caller detects the
// overshoot from the returned position.
func copyBackRef(dst []byte, outPos, disp, count int) (int, error) {
	if outPos-disp < 0 {
		return outPos, ErrLookBehindUnderrun
	}

	if disp == 0 {
		// Degenerate self-copy from a corrupt stream: every byte keeps its
		// current value, only the position advances.
		return outPos + count, nil
	}

	if outPos+count <= len(dst) {
		if disp >= count {
			copy(dst[outPos:outPos+count], dst[outPos-disp:outPos-disp+count])
			return outPos + count, nil
		}

		// Seed with one full distance chunk, then grow from already-expanded output.
		copy(dst[outPos:outPos+disp], dst[outPos-disp:outPos])
		copied := disp
		for copied < count {
			n := copy(dst[outPos+copied:outPos+count], dst[outPos:outPos+copied])
			copied += n
		}

		return outPos + count, nil
	}

	// Overshooting copy: byte-wise with dropped writes past the end.
	for range count {
		if outPos < len(dst) {
			dst[outPos] = dst[outPos-disp]
		}
		outPos++
	}

	return outPos, nil
}
