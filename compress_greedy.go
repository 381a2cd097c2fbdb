// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzkn

package lzkn

import "errors"

// modeNone marks a step with no usable match; the byte stays queued.
const modeNone = 0xFF

// compressGreedy runs the greedy LZKN1 parse over in, writing the stream
// into dst through a dropping writer. Returns the stream length (virtual if
// dst was too small) and any boundary errors joined together.
func compressGreedy(in, dst []byte) (int, error) {
	w := &outWriter{buf: dst}
	desc := descWriter{out: w, slot: -1}
	n := len(in)

	w.putByte(byte(n >> 8))
	w.putByte(byte(n))

	pos := 0      // next unread input position
	lastCopy := 0 // start of the pending raw-byte queue

	// The writer drops out-of-range bytes, so the parse always runs to
	// completion and w.pos ends up as the true stream size even when dst is
	// too small.
	for pos < n {
		maxLen := min(maxCopyLen, n-pos)
		disp, length := findLongestMatch(in, pos, maxLen)

		mode := modeNone
		switch {
		case length >= minLenMode2 && length <= maxLenMode2 && disp <= maxDispMode2:
			mode = flagCopyMode2
		case length >= minLenMode1:
			mode = flagCopyMode1
		}

		queued := pos - lastCopy

		// Flush the raw queue: before any match, when the queue can no
		// longer grow, or when the last input byte is about to be consumed.
		if (mode != modeNone && queued >= 1) || queued >= maxRawRunLen || pos+1 == n {
			if pos+1 == n {
				queued = n - lastCopy
			}

			// The final-byte bump can push the queue one past the RAW-run
			// capacity; split off a full run first.
			for queued > maxRawRunLen {
				desc.push(descBitFlag)
				w.putByte(packFlagByte(flagCopyRaw | (maxRawRunLen - 8)))

				for range maxRawRunLen {
					w.putByte(in[lastCopy])
					lastCopy++
				}
				queued -= maxRawRunLen
			}

			if queued > 8 {
				desc.push(descBitFlag)
				w.putByte(packFlagByte(flagCopyRaw | (queued - 8)))

				for range queued {
					w.putByte(in[lastCopy])
					lastCopy++
				}
			} else {
				for range queued {
					desc.push(descBitRaw)
					w.putByte(in[lastCopy])
					lastCopy++
				}
			}
		}

		switch mode {
		case flagCopyMode1:
			desc.push(descBitFlag)
			w.putByte(packFlagByte(flagCopyMode1 | (disp&0x300)>>3 | (length - minLenMode1)))
			w.putByte(byte(disp))
			pos += length
			lastCopy = pos

		case flagCopyMode2:
			desc.push(descBitFlag)
			w.putByte(packFlagByte(flagCopyMode2 | disp&maxDispMode2 | (length-minLenMode2)<<4))
			pos += length
			lastCopy = pos

		default:
			pos++
		}
	}

	desc.push(descBitFlag)
	w.putByte(flagTerminator)

	var err error
	if pos > n {
		err = errors.Join(err, ErrInputOverrun)
	}
	if w.pos > len(dst) {
		err = errors.Join(err, ErrOutputOverrun)
	}

	return w.pos, err
}
