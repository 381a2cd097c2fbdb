// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzkn

package lzkn

// LZKN1 format constants: window and match bounds, flag byte markers, and
// the description-field bit values.

// MaxInputSize is the largest input Compress accepts: the uncompressed size
// must fit the stream's 16-bit big-endian header.
const MaxInputSize = 0xFFFF

// Sliding window and match bounds.
const (
	windowSize = 0x3FF // maximum displacement
	maxCopyLen = 0x21  // longest match the encoder emits

	minLenMode1  = 3
	minLenMode2  = 2
	maxLenMode2  = 5
	maxDispMode2 = 0xF

	maxRawRunLen = 0x47 // longest literal run a RAW flag byte can carry
)

// Flag byte markers (high bits select the sub-encoding).
const (
	flagCopyMode1 = 0x00
	flagCopyMode2 = 0x80
	flagCopyRaw   = 0xC0

	// flagTerminator ends the stream. It numerically falls in the MODE1
	// range, so the decoder must test it before range dispatch.
	flagTerminator = 0x1F
)

// Description field bit values.
const (
	descBitRaw  = 0
	descBitFlag = 1
)

const headerSize = 2

// CompressedSizeBound returns the worst-case compressed size for n input
// bytes: header, an all-literal payload, one description bit per literal
// plus one for the terminator, and the terminator flag itself.
func CompressedSizeBound(n int) int {
	return headerSize + n + (n+8)/8 + 1
}
