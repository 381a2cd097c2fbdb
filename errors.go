// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzkn

package lzkn

import "errors"

// Sentinel errors for compression and decompression. Buffer-boundary
// conditions can co-occur on malformed streams, so a single call may return
// several of them combined with errors.Join; test with errors.Is.
var (
	// ErrEmptyInput is returned by the decoders when the compressed input is
	// empty. Compressing an empty slice is not an error.
	ErrEmptyInput = errors.New("empty input")
	// ErrInputOverrun is returned when the decoder needs bytes past the end of input.
	ErrInputOverrun = errors.New("input overrun")
	// ErrInputUnderrun is returned when the terminator is hit before the input is exhausted.
	ErrInputUnderrun = errors.New("input underrun")
	// ErrOutputOverrun is returned when more output is produced than the declared size
	// (or, from CompressInto, when the destination buffer is too small).
	ErrOutputOverrun = errors.New("output overrun")
	// ErrOutputUnderrun is returned when the terminator is hit before the declared size is produced.
	ErrOutputUnderrun = errors.New("output underrun")
	// ErrLookBehindUnderrun is returned when a back-reference points before the start of the output.
	ErrLookBehindUnderrun = errors.New("lookbehind underrun")
	// ErrInputTooLarge is returned when the input exceeds MaxInputSize.
	ErrInputTooLarge = errors.New("input exceeds MaxInputSize")
)
