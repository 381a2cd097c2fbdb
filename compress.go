// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzkn

package lzkn

// Compress compresses src as an LZKN1 stream and returns it. The output is
// byte-identical to the reference greedy encoder, except when the final-byte
// bump lifts the raw queue to 72 bytes: the reference mis-encodes that case,
// while this encoder emits a full 71-byte RAW run first. Returns
// ErrInputTooLarge when src exceeds MaxInputSize.
func Compress(src []byte) ([]byte, error) {
	if len(src) > MaxInputSize {
		return nil, ErrInputTooLarge
	}

	dst := make([]byte, CompressedSizeBound(len(src)))
	n, err := compressGreedy(src, dst)
	if err != nil {
		return nil, err
	}

	return dst[:n], nil
}

// CompressInto compresses src into dst and returns the number of bytes the
// stream occupies. When dst is too small the stream is written best-effort,
// ErrOutputOverrun is returned and the returned length is the size the full
// stream would have needed; it is authoritative only on a nil error.
func CompressInto(src, dst []byte) (int, error) {
	if len(src) > MaxInputSize {
		return 0, ErrInputTooLarge
	}

	return compressGreedy(src, dst)
}
