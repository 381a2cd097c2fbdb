// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzkn

package lzkn

import "errors"

// Decompress decodes an LZKN1 stream. The output size is taken from the
// 2-byte big-endian header and the returned slice has exactly that length.
//
// On a malformed stream the buffer is still returned with best-effort
// contents alongside the joined error conditions; treat it as authoritative
// only when err is nil. Input left over after the terminator is reported as
// ErrInputUnderrun (use DecompressN for back-to-back blocks).
func Decompress(src []byte) ([]byte, error) {
	dst, consumed, err := decompressCore(src)
	if dst != nil && consumed < len(src) {
		err = errors.Join(err, ErrInputUnderrun)
	}

	return dst, err
}

// DecompressN decodes an LZKN1 stream and additionally returns the number of
// input bytes consumed through the terminator. Bytes past the terminator are
// not an error, so a caller can advance src by nRead between concatenated
// blocks.
func DecompressN(src []byte) ([]byte, int, error) {
	return decompressCore(src)
}

// decompressCore runs the decoder state machine. It mirrors the reference
// decoder: description bits dispatch between literals and flag bytes, the
// terminator is tested before range dispatch, and boundary conditions are
// detected post-hoc from the final cursor positions.
func decompressCore(src []byte) (dst []byte, consumed int, err error) {
	if len(src) == 0 {
		return nil, 0, ErrEmptyInput
	}

	if len(src) < headerSize {
		return nil, 0, ErrInputOverrun
	}

	outLen := int(src[0])<<8 | int(src[1])
	dst = make([]byte, outLen)

	inPos := headerSize
	outPos := 0
	var desc descReader
	done := false
	truncated := false
	var copyErr error

	for !done && !truncated && copyErr == nil && outPos <= outLen {
		bit, ok := desc.readBit(src, &inPos)
		if !ok {
			truncated = true
			break
		}

		if bit == descBitRaw {
			if inPos >= len(src) {
				truncated = true
				break
			}

			if outPos < outLen {
				dst[outPos] = src[inPos]
			}
			inPos++
			outPos++

			continue
		}

		if inPos >= len(src) {
			truncated = true
			break
		}

		flag := src[inPos]
		inPos++

		switch {
		case flag == flagTerminator:
			done = true

		case flag >= flagCopyRaw:
			count := int(flag) - flagCopyRaw + 8
			avail := min(count, len(src)-inPos)

			for range avail {
				if outPos < outLen {
					dst[outPos] = src[inPos]
				}
				inPos++
				outPos++
			}

			if avail < count {
				truncated = true
			}

		case flag >= flagCopyMode2:
			disp := int(flag) & maxDispMode2
			count := int(flag)>>4 - 6
			outPos, copyErr = copyBackRef(dst, outPos, disp, count)

		default: // MODE1
			if inPos >= len(src) {
				truncated = true
				break
			}

			disp := int(src[inPos]) | int(flag)<<3&0x300
			inPos++
			count := int(flag&0x1F) + minLenMode1
			outPos, copyErr = copyBackRef(dst, outPos, disp, count)
		}
	}

	if copyErr != nil {
		err = errors.Join(err, copyErr)
	}
	if truncated {
		err = errors.Join(err, ErrInputOverrun)
	}
	if outPos < outLen {
		err = errors.Join(err, ErrOutputUnderrun)
	}
	if outPos > outLen {
		err = errors.Join(err, ErrOutputOverrun)
	}

	return dst, inPos, err
}
