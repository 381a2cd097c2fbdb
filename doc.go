// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzkn

/*
Package lzkn implements Konami's LZSS variant 1 (LZKN1) compression and
decompression, byte-exact with the reference encoder used for retro game
ROM assets on every input that encoder encodes correctly.

A stream starts with a 2-byte big-endian uncompressed size, followed by
interleaved description bytes whose bits, read LSB first, classify each
following token as a literal byte or a flag byte. Flag bytes select a long
match (3-33 bytes within a 1023-byte window), a short match (2-5 bytes,
displacement 1-15) or an uncompressed run (8-71 literal bytes); the flag
value 0x1F terminates the stream.

# Decompress

The decompressed size is read from the stream header, so no options are
needed. From a byte slice:

	out, err := lzkn.Decompress(compressed)

To get the number of input bytes consumed (e.g. for back-to-back compressed
blocks):

	out, nRead, err := lzkn.DecompressN(compressed)
	// advance: compressed = compressed[nRead:]

From an io.Reader:

	out, err := lzkn.DecompressFromReader(r, nil)

# Compress

	out, err := lzkn.Compress(src)

Input must not exceed MaxInputSize (65535 bytes), the largest size the
16-bit stream header can carry. CompressInto compresses into a
caller-supplied buffer; CompressedSizeBound gives the worst-case output
size for sizing it.
*/
package lzkn
