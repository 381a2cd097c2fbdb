// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzkn

package lzkn

// packFlagByte packs a flag-byte fragment to one byte as required by the LZKN1
// bit layout. Callers pass values whose low 8 bits are the serialized
// representation.
func packFlagByte(v int) byte {
	// #nosec G115 -- LZKN1 flag bytes intentionally encode only low 8 bits.
	return byte(v & 0xff)
}
