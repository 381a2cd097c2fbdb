package lzkn

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecompress_EmptyInput(t *testing.T) {
	if _, err := Decompress(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestDecompress_ShortHeader(t *testing.T) {
	if _, err := Decompress([]byte{0x00}); !errors.Is(err, ErrInputOverrun) {
		t.Fatalf("expected ErrInputOverrun, got %v", err)
	}
}

func TestDecompress_TruncatedInputAlwaysFails(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789abcdef"), 64)
	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	maxCut := min(32, len(cmp)-headerSize-1)
	for cut := 1; cut <= maxCut; cut++ {
		truncated := cmp[:len(cmp)-cut]
		if _, decErr := Decompress(truncated); decErr == nil {
			t.Fatalf("expected error for cut=%d", cut)
		}
	}
}

func TestDecompress_TrailingBytes(t *testing.T) {
	data := []byte("trailing-bytes-payload")
	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	src := append(append([]byte(nil), cmp...), []byte("tail")...)

	out, err := Decompress(src)
	if !errors.Is(err, ErrInputUnderrun) {
		t.Fatalf("expected ErrInputUnderrun, got %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("partial output should still hold the decoded payload")
	}
}

func TestDecompress_DeclaredLengthMismatch(t *testing.T) {
	// Stream for {1,1,1,1,1,2,3,3,3,3,3,3,3,3,3,3,4}; the header is patched
	// to lie about the uncompressed size.
	stream := []byte{0x00, 0x11, 0x52, 0x01, 0xA1, 0x02, 0x03, 0x06, 0x01, 0x04, 0x1F}

	t.Run("declared-too-small", func(t *testing.T) {
		src := append([]byte(nil), stream...)
		src[1] = 0x10

		_, err := Decompress(src)
		if !errors.Is(err, ErrOutputOverrun) {
			t.Fatalf("expected ErrOutputOverrun, got %v", err)
		}
		// The decoder stops before the terminator, so unread input remains.
		if !errors.Is(err, ErrInputUnderrun) {
			t.Fatalf("expected joined ErrInputUnderrun, got %v", err)
		}
	})

	t.Run("declared-too-large", func(t *testing.T) {
		src := append([]byte(nil), stream...)
		src[1] = 0x12

		out, err := Decompress(src)
		if !errors.Is(err, ErrOutputUnderrun) {
			t.Fatalf("expected ErrOutputUnderrun, got %v", err)
		}
		if len(out) != 0x12 {
			t.Fatalf("output length should follow the header: got=%d", len(out))
		}
	})
}

func TestDecompress_LookBehindUnderrun(t *testing.T) {
	// MODE2 flag with displacement 2 as the very first token.
	src := []byte{0x00, 0x03, 0x01, 0x82}

	_, err := Decompress(src)
	if !errors.Is(err, ErrLookBehindUnderrun) {
		t.Fatalf("expected ErrLookBehindUnderrun, got %v", err)
	}
}

func TestDecompress_HandBuiltStreams(t *testing.T) {
	cases := []struct {
		name string
		src  []byte
		want []byte
	}{
		{
			name: "empty",
			src:  []byte{0x00, 0x00, 0x01, 0x1F},
			want: []byte{},
		},
		{
			name: "raw-run-flag",
			src: append(append([]byte{0x00, 0x09, 0x03, 0xC1},
				[]byte("nine-byte")...), 0x1F),
			want: []byte("nine-byte"),
		},
		{
			// MODE1 with disp 1 replicates the seed byte across the match.
			name: "mode1-overlap-expansion",
			src:  []byte{0x00, 0x21, 0x06, 0x42, 0x1D, 0x01, 0x1F},
			want: bytes.Repeat([]byte{0x42}, 33),
		},
		{
			// MODE2 with disp 1 and length 5 off a single literal.
			name: "mode2-overlap-expansion",
			src:  []byte{0x00, 0x06, 0x06, 0x7A, 0xB1, 0x1F},
			want: []byte{0x7A, 0x7A, 0x7A, 0x7A, 0x7A, 0x7A},
		},
		{
			// MODE1 with a two-byte period: ABABAB...
			name: "mode1-period-two",
			src:  []byte{0x00, 0x0A, 0x0C, 0x41, 0x42, 0x05, 0x02, 0x1F},
			want: []byte("ABABABABAB"),
		},
		{
			// Degenerate zero displacement self-copies zero bytes.
			name: "mode2-zero-displacement",
			src:  []byte{0x00, 0x02, 0x03, 0x80, 0x1F},
			want: []byte{0x00, 0x00},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := Decompress(tc.src)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !bytes.Equal(out, tc.want) {
				t.Fatalf("decoded mismatch:\ngot  % x\nwant % x", out, tc.want)
			}
		})
	}
}

func TestDecompressN_ReturnsConsumedBytes(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 100)
	cmp, err := Compress(data)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	decoded, nRead, err := DecompressN(cmp)
	if err != nil {
		t.Fatalf("DecompressN failed: %v", err)
	}

	if nRead != len(cmp) {
		t.Errorf("nRead = %d, want %d (full compressed length)", nRead, len(cmp))
	}
	if !bytes.Equal(decoded, data) {
		t.Errorf("decoded mismatch")
	}

	// Back-to-back blocks: advance by nRead, decode the second block.
	second := []byte("second block payload")
	cmp2, err := Compress(second)
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	src := append(append([]byte(nil), cmp...), cmp2...)
	decoded1, n1, err := DecompressN(src)
	if err != nil {
		t.Fatalf("DecompressN first block failed: %v", err)
	}
	if !bytes.Equal(decoded1, data) {
		t.Error("first block mismatch")
	}

	decoded2, n2, err := DecompressN(src[n1:])
	if err != nil {
		t.Fatalf("DecompressN second block failed: %v", err)
	}
	if n1+n2 != len(src) {
		t.Errorf("consumed %d+%d, want %d", n1, n2, len(src))
	}
	if !bytes.Equal(decoded2, second) {
		t.Error("second block mismatch")
	}
}

func TestCopyBackRef(t *testing.T) {
	t.Run("non-overlapping", func(t *testing.T) {
		dst := []byte("abcdefghXXXXXXXX")
		pos, err := copyBackRef(dst, 8, 8, 4)
		if err != nil {
			t.Fatalf("copyBackRef failed: %v", err)
		}
		if pos != 12 {
			t.Fatalf("position = %d, want 12", pos)
		}
		if got, want := string(dst), "abcdefghabcdXXXX"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("overlapping", func(t *testing.T) {
		dst := []byte{'A', 'B', 'C', 0, 0, 0, 0, 0}
		pos, err := copyBackRef(dst, 3, 3, 5)
		if err != nil {
			t.Fatalf("copyBackRef failed: %v", err)
		}
		if pos != 8 {
			t.Fatalf("position = %d, want 8", pos)
		}
		if got, want := string(dst), "ABCABCAB"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})

	t.Run("lookbehind-underrun", func(t *testing.T) {
		dst := make([]byte, 8)
		if _, err := copyBackRef(dst, 2, 3, 2); !errors.Is(err, ErrLookBehindUnderrun) {
			t.Fatalf("expected ErrLookBehindUnderrun, got %v", err)
		}
	})

	t.Run("overshoot-advances-position", func(t *testing.T) {
		dst := []byte{'A', 0, 0, 0}
		pos, err := copyBackRef(dst, 1, 1, 5)
		if err != nil {
			t.Fatalf("copyBackRef failed: %v", err)
		}
		if pos != 6 {
			t.Fatalf("position = %d, want 6", pos)
		}
		if got, want := string(dst), "AAAA"; got != want {
			t.Fatalf("unexpected dst: got %q want %q", got, want)
		}
	})
}
