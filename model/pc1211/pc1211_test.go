/*
NAME
  pc1211_test.go

DESCRIPTION
  pc1211_test.go contains functions for testing the pc1211 package.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pc1211

import (
	"errors"
	"strings"
	"testing"

	"github.com/ausocean/cstore/model"
)

func TestConfigIs4000Hz500Baud(t *testing.T) {
	c := New()
	cfg := c.Config()
	if cfg.BaseFreq != 4000 || cfg.Baud != 500 {
		t.Fatalf("Config: got BaseFreq=%d Baud=%d, want 4000/500", cfg.BaseFreq, cfg.Baud)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New()
	text := `PROGRAM "ABC"
10:PRINT "HI"
20:GOTO 10
`
	data, err := c.Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if data[0] != identByte {
		t.Fatalf("Encode: data[0] = 0x%02X, want ident byte", data[0])
	}
	if data[len(data)-1] != eofMarker {
		t.Fatalf("Encode: last byte = 0x%02X, want EOF marker", data[len(data)-1])
	}

	got, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(got, `PROGRAM "ABC"`) {
		t.Fatalf("Decode: missing filename header in %q", got)
	}
	if !strings.Contains(got, "10:") || !strings.Contains(got, "20:") {
		t.Fatalf("Decode: missing line numbers in %q", got)
	}
	if !strings.Contains(got, `PRINT "HI"`) {
		t.Fatalf("Decode: missing PRINT statement in %q", got)
	}
}

func TestEncodeUnknownTokenAccumulatesError(t *testing.T) {
	c := New()
	_, err := c.Encode("PROGRAM \"X\"\n10:@@@NOTATOKEN@@@\n")
	if err == nil {
		t.Fatal("Encode: expected an error for an unrecognized character")
	}
	var pe model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Encode: got %T, want model.ParseError", err)
	}
}

func TestEncodeBadHeaderRejected(t *testing.T) {
	c := New()
	if _, err := c.Encode("NOT A HEADER\n"); !errors.Is(err, errBadHeader) {
		t.Fatalf("Encode: got %v, want errBadHeader", err)
	}
}

func TestDecodeBadIdentRejected(t *testing.T) {
	c := New()
	data := make([]byte, 10)
	if _, err := c.Decode(data); !errors.Is(err, errBadIdent) {
		t.Fatalf("Decode: got %v, want errBadIdent", err)
	}
}

func TestChecksumStateCountsBytes(t *testing.T) {
	var cs checksumState
	for _, b := range []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF} {
		cs.add(b)
	}
	// Only the byte count is checked here. Eight 0xFF bytes add 0x1E each,
	// 0xF0 in all, so the end-around carry branch is never taken.
	if cs.count != 8 {
		t.Fatalf("checksumState: count = %d, want 8", cs.count)
	}
}

func TestSwapNibblesRoundTrip(t *testing.T) {
	for _, b := range []byte{0x00, 0x0F, 0xF0, 0xAB, 0xFF} {
		if got := swapNibbles(swapNibbles(b)); got != b {
			t.Fatalf("swapNibbles(swapNibbles(0x%02X)) = 0x%02X, want 0x%02X", b, got, b)
		}
	}
}

func TestLineNumberBytesRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 99, 100, 999} {
		b1, b2, err := lineNumberBytes(n)
		if err != nil {
			t.Fatalf("lineNumberBytes(%d): %v", n, err)
		}
		got := int(b1&0x0f)*100 + int((b2&0xf0)>>4)*10 + int(b2&0x0f)
		if got != n {
			t.Fatalf("lineNumberBytes(%d) decodes to %d", n, got)
		}
	}
}

func TestLineNumberBytesRejectsOutOfRange(t *testing.T) {
	if _, _, err := lineNumberBytes(1000); err == nil {
		t.Fatal("lineNumberBytes(1000): expected an error")
	}
	if _, _, err := lineNumberBytes(-1); err == nil {
		t.Fatal("lineNumberBytes(-1): expected an error")
	}
}
