/*
NAME
  fx502p_test.go

DESCRIPTION
  fx502p_test.go contains functions for testing the fx502p package.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package fx502p

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/ausocean/cstore/codec/kcs"
	"github.com/ausocean/cstore/model"
)

func TestConfigIs8E2(t *testing.T) {
	c := New()
	cfg := c.Config()
	if cfg.BaseFreq != 2400 || cfg.Baud != 300 {
		t.Fatalf("Config: got BaseFreq=%d Baud=%d, want 2400/300", cfg.BaseFreq, cfg.Baud)
	}
	// S + 8 data bits + even parity + 2 stop bits.
	if len(cfg.Pattern) != 12 || cfg.Pattern[9].Kind != kcs.SymParityEven {
		t.Fatalf("Config: got pattern %v, want an 8E2 frame", cfg.Pattern)
	}
}

func TestEncodeDecodeProgramRoundTrip(t *testing.T) {
	c := New()
	text := "FP001\nLBL1: 1 EXE\nGOTO1\n"
	data, err := c.Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) < 2 || data[0] != 0x01 || data[1] != 0xB0 {
		t.Fatalf("Encode: unexpected header bytes %v", data[:2])
	}

	got, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(got, "FP001") {
		t.Fatalf("Decode: missing header in %q", got)
	}
	if !strings.Contains(got, "LBL1:") || !strings.Contains(got, "GOTO1") {
		t.Fatalf("Decode: missing expected tokens in %q", got)
	}
}

func TestEncodeUnknownTokenAccumulatesError(t *testing.T) {
	c := New()
	_, err := c.Encode("FP002\nBOGUSTOKEN EXE\n")
	if err == nil {
		t.Fatal("Encode: expected an error for an unrecognized token")
	}
	var pe model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Encode: got %T, want model.ParseError", err)
	}
}

func TestEncodeMemoryRoundTrip(t *testing.T) {
	c := New()
	text := "F 010\nM0: 3.5\nM1: -12\n"
	data, err := c.Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(got, "F 010") {
		t.Fatalf("Decode: missing header in %q", got)
	}
	if !strings.Contains(got, "M0: 3.5") {
		t.Fatalf("Decode: missing M0 register in %q", got)
	}
}

func TestEncodeBadHeaderRejected(t *testing.T) {
	c := New()
	if _, err := c.Encode("NOTAHEADER\n"); !errors.Is(err, errBadHeader) {
		t.Fatalf("Encode: got %v, want errBadHeader", err)
	}
}

func TestDecodeTooShortRejected(t *testing.T) {
	c := New()
	if _, err := c.Decode([]byte{0x01}); err == nil {
		t.Fatal("Decode: expected an error for a too-short payload")
	}
}

func TestNumberRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1, -1, 3.5, -12, 100, 0.001} {
		b := numberToBytes(v)
		if len(b) != 8 {
			t.Fatalf("numberToBytes(%v): got %d bytes, want 8", v, len(b))
		}
		s, err := bytesToNumber(b)
		if err != nil {
			t.Fatalf("bytesToNumber(%v): %v", v, err)
		}
		if s == "" {
			t.Fatalf("bytesToNumber(%v): empty result", v)
		}
		if got, err := strconv.ParseFloat(s, 64); err != nil || got != v {
			t.Fatalf("bytesToNumber(numberToBytes(%v)) = %q, want %v", v, s, v)
		}
	}
}

func TestFindHeaderSkipsGarbage(t *testing.T) {
	garbage := []byte{0x55, 0xAA, 0xFF}
	header := []byte{0x01, 0xB0, 0x20}
	data := append(append([]byte{}, garbage...), header...)

	found, err := FindHeader(data)
	if err != nil {
		t.Fatalf("FindHeader: %v", err)
	}
	if len(found) != len(header) {
		t.Fatalf("FindHeader: got %d bytes, want %d", len(found), len(header))
	}
}
