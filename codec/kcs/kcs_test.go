/*
NAME
  kcs_test.go

DESCRIPTION
  kcs_test.go contains functions for testing the kcs package.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package kcs

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

// fx502pConfig returns a Config approximating the FX-502P's modem settings:
// an 8N1 frame over a 2400Hz/300baud tone pair.
func fx502pConfig(t *testing.T) Config {
	t.Helper()
	pattern, err := NewPattern(8, ParityNone, 1)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	return Config{BaseFreq: 2400, Baud: 300, Pattern: pattern}
}

// encodeBytes writes a lead-in plus the given bytes through a fresh
// ByteFramerWriter, returning the raw PCM stream produced.
func encodeBytes(t *testing.T, cfg Config, data []byte) []byte {
	t.Helper()
	frames := NewFrames(cfg)
	var buf bytes.Buffer
	bw := NewBitFramerWriter(&buf, frames)
	if err := bw.WriteLeadIn(1.0); err != nil {
		t.Fatalf("WriteLeadIn: %v", err)
	}
	yw := NewByteFramerWriter(bw, cfg.Pattern)
	if err := yw.WriteBytes(data); err != nil {
		t.Fatalf("WriteBytes: %v", err)
	}
	return buf.Bytes()
}

// decodeBytes pulls n bytes out of a raw PCM stream, calibrating the
// carrier first.
func decodeBytes(t *testing.T, cfg Config, pcm []byte, n int) []byte {
	t.Helper()
	src := bytes.NewReader(pcm)

	sbc := NewSignStream(src)
	cal, err := Calibrate(sbc, cfg.BaseFreq, DefaultLeadInDuration)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}

	mid := Midpoint(cal.ActualBaseFreq)
	hw := NewHalfwaveStream(sbc, mid)
	hwLen0, hwLen1 := cfg.HalfwaveCounts()
	br := NewBitFramerReader(hw, hwLen0, hwLen1)
	yr := NewByteFramerReader(br, cfg.Pattern)

	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := yr.NextByte()
		if err != nil {
			t.Fatalf("NextByte(%d): %v", i, err)
		}
		out[i] = b
	}
	return out
}

// TestRoundTripAllBytes encodes then decodes every possible byte value and
// checks it comes back unchanged.
func TestRoundTripAllBytes(t *testing.T) {
	cfg := fx502pConfig(t)
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}

	pcm := encodeBytes(t, cfg, data)
	got := decodeBytes(t, cfg, pcm, len(data))

	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", got, data)
	}
}

// TestRoundTripEvenParity exercises a frame with an even parity bit.
func TestRoundTripEvenParity(t *testing.T) {
	pattern, err := NewPattern(7, ParityEven, 2)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	cfg := Config{BaseFreq: 1200, Baud: 300, Pattern: pattern}

	data := []byte{0x00, 0x01, 0x7F, 0x55, 0x2A}
	for i := range data {
		data[i] &= 0x7F // 7 data bits.
	}

	pcm := encodeBytes(t, cfg, data)
	got := decodeBytes(t, cfg, pcm, len(data))

	if !bytes.Equal(got, data) {
		t.Fatalf("round trip mismatch:\n got  %v\n want %v", got, data)
	}
}

// TestParityMismatchRejected flips a parity bit's sense between encode and
// decode configs and checks NextByte reports ErrParity.
func TestParityMismatchRejected(t *testing.T) {
	encCfg := fx502pConfig(t)
	encPattern, err := NewPattern(8, ParityEven, 1)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	encCfg.Pattern = encPattern

	pcm := encodeBytes(t, encCfg, []byte{0x01})

	decCfg := encCfg
	decPattern, err := NewPattern(8, ParityOdd, 1)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	decCfg.Pattern = decPattern

	src := bytes.NewReader(pcm)
	sbc := NewSignStream(src)
	cal, err := Calibrate(sbc, decCfg.BaseFreq, DefaultLeadInDuration)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}
	hw := NewHalfwaveStream(sbc, Midpoint(cal.ActualBaseFreq))
	hwLen0, hwLen1 := decCfg.HalfwaveCounts()
	br := NewBitFramerReader(hw, hwLen0, hwLen1)
	yr := NewByteFramerReader(br, decCfg.Pattern)

	_, err = yr.NextByte()
	if !errors.Is(err, ErrParity) {
		t.Fatalf("NextByte: got %v, want ErrParity", err)
	}
}

// TestTruncatedStreamEOF checks that calibrating over a recording cut off
// mid-frame fails with ErrNoCarrier or io.EOF rather than hanging or
// panicking.
func TestTruncatedStreamEOF(t *testing.T) {
	cfg := fx502pConfig(t)
	pcm := encodeBytes(t, cfg, []byte{0xAB})
	// Chop the stream mid-frame.
	short := pcm[:len(pcm)/2]

	src := bytes.NewReader(short)
	sbc := NewSignStream(src)
	_, err := Calibrate(sbc, cfg.BaseFreq, DefaultLeadInDuration)
	if err == nil {
		t.Fatal("Calibrate: expected an error over a truncated recording, got nil")
	}
	if !errors.Is(err, ErrNoCarrier) && !errors.Is(err, io.EOF) {
		t.Fatalf("Calibrate: got %v, want ErrNoCarrier or io.EOF", err)
	}
}

// TestCalibrateConverges checks the measured base frequency is close to
// nominal for a clean, synthetically generated lead-in tone.
func TestCalibrateConverges(t *testing.T) {
	cfg := fx502pConfig(t)
	frames := NewFrames(cfg)
	var buf bytes.Buffer
	bw := NewBitFramerWriter(&buf, frames)
	if err := bw.WriteLeadIn(2.0); err != nil {
		t.Fatalf("WriteLeadIn: %v", err)
	}

	sbc := NewSignStream(bytes.NewReader(buf.Bytes()))
	cal, err := Calibrate(sbc, cfg.BaseFreq, DefaultLeadInDuration)
	if err != nil {
		t.Fatalf("Calibrate: %v", err)
	}

	tolerance := float64(cfg.BaseFreq) * 0.02
	diff := float64(cal.ActualBaseFreq - cfg.BaseFreq)
	if diff < 0 {
		diff = -diff
	}
	if diff > tolerance {
		t.Fatalf("ActualBaseFreq = %d, want within %.0f of %d", cal.ActualBaseFreq, tolerance, cfg.BaseFreq)
	}
}

// TestParsePatternRejectsMalformed checks that obviously bad patterns are
// rejected rather than silently accepted.
func TestParsePatternRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"01234567E-", // missing S
		"S00234567-", // repeated data bit
		"SX01234567-",
	}
	for _, s := range cases {
		if _, err := ParsePattern(s); !errors.Is(err, ErrBadPattern) {
			t.Errorf("ParsePattern(%q): got %v, want ErrBadPattern", s, err)
		}
	}
}
