/*
NAME
  kcs.go

DESCRIPTION
  Package kcs implements the Kansas City Standard two-tone FSK modem used by
  cassette_store's calculator protocols: sign-change extraction, half-wave
  classification, lead-in carrier detection and calibration, and a
  configurable bit-frame codec sitting on top of those.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package kcs implements the Kansas City Standard audio modem: the
// sign-change/half-wave/carrier/bit/byte pipeline that recovers bytes from a
// raw 8-bit signed 48kHz PCM stream, and its inverse.
package kcs

import (
	"github.com/pkg/errors"
)

// SampleRate is the fixed PCM sample rate this modem operates at. cstore
// never resamples; the audio adapter is responsible for presenting audio at
// this rate.
const SampleRate = 48000

// Parity selects the parity bit polarity used by a Config built from
// (databits, parity, stopbits) rather than an explicit bit pattern.
type Parity int

const (
	ParityNone Parity = iota
	ParityEven
	ParityOdd
)

// Errors returned by this package. Wrap with fmt.Errorf("...: %w", err) at
// call sites so errors.Is keeps working, matching device/raspivid's style.
var (
	// ErrNoCarrier is returned when the lead-in tone is never detected
	// before the underlying stream ends.
	ErrNoCarrier = errors.New("kcs: no carrier detected")

	// ErrBitDecode is returned when the half-wave buffer is ambiguous at
	// a bit boundary (neither a clean ZERO nor ONE pattern).
	ErrBitDecode = errors.New("kcs: bit decode failure")

	// ErrParity is returned when a parity bit read from the wire doesn't
	// match the computed parity of the data bits.
	ErrParity = errors.New("kcs: parity error")

	// ErrBadPattern is returned when a bit pattern string or
	// (databits, parity, stopbits) triple is malformed.
	ErrBadPattern = errors.New("kcs: invalid bit pattern")
)

// Config is the immutable, per-session protocol configuration: the tone
// frequencies, bit rate, and wire framing a model's codec needs. It is
// parsed once at modem-open time and never mutated.
type Config struct {
	// BaseFreq is the nominal frequency, in Hz, of a ONE half-wave. The
	// ZERO tone is half of this. Carrier calibration measures the actual
	// value seen on tape; BaseFreq remains the value used to derive
	// hwLen0/hwLen1 and the encoder's waveforms.
	BaseFreq int

	// Baud is the logical bit rate.
	Baud int

	// Pattern is the parsed bit-frame layout. Build it with ParsePattern
	// or NewPattern.
	Pattern []Symbol
}

// HalfwaveCounts returns the number of half-waves that make up one ZERO bit
// and one ONE bit: hwLen1 = 2*(BaseFreq/Baud) computed first, hwLen0 =
// hwLen1/2, matching the integer-truncation order the reference decoder
// uses so the two stay consistent.
func (c Config) HalfwaveCounts() (hwLen0, hwLen1 int) {
	hwLen1 = c.BaseFreq / c.Baud * 2
	hwLen0 = hwLen1 / 2
	return hwLen0, hwLen1
}

// Midpoint returns the half-wave sample-count threshold that separates a ONE
// half-wave from a ZERO half-wave, given the actual base frequency measured
// during carrier calibration.
func Midpoint(actualBaseFreq int) int {
	return int(float64(SampleRate)/(float64(actualBaseFreq)*1.5) + 0.5)
}
