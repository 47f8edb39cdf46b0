/*
NAME
  carrier.go

DESCRIPTION
  carrier.go scans a sign-change stream for the steady lead-in carrier tone,
  locks onto it, and measures the actual base frequency of the recording.
  Old tape recordings drift in speed and carry noise; this lets the rest of
  the pipeline work off the frequency that's actually on tape rather than
  the nominal one.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package kcs

import (
	"fmt"
)

// ring is a fixed-capacity circular buffer of sign-change bits that tracks
// its own running sum, so the carrier scan doesn't have to re-sum its
// multi-thousand-sample window on every step.
type ring struct {
	buf  []int
	pos  int
	full bool
	sum  int
}

func newRing(cap int) *ring {
	return &ring{buf: make([]int, cap)}
}

func (r *ring) push(v int) {
	if r.full {
		r.sum -= r.buf[r.pos]
	}
	r.buf[r.pos] = v
	r.sum += v
	r.pos++
	if r.pos == len(r.buf) {
		r.pos = 0
		r.full = true
	}
}

// CalibrationResult holds the outcome of a successful carrier lock.
type CalibrationResult struct {
	// ActualBaseFreq is the measured frequency, in Hz, of the lead-in
	// tone, replacing the nominal BaseFreq for timing decisions.
	ActualBaseFreq int
}

// DefaultLeadInDuration is the lock window Calibrate scans with when the
// caller doesn't specify one.
const DefaultLeadInDuration = 0.5 // seconds

// Calibrate scans sbc for a steady lead-in tone near baseFreq and measures
// the recording's actual base frequency. It consumes exactly the samples
// needed to lock plus a short settle period, leaving sbc positioned so the
// caller can keep pulling from it (e.g. into a HalfwaveStream) immediately
// after the lead-in.
func Calibrate(sbc *SignStream, baseFreq int, duration float64) (CalibrationResult, error) {
	if duration <= 0 {
		duration = DefaultLeadInDuration
	}

	sampleSize := int(float64(SampleRate) * duration)
	window := newRing(sampleSize)

	// Pre-fill the window to one sample short of full so the first sample
	// the loop below pushes completes it before the first lock check.
	for i := 0; i < sampleSize-1; i++ {
		v, err := sbc.Next()
		if err != nil {
			return CalibrationResult{}, fmt.Errorf("kcs: %w during lead-in prefill", ErrNoCarrier)
		}
		window.push(v)
	}

	expected := int(float64(baseFreq) * duration * 2)
	tolerance := baseFreq / 25
	chunk := SampleRate/10 - 1 // ~0.1s, to amortize the lock check.

	for {
		v, err := sbc.Next()
		if err != nil {
			return CalibrationResult{}, ErrNoCarrier
		}
		window.push(v)

		if abs(window.sum-expected) < tolerance {
			// Locked. Advance 0.2s further to skip any early junk,
			// then measure the actual base frequency.
			settle := SampleRate/5 - 1
			for i := 0; i < settle; i++ {
				v, err := sbc.Next()
				if err != nil {
					return CalibrationResult{}, fmt.Errorf("kcs: %w during lead-in settle", ErrNoCarrier)
				}
				window.push(v)
			}
			actual := int(float64(window.sum) / duration / 2)
			return CalibrationResult{ActualBaseFreq: actual}, nil
		}

		for i := 0; i < chunk; i++ {
			v, err := sbc.Next()
			if err != nil {
				return CalibrationResult{}, ErrNoCarrier
			}
			window.push(v)
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
