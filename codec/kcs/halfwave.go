/*
NAME
  halfwave.go

DESCRIPTION
  halfwave.go collapses a sign-change stream into a stream of classified
  half-waves: the run-length between consecutive sign changes is compared
  against the calibrated midpoint to decide ZERO vs ONE.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package kcs

// Halfwave classifies the interval between two consecutive sign changes.
type Halfwave int

const (
	HalfwaveOne Halfwave = iota
	HalfwaveZero
)

func (h Halfwave) String() string {
	if h == HalfwaveOne {
		return "."
	}
	return "#"
}

// HalfwaveStream classifies a SignStream's run-lengths into ZERO/ONE
// half-waves using a midpoint threshold in samples. Runs of two samples or
// fewer are debounce noise and are folded into the next run.
type HalfwaveStream struct {
	sbc      *SignStream
	midpoint int
	n        int

	// runLens records every emitted run length, for diagnostics (see
	// CalibrationReport). Callers that don't want the bookkeeping can
	// ignore it.
	runLens []int
}

// NewHalfwaveStream returns a HalfwaveStream reading from sbc, classifying
// with the given midpoint (see Midpoint).
func NewHalfwaveStream(sbc *SignStream, midpoint int) *HalfwaveStream {
	return &HalfwaveStream{sbc: sbc, midpoint: midpoint}
}

// Next returns the next classified half-wave.
func (h *HalfwaveStream) Next() (Halfwave, error) {
	for {
		s, err := h.sbc.Next()
		if err != nil {
			return 0, err
		}
		h.n++
		if s != 0 && h.n > 2 {
			n := h.n
			h.n = 0
			h.runLens = append(h.runLens, n)
			if n <= h.midpoint {
				return HalfwaveOne, nil
			}
			return HalfwaveZero, nil
		}
	}
}

// RunLengths returns the sample-count run length of every half-wave emitted
// so far, for debug diagnostics (see device/tape.DumpHistogram).
func (h *HalfwaveStream) RunLengths() []int { return h.runLens }
