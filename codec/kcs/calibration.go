/*
NAME
  calibration.go

DESCRIPTION
  calibration.go summarizes the half-wave run lengths a decode pass observed,
  for operators diagnosing a marginal or noisy recording.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package kcs

import "gonum.org/v1/gonum/stat"

// CalibrationReport summarizes the distribution of half-wave run lengths
// seen during a decode, split by classified value. A healthy recording
// shows two tight, well-separated clusters either side of the midpoint
// used to classify them; a noisy one shows wide spread or overlap.
type CalibrationReport struct {
	Midpoint int

	OneMean, OneStdDev   float64
	ZeroMean, ZeroStdDev float64

	OneCount, ZeroCount int
}

// NewCalibrationReport computes a CalibrationReport from the run lengths
// recorded by a HalfwaveStream over the course of a decode.
func NewCalibrationReport(midpoint int, runLens []int) CalibrationReport {
	var ones, zeros []float64
	for _, n := range runLens {
		if n <= midpoint {
			ones = append(ones, float64(n))
		} else {
			zeros = append(zeros, float64(n))
		}
	}

	r := CalibrationReport{
		Midpoint:  midpoint,
		OneCount:  len(ones),
		ZeroCount: len(zeros),
	}
	if len(ones) > 0 {
		r.OneMean = stat.Mean(ones, nil)
		r.OneStdDev = stat.StdDev(ones, nil)
	}
	if len(zeros) > 0 {
		r.ZeroMean = stat.Mean(zeros, nil)
		r.ZeroStdDev = stat.StdDev(zeros, nil)
	}
	return r
}
