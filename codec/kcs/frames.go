/*
NAME
  frames.go

DESCRIPTION
  frames.go synthesizes the PCM waveforms the encoder emits for a ZERO bit
  and a ONE bit: a ONE half-wave is a square wave cycle at BaseFreq, a ZERO
  half-wave is the same but at half the frequency (double the period).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package kcs

// Amplitude levels used for the encoder's square waves.
const (
	ampHigh = 120
	ampLow  = -120 // wraps to 0x88 when cast to a PCM byte.
)

// Frames holds the precomputed PCM byte sequences for one ZERO bit and one
// ONE bit, sized so that both last exactly 1/Baud seconds.
type Frames struct {
	Zero []byte
	One  []byte
}

// NewFrames builds the ZERO/ONE frame sequences for cfg: the ZERO frame is a
// half-rate square wave, the ONE frame a full-rate one, each repeated enough
// cycles to fill one bit period.
func NewFrames(cfg Config) Frames {
	fphw := SampleRate / cfg.BaseFreq / 2 // samples per half-period of the ONE tone.
	hwLen0, hwLen1 := cfg.HalfwaveCounts()
	cycles0 := hwLen0 / 2
	cycles1 := hwLen1 / 2

	low := int8(ampLow)

	oneCycle := make([]byte, 0, fphw*2)
	for i := 0; i < fphw; i++ {
		oneCycle = append(oneCycle, ampHigh)
	}
	for i := 0; i < fphw; i++ {
		oneCycle = append(oneCycle, byte(low))
	}

	zeroCycle := make([]byte, 0, fphw*4)
	for i := 0; i < fphw*2; i++ {
		zeroCycle = append(zeroCycle, ampHigh)
	}
	for i := 0; i < fphw*2; i++ {
		zeroCycle = append(zeroCycle, byte(low))
	}

	one := make([]byte, 0, len(oneCycle)*cycles1)
	for i := 0; i < cycles1; i++ {
		one = append(one, oneCycle...)
	}

	zero := make([]byte, 0, len(zeroCycle)*cycles0)
	for i := 0; i < cycles0; i++ {
		zero = append(zero, zeroCycle...)
	}

	return Frames{Zero: zero, One: one}
}
