/*
NAME
  bitframer.go

DESCRIPTION
  bitframer.go implements the bit-level decode and encode primitives: start
  search over half-waves, mid-buffer bit sampling on read, and square-wave
  emission on write.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package kcs

import "io"

// BitFramerReader decodes a half-wave stream into bits. A fresh instance
// must call StartSearch once before the first NextBit, and again whenever
// the byte framer needs to resynchronize on a lead-to-start transition.
type BitFramerReader struct {
	hw             *HalfwaveStream
	hwLen0, hwLen1 int
	buf            []Halfwave
}

// NewBitFramerReader returns a BitFramerReader pulling half-waves from hw.
func NewBitFramerReader(hw *HalfwaveStream, hwLen0, hwLen1 int) *BitFramerReader {
	return &BitFramerReader{hw: hw, hwLen0: hwLen0, hwLen1: hwLen1}
}

func (b *BitFramerReader) fill(n int) error {
	for i := 0; i < n; i++ {
		v, err := b.hw.Next()
		if err != nil {
			return err
		}
		b.buf = append(b.buf, v)
	}
	return nil
}

func (b *BitFramerReader) advance(n int) error {
	if n > len(b.buf) {
		n = len(b.buf)
	}
	b.buf = b.buf[n:]
	return b.fill(n)
}

// StartSearch consumes half-waves until it sees the robust lead-to-start
// transition (two ONE half-waves followed by four ZERO half-waves), skips
// hwLen0 more half-waves to land on a bit boundary, then pre-fills the
// sliding buffer so the next NextBit call samples the first data bit.
func (b *BitFramerReader) StartSearch() error {
	var recent [6]Halfwave
	n := 0

	for {
		v, err := b.hw.Next()
		if err != nil {
			return err
		}
		if n < 6 {
			recent[n] = v
			n++
		} else {
			copy(recent[:], recent[1:])
			recent[5] = v
		}

		if n == 6 &&
			recent[0] == HalfwaveOne && recent[1] == HalfwaveOne &&
			recent[2] == HalfwaveZero && recent[3] == HalfwaveZero &&
			recent[4] == HalfwaveZero && recent[5] == HalfwaveZero {
			for i := 0; i < b.hwLen0; i++ {
				if _, err := b.hw.Next(); err != nil {
					return err
				}
			}
			b.buf = b.buf[:0]
			return b.fill(b.hwLen1)
		}
	}
}

// NextBit samples the middle of the sliding buffer to decide between a
// ZERO bit (short pattern, checked first) and a ONE bit, advancing the
// buffer by the matching half-wave count. It returns ErrBitDecode if
// neither pattern is recognized at the boundary.
func (b *BitFramerReader) NextBit() (int, error) {
	if len(b.buf) < b.hwLen1 {
		if err := b.fill(b.hwLen1 - len(b.buf)); err != nil {
			return 0, err
		}
	}

	if b.buf[b.hwLen0/2] == HalfwaveZero {
		if err := b.advance(b.hwLen0); err != nil {
			return 0, err
		}
		return 0, nil
	}

	if b.buf[b.hwLen1/2] == HalfwaveOne {
		if err := b.advance(b.hwLen1); err != nil {
			return 0, err
		}
		return 1, nil
	}

	return 0, ErrBitDecode
}

// BitFramerWriter emits the PCM waveform for ZERO/ONE bits and lead-in tones.
type BitFramerWriter struct {
	w      io.Writer
	frames Frames
}

// NewBitFramerWriter returns a BitFramerWriter writing frames to w.
func NewBitFramerWriter(w io.Writer, frames Frames) *BitFramerWriter {
	return &BitFramerWriter{w: w, frames: frames}
}

// WriteZero emits one ZERO-bit waveform.
func (b *BitFramerWriter) WriteZero() error {
	_, err := b.w.Write(b.frames.Zero)
	return err
}

// WriteOne emits one ONE-bit waveform.
func (b *BitFramerWriter) WriteOne() error {
	_, err := b.w.Write(b.frames.One)
	return err
}

// WriteLeadIn emits a steady ONE tone for the given duration, in seconds.
func (b *BitFramerWriter) WriteLeadIn(duration float64) error {
	if len(b.frames.One) == 0 {
		return nil
	}
	numWaves := int(float64(SampleRate) / float64(len(b.frames.One)) * duration)
	for i := 0; i < numWaves; i++ {
		if err := b.WriteOne(); err != nil {
			return err
		}
	}
	return nil
}
