/*
NAME
  byteframer.go

DESCRIPTION
  byteframer.go assembles/disassembles bytes from/to the bit stream according
  to a Config's bit pattern. Each byte starts fresh with accumulator=0,
  ones_count=0; the first S in the pattern resynchronizes on the
  carrier-to-start transition, any further S is just a plain expected-zero
  bit like a stop bit.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package kcs

// ByteFramerReader decodes bytes from a BitFramerReader according to a bit
// pattern.
type ByteFramerReader struct {
	bits    *BitFramerReader
	pattern []Symbol
}

// NewByteFramerReader returns a ByteFramerReader.
func NewByteFramerReader(bits *BitFramerReader, pattern []Symbol) *ByteFramerReader {
	return &ByteFramerReader{bits: bits, pattern: pattern}
}

// NextByte decodes one byte, searching for the start-bit lead-in transition
// on the first pattern symbol and failing with ErrParity if a parity symbol
// doesn't match the data bits seen so far.
func (y *ByteFramerReader) NextByte() (byte, error) {
	var acc byte
	ones := 0
	sawFirstStart := false

	for _, sym := range y.pattern {
		switch sym.Kind {
		case SymStart:
			if !sawFirstStart {
				if err := y.bits.StartSearch(); err != nil {
					return 0, err
				}
				sawFirstStart = true
				continue
			}
			if _, err := y.bits.NextBit(); err != nil {
				return 0, err
			}
		case SymData:
			b, err := y.bits.NextBit()
			if err != nil {
				return 0, err
			}
			if b == 1 {
				acc |= 1 << uint(sym.Index)
				ones++
			}
		case SymParityEven, SymParityOdd:
			b, err := y.bits.NextBit()
			if err != nil {
				return 0, err
			}
			want := ones % 2
			if sym.Kind == SymParityOdd {
				want = 1 - want
			}
			if b != want {
				return 0, ErrParity
			}
		case SymStop:
			if _, err := y.bits.NextBit(); err != nil {
				return 0, err
			}
		}
	}

	return acc, nil
}

// ByteFramerWriter encodes bytes onto a BitFramerWriter according to a bit
// pattern.
type ByteFramerWriter struct {
	bits    *BitFramerWriter
	pattern []Symbol
}

// NewByteFramerWriter returns a ByteFramerWriter.
func NewByteFramerWriter(bits *BitFramerWriter, pattern []Symbol) *ByteFramerWriter {
	return &ByteFramerWriter{bits: bits, pattern: pattern}
}

// WriteByte encodes one byte per the byte framer's bit pattern.
func (y *ByteFramerWriter) WriteByte(b byte) error {
	ones := 0

	for _, sym := range y.pattern {
		switch sym.Kind {
		case SymStart, SymStop:
			if sym.Kind == SymStop {
				if err := y.bits.WriteOne(); err != nil {
					return err
				}
			} else {
				if err := y.bits.WriteZero(); err != nil {
					return err
				}
			}
		case SymData:
			if b&(1<<uint(sym.Index)) != 0 {
				if err := y.bits.WriteOne(); err != nil {
					return err
				}
				ones++
			} else {
				if err := y.bits.WriteZero(); err != nil {
					return err
				}
			}
		case SymParityEven, SymParityOdd:
			want := ones % 2
			if sym.Kind == SymParityOdd {
				want = 1 - want
			}
			var err error
			if want == 1 {
				err = y.bits.WriteOne()
			} else {
				err = y.bits.WriteZero()
			}
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// WriteLeadIn emits a steady carrier tone of the given duration, for
// framing conventions that interleave idle tone between data blocks.
func (y *ByteFramerWriter) WriteLeadIn(duration float64) error {
	return y.bits.WriteLeadIn(duration)
}

// WriteBytes encodes each byte of data in turn.
func (y *ByteFramerWriter) WriteBytes(data []byte) error {
	for _, b := range data {
		if err := y.WriteByte(b); err != nil {
			return err
		}
	}
	return nil
}
