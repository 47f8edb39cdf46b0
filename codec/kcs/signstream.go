/*
NAME
  signstream.go

DESCRIPTION
  signstream.go turns a raw PCM byte stream into the sign-change stream
  (SBC): a 1 at every sample whose sign bit differs from the previous
  sample's, a 0 otherwise.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package kcs

import "io"

// SignStream reads raw PCM bytes from an underlying io.ByteReader and emits
// a 1 each time the sample's sign bit (the PCM byte's MSB) flips relative to
// the previous sample, 0 otherwise. The initial previous sign is 0, matching
// the reference implementation this was ported from.
//
// SignStream is finite: it reports io.EOF once the underlying reader is
// exhausted, and is restartable only by constructing a fresh one over a
// fresh byte source.
type SignStream struct {
	src      io.ByteReader
	lastSign byte
}

// NewSignStream returns a SignStream reading from src.
func NewSignStream(src io.ByteReader) *SignStream {
	return &SignStream{src: src}
}

// Next returns the next sign-change bit (0 or 1), or io.EOF when the
// underlying PCM stream is exhausted.
func (s *SignStream) Next() (int, error) {
	b, err := s.src.ReadByte()
	if err != nil {
		return 0, err
	}

	// The 0x80 bit is treated as a sign flag. This matches the unsigned
	// byte representation of signed 8-bit PCM (a +128 bias), preserved
	// here for bit-exact compatibility with existing recordings even
	// though PCM is nominally signed.
	sign := b & 0x80
	var changed int
	if sign != s.lastSign {
		changed = 1
	}
	s.lastSign = sign
	return changed, nil
}
