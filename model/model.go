/*
NAME
  model.go

DESCRIPTION
  model.go provides Model, an interface describing a calculator's tape
  protocol: its kcs.Config and the byte-level framing a recording uses for
  its header and payload, plus ParseError, which aggregates every issue
  an encode finds in a text listing so they are reported together.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package model provides the shared interface every supported calculator
// protocol implements, plus error aggregation used across them.
package model

import (
	"fmt"

	"github.com/ausocean/cstore/codec/kcs"
)

// Model describes a calculator's tape protocol: the kcs.Config it frames
// bytes with, how it delimits one recording's payload within the framed
// byte stream (an EOF sentinel for some models, a running checksum for
// others), and the conversion between those payload bytes and the
// calculator's own program/memory text representation.
type Model interface {
	// Name returns the model's identifying name, e.g. "fx502p".
	Name() string

	// Config returns the kcs.Config this model frames its bytes with.
	Config() kcs.Config

	// ReadPayload pulls exactly one recording's worth of bytes off br,
	// using whatever termination convention this model's protocol uses.
	ReadPayload(br *kcs.ByteFramerReader) ([]byte, error)

	// WritePayload frames data onto bw, including any lead-in, checksum,
	// or end-of-data marker this model's protocol requires.
	WritePayload(bw *kcs.ByteFramerWriter, data []byte) error

	// Decode converts a recording's payload bytes into the model's
	// human-readable text representation.
	Decode(data []byte) (text string, err error)

	// Encode converts a model's human-readable text representation back
	// into the raw payload bytes WritePayload should frame.
	Encode(text string) (data []byte, err error)
}

// ParseError aggregates every issue found while encoding a text listing,
// so all offending lines are reported at once rather than only the first.
// An Encode that returns a ParseError returns no payload bytes.
type ParseError []error

func (pe ParseError) Error() string {
	if len(pe) == 0 {
		panic("model: invalid use of ParseError")
	}
	return fmt.Sprintf("%v", []error(pe))
}
