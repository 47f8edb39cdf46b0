/*
NAME
  pattern.go

DESCRIPTION
  pattern.go parses the compact bit-pattern mini-language used to describe a
  byte's wire framing ("S01234567E--" and friends) into a sequence of tagged
  Symbol values that the bit and byte framers walk in lock-step for both
  decode and encode.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package kcs

import "fmt"

// SymbolKind identifies the role a Symbol plays in a byte's wire frame.
type SymbolKind int

const (
	SymStart SymbolKind = iota
	SymData
	SymParityEven
	SymParityOdd
	SymStop
)

// Symbol is one tagged position in a bit pattern. Index is only meaningful
// for SymData, and holds the bit position (0..7) in the decoded byte that
// this wire position contributes to.
type Symbol struct {
	Kind  SymbolKind
	Index int
}

// ParsePattern parses a bit-pattern string over the alphabet {S,0..7,E,O,-}.
// At least one S must appear (more are allowed for models like PC-1211 that
// frame two start-like bits per byte), and data-bit digits must be unique.
func ParsePattern(s string) ([]Symbol, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty pattern", ErrBadPattern)
	}

	var pattern []Symbol
	seen := make(map[int]bool)
	sawStart := false

	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == 'S':
			pattern = append(pattern, Symbol{Kind: SymStart})
			sawStart = true
		case c >= '0' && c <= '7':
			idx := int(c - '0')
			if seen[idx] {
				return nil, fmt.Errorf("%w: data bit %d repeated", ErrBadPattern, idx)
			}
			seen[idx] = true
			pattern = append(pattern, Symbol{Kind: SymData, Index: idx})
		case c == 'E':
			pattern = append(pattern, Symbol{Kind: SymParityEven})
		case c == 'O':
			pattern = append(pattern, Symbol{Kind: SymParityOdd})
		case c == '-':
			pattern = append(pattern, Symbol{Kind: SymStop})
		default:
			return nil, fmt.Errorf("%w: unrecognized symbol %q", ErrBadPattern, c)
		}
	}

	if !sawStart || pattern[0].Kind != SymStart {
		return nil, fmt.Errorf("%w: pattern must begin with S", ErrBadPattern)
	}

	return pattern, nil
}

// NewPattern synthesizes a bit pattern from the equivalent
// (databits, parity, stopbits) configuration:
// "S" + "0".."(databits-1)" + {"E"|"O"|""} + "-"×stopbits.
func NewPattern(databits int, parity Parity, stopbits int) ([]Symbol, error) {
	if databits < 1 || databits > 8 {
		return nil, fmt.Errorf("%w: databits %d out of range", ErrBadPattern, databits)
	}
	if stopbits < 0 {
		return nil, fmt.Errorf("%w: negative stopbits", ErrBadPattern)
	}

	s := "S"
	for i := 0; i < databits; i++ {
		s += fmt.Sprintf("%d", i)
	}
	switch parity {
	case ParityEven:
		s += "E"
	case ParityOdd:
		s += "O"
	case ParityNone:
	default:
		return nil, fmt.Errorf("%w: unknown parity %d", ErrBadPattern, parity)
	}
	for i := 0; i < stopbits; i++ {
		s += "-"
	}

	return ParsePattern(s)
}
