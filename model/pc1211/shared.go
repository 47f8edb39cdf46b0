/*
NAME
  shared.go

DESCRIPTION
  shared.go exports the pieces of the PC-1211 protocol that the
  reserved-keys variant (model/pc1211res) reuses as-is: the ident byte,
  EOF marker, nibble swap, filename block framing, and the running
  checksum's byte-emission loop. The reserved-keys variant differs only
  in how it tokenizes a line's content, not in any of this.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pc1211

import (
	"fmt"
	"strings"

	"github.com/ausocean/cstore/codec/kcs"
)

// Exported protocol constants shared with the reserved-keys variant.
const (
	IdentByte = identByte
	EOFMarker = eofMarker

	LeadInSeconds        = leadInSeconds
	FilenamePauseSeconds = filenamePauseSeconds
	EOFPauseSeconds      = eofPauseSeconds
	IdlePauseSeconds     = idlePauseSeconds
)

// SwapNibbles exchanges the high and low nibble of b.
func SwapNibbles(b byte) byte { return swapNibbles(b) }

// ByteToToken renders byte b as its mnemonic, or "[XX]" if it has none.
func ByteToToken(b byte) string { return byteToToken(b) }

// TokenizeLine converts a line's text content into token bytes, greedily
// matching the longest known mnemonic at each position.
func TokenizeLine(line string) ([]byte, error) { return tokenizeLine(line) }

// FilenameBytes builds the 7-byte nibble-swapped, reverse-order,
// zero-padded filename block the PC-1211 family stores on tape.
func FilenameBytes(fname string) ([7]byte, error) { return filenameBytes(fname) }

// DecodeFilename extracts the 7-character filename from a recording's
// ident-and-filename block (data[0] through data[7]).
func DecodeFilename(data []byte) (string, error) {
	if len(data) < 8 || data[0] != identByte {
		return "", fmt.Errorf("%w: 0x%02X", errBadIdent, data[0])
	}
	var fname strings.Builder
	for i := 7; i >= 1; i-- {
		b := swapNibbles(data[i])
		if b != 0 {
			fname.WriteString(byteToToken(b))
		}
	}
	return fname.String(), nil
}

// WriteChecksummedBytes writes each byte of data, emitting the running
// checksum every 8th byte and resetting with a 4-second idle tone every
// 80th, exactly as a normal line-data write does. It does not emit a
// lead-in or a trailing pause; callers add those for their own framing.
func WriteChecksummedBytes(bw *kcs.ByteFramerWriter, data []byte) error {
	var cs checksumState
	for _, b := range data {
		if err := bw.WriteByte(b); err != nil {
			return err
		}
		cs.add(b)
		if cs.count%8 == 0 {
			if err := bw.WriteByte(cs.byte()); err != nil {
				return err
			}
			if cs.count == 80 {
				cs.reset()
				if err := bw.WriteLeadIn(idlePauseSeconds); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
