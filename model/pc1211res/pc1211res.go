/*
NAME
  pc1211res.go

DESCRIPTION
  pc1211res.go implements model.Model for the Sharp PC-1211's reserved-keys
  recording variant: the same 4000Hz/500baud frame, ident byte, and
  nibble-swapped filename block as the standard protocol, but a flat
  58-byte payload of reserved-key entries instead of BCD-numbered program
  lines. Framing, checksum bookkeeping, and the filename block are
  identical to the standard protocol and are reused from it directly;
  only the payload's record shape and the text representation differ.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pc1211res implements the Sharp PC-1211's reserved-keys tape
// recording variant, used to save the calculator's assignable function
// keys rather than a numbered program listing.
package pc1211res

import (
	"fmt"
	"strings"

	"github.com/ausocean/cstore/codec/kcs"
	"github.com/ausocean/cstore/model"
	"github.com/ausocean/cstore/model/pc1211"
	"github.com/pkg/errors"
)

// payloadLen is the fixed size of a reserved-keys recording: 9 bytes of
// ident and filename block, 48 bytes of reserved-key entries and padding,
// and a final EOF marker.
const payloadLen = 58

var (
	errBadIdent  = errors.New("pc1211res: unrecognized ident byte")
	errBadHeader = errors.New("pc1211res: malformed RESERVED header")
	errBadEntry  = errors.New("pc1211res: unrecognized reserved-key byte")
	errBadLength = errors.New("pc1211res: encoded payload is not 58 bytes")
)

// Codec implements model.Model for the PC-1211's reserved-keys variant. It
// reuses pc1211.Codec's framing (Config) and checksum-validated reading
// (ReadPayload) unchanged, since the underlying byte stream's shape is
// identical; only the payload's own record structure and text
// representation differ.
type Codec struct {
	base *pc1211.Codec
}

// New returns a PC-1211 reserved-keys Codec.
func New() *Codec { return &Codec{base: pc1211.New()} }

// Name implements model.Model.
func (c *Codec) Name() string { return "pc1211res" }

// Config implements model.Model, delegating to the standard PC-1211
// protocol's framing.
func (c *Codec) Config() kcs.Config { return c.base.Config() }

// ReadPayload implements model.Model, delegating to the standard PC-1211
// protocol's checksum-validated reader: a reserved-keys recording's
// framing and checksum placement are identical to a program recording's.
func (c *Codec) ReadPayload(br *kcs.ByteFramerReader) ([]byte, error) {
	return c.base.ReadPayload(br)
}

// WritePayload implements model.Model. Unlike a program recording, a
// reserved-keys recording has no special dispatch on line numbers or the
// EOF marker: every byte after the ident and filename block is written
// through the same checksum-tracked path, ending in a single pause.
func (c *Codec) WritePayload(bw *kcs.ByteFramerWriter, data []byte) error {
	if err := bw.WriteLeadIn(pc1211.LeadInSeconds); err != nil {
		return err
	}
	if len(data) < 9 || data[0] != pc1211.IdentByte {
		return fmt.Errorf("%w: %d bytes", errBadIdent, len(data))
	}

	if err := bw.WriteByte(data[0]); err != nil {
		return err
	}
	if err := pc1211.WriteChecksummedBytes(bw, data[1:9]); err != nil {
		return err
	}
	if err := bw.WriteLeadIn(pc1211.FilenamePauseSeconds); err != nil {
		return err
	}
	if err := pc1211.WriteChecksummedBytes(bw, data[9:]); err != nil {
		return err
	}
	return bw.WriteLeadIn(pc1211.EOFPauseSeconds)
}

// Decode implements model.Model.
func (c *Codec) Decode(data []byte) (string, error) {
	fname, err := pc1211.DecodeFilename(data)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.WriteString(fmt.Sprintf("RESERVED %q\n", fname))

	i := 9
	for i < len(data) && data[i] != pc1211.EOFMarker {
		if data[i] == 0x00 {
			i++
			continue
		}
		key, ok := reservedByByte[data[i]]
		if !ok {
			return "", fmt.Errorf("%w: 0x%02X", errBadEntry, data[i])
		}
		out.WriteString(key)
		i++

		for i < len(data) && data[i] != pc1211.EOFMarker && data[i] != 0x00 {
			if _, isKey := reservedByByte[data[i]]; isKey {
				break
			}
			out.WriteString(pc1211.ByteToToken(data[i]))
			i++
		}
		out.WriteString("\n")
	}

	return out.String(), nil
}

// Encode implements model.Model, padding the encoded entries with NUL
// bytes and an EOF marker to a fixed 58-byte payload.
func (c *Codec) Encode(text string) ([]byte, error) {
	lines := strings.Split(strings.ToUpper(strings.TrimSpace(text)), "\n")
	if len(lines) == 0 {
		return nil, errBadHeader
	}

	fname, ok := parseHeader(strings.TrimSpace(lines[0]))
	if !ok {
		return nil, fmt.Errorf("%w: %q", errBadHeader, lines[0])
	}

	fbytes, err := pc1211.FilenameBytes(fname)
	if err != nil {
		return nil, err
	}
	data := []byte{pc1211.IdentByte}
	data = append(data, fbytes[:]...)
	data = append(data, 0x5f)

	var errs model.ParseError
	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if len(line) < 2 {
			errs = append(errs, fmt.Errorf("%w: %q", errBadEntry, line))
			continue
		}
		key, ok := reservedByText[line[:2]]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", errBadEntry, line[:2]))
			continue
		}
		tok, err := pc1211.TokenizeLine(line[2:])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		data = append(data, key)
		data = append(data, tok...)
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if len(data)+1 > payloadLen {
		return nil, fmt.Errorf("%w: %d bytes of entries exceeds capacity", errBadLength, len(data)-9)
	}
	for len(data) < payloadLen-1 {
		data = append(data, 0x00)
	}
	data = append(data, pc1211.EOFMarker)

	if len(data) != payloadLen {
		return nil, fmt.Errorf("%w: got %d", errBadLength, len(data))
	}
	return data, nil
}

// parseHeader extracts the quoted filename from a `RESERVED "NAME"` header
// line.
func parseHeader(line string) (string, bool) {
	const prefix = "RESERVED"
	if !strings.HasPrefix(line, prefix) {
		return "", false
	}
	rest := strings.TrimSpace(line[len(prefix):])
	if len(rest) < 2 || rest[0] != '"' || rest[len(rest)-1] != '"' {
		return "", false
	}
	return rest[1 : len(rest)-1], true
}
