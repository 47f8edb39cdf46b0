/*
NAME
  fx502p.go

DESCRIPTION
  fx502p.go implements model.Model for the CASIO FX-502P's tape protocol: an
  8E2 frame at 2400Hz/300baud, a two-byte BCD header identifying a program
  ("FPnnn") or a memory dump ("F nnn"), and a 128-byte 0xFF run marking end
  of data.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package fx502p implements the CASIO FX-502P calculator's tape protocol.
package fx502p

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ausocean/cstore/codec/kcs"
	"github.com/ausocean/cstore/model"
	"github.com/pkg/errors"
)

// eofByte marks the end of a recording: the encoder emits 128 of them after
// the payload, the decoder stops at the first one.
const eofByte = 0xFF

// leadInSeconds is how long the encoder holds a steady carrier before the
// first framed byte.
const leadInSeconds = 4.0

// eofRunLength is how many eofByte bytes the encoder appends after payload
// data, matching the margin the original hardware leaves for a decoder
// that's still catching up on lead-in detection.
const eofRunLength = 128

var (
	errNoHeader  = errors.New("fx502p: no program or memory header found")
	errBadHeader = errors.New("fx502p: malformed header line")
)

// Codec implements model.Model for the FX-502P.
type Codec struct{}

// New returns an FX-502P Codec.
func New() *Codec { return &Codec{} }

// Name implements model.Model.
func (c *Codec) Name() string { return "fx502p" }

// Config implements model.Model: 8 data bits, even parity, two stop bits.
func (c *Codec) Config() kcs.Config {
	pattern, err := kcs.NewPattern(8, kcs.ParityEven, 2)
	if err != nil {
		panic(fmt.Sprintf("fx502p: invalid built-in pattern: %v", err))
	}
	return kcs.Config{BaseFreq: 2400, Baud: 300, Pattern: pattern}
}

// ReadPayload reads bytes until the first 0xFF, which is the FX-502P's end
// of data marker.
func (c *Codec) ReadPayload(br *kcs.ByteFramerReader) ([]byte, error) {
	var data []byte
	for {
		b, err := br.NextByte()
		if err != nil {
			return nil, err
		}
		if b == eofByte {
			return data, nil
		}
		data = append(data, b)
	}
}

// WritePayload writes a 4-second lead-in, the payload, then 128 EOF bytes.
func (c *Codec) WritePayload(bw *kcs.ByteFramerWriter, data []byte) error {
	if err := bw.WriteLeadIn(leadInSeconds); err != nil {
		return err
	}
	if err := bw.WriteBytes(data); err != nil {
		return err
	}
	trailer := make([]byte, eofRunLength)
	for i := range trailer {
		trailer[i] = eofByte
	}
	return bw.WriteBytes(trailer)
}

// LeadInSeconds returns the duration of steady carrier this model expects
// before the first framed byte.
func (c *Codec) LeadInSeconds() float64 { return leadInSeconds }

// Decode implements model.Model.
func (c *Codec) Decode(data []byte) (string, error) {
	if len(data) < 2 {
		return "", fmt.Errorf("fx502p: payload too short (%d bytes)", len(data))
	}

	start := fmt.Sprintf("%02X%02X", data[1], data[0])

	switch {
	case start[0] == 'B':
		return decodeProgram(start, data[2:])
	case start[0] == 'F':
		return decodeMemory(start, data[2:])
	default:
		return "", fmt.Errorf("%w: %q", errNoHeader, start)
	}
}

func decodeProgram(start string, data []byte) (string, error) {
	var out strings.Builder
	out.WriteString("FP" + start[1:])

	var line []string
	flush := func() {
		if len(line) > 0 {
			out.WriteString("\n    " + strings.Join(line, " "))
			line = nil
		}
	}

	for _, b := range data {
		tok, ok := tokensByByte[b]
		if !ok {
			tok = fmt.Sprintf("0x%02X", b)
		}

		if strings.HasSuffix(tok, ":") {
			flush()
			out.WriteString("\n")
			if tok[0] == 'P' {
				out.WriteString(tok)
			} else {
				out.WriteString("  " + tok)
			}
			continue
		}

		line = append(line, tok)
		if len(strings.Join(line, " ")) >= 70 {
			flush()
		}
	}
	flush()
	out.WriteString("\n")
	return out.String(), nil
}

func decodeMemory(start string, data []byte) (string, error) {
	var out strings.Builder
	out.WriteString("F " + start[1:] + "\n")

	for _, reg := range memorySeq {
		if len(data) < 8 {
			break
		}
		val, err := bytesToNumber(data[:8])
		data = data[8:]
		if err != nil {
			return "", err
		}
		if val != "0" {
			out.WriteString(reg + ": " + val + "\n")
		}
	}
	return out.String() + "\n", nil
}

// bytesToNumber decodes an 8-byte BCD-encoded FX-502P float: a BCD exponent
// byte, a flags byte, then 6 BCD mantissa bytes in reverse order.
func bytesToNumber(data []byte) (string, error) {
	if len(data) != 8 {
		return "", fmt.Errorf("fx502p: number field must be 8 bytes, got %d", len(data))
	}

	exponent := int(bcdByte(data[0]))
	flags := data[1]

	var digits strings.Builder
	for i := 7; i >= 2; i-- {
		digits.WriteString(fmt.Sprintf("%02X", data[i]))
	}
	d := digits.String()
	if len(d) < 2 {
		return "", errors.New("fx502p: mantissa too short")
	}

	mantissa := d[1:2] + "." + d[2:]
	val, err := strconv.ParseFloat(mantissa, 64)
	if err != nil {
		return "", fmt.Errorf("fx502p: invalid mantissa %q: %w", mantissa, err)
	}

	if flags&0x08 != 0 {
		val = -val
	}

	var sval string
	if flags&0x01 != 0 {
		sval = fmt.Sprintf("%se%d", strconv.FormatFloat(val, 'g', -1, 64), exponent)
	} else {
		sval = fmt.Sprintf("%se-%d", strconv.FormatFloat(val, 'g', -1, 64), 100-exponent)
	}
	out, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return "", fmt.Errorf("fx502p: invalid encoded number %q: %w", sval, err)
	}
	return strconv.FormatFloat(out, 'g', -1, 64), nil
}

// bcdByte reads a byte whose two nibbles are each a decimal digit (0-9) as
// the two-digit decimal number they spell out in hex notation, e.g. 0x23
// means the decimal number 23.
func bcdByte(b byte) int {
	s := fmt.Sprintf("%02X", b)
	n, _ := strconv.Atoi(s)
	return n
}

// Encode implements model.Model.
func (c *Codec) Encode(text string) ([]byte, error) {
	lines := usableLines(text)
	if len(lines) == 0 {
		return nil, errNoHeader
	}

	header := lines[0]
	lines = lines[1:]

	if len(header) != 5 || (header[:2] != "FP" && header[:2] != "F ") {
		return nil, fmt.Errorf("%w: %q", errBadHeader, header)
	}
	num, err := strconv.Atoi(header[2:])
	if err != nil || num < 0 || num > 999 {
		return nil, fmt.Errorf("%w: %q", errBadHeader, header)
	}

	if header[:2] == "FP" {
		return encodeProgram(header, lines)
	}
	return encodeMemory(header, lines)
}

// usableLines splits text into trimmed, uppercased, non-blank,
// non-comment lines, mirroring how a saved listing is normally transcribed.
func usableLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, strings.ToUpper(line))
	}
	return out
}

func encodeProgram(header string, lines []string) ([]byte, error) {
	data := []byte{
		byte(hexByte(header[3:])),
		byte(hexByte("B" + header[2:3])),
	}

	var errs model.ParseError
	for i, line := range lines {
		for _, tok := range strings.Fields(line) {
			if tok == "INV" {
				continue
			}
			b, ok := tokensByText[tok]
			if !ok {
				errs = append(errs, fmt.Errorf("line %d: unrecognized token %q", i, tok))
				continue
			}
			data = append(data, b)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return data, nil
}

func encodeMemory(header string, lines []string) ([]byte, error) {
	data := []byte{
		byte(hexByte(header[3:])),
		byte(hexByte("F" + header[2:3])),
	}

	registers := make(map[string]float64, len(memorySeq))
	for _, reg := range memorySeq {
		registers[reg] = 0.0
	}

	var errs model.ParseError
	for i, line := range lines {
		name, val, ok := strings.Cut(line, ":")
		if !ok {
			errs = append(errs, fmt.Errorf("line %d: invalid format %q", i, line))
			continue
		}
		name = strings.TrimSpace(name)
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		if _, ok := registers[name]; !ok {
			errs = append(errs, fmt.Errorf("line %d: unknown register %q", i, name))
			continue
		}
		registers[name] = f
	}
	if len(errs) > 0 {
		return nil, errs
	}

	for _, reg := range memorySeq {
		data = append(data, numberToBytes(registers[reg])...)
	}
	return data, nil
}

// numberToBytes is the inverse of bytesToNumber.
func numberToBytes(val float64) []byte {
	if val == 0.0 {
		return make([]byte, 8)
	}

	neg := val < 0
	if neg {
		val = -val
	}

	mantissa := fmt.Sprintf("%.9e", val)
	digitPart, expPart, _ := strings.Cut(mantissa, "e")
	whole, frac, _ := strings.Cut(digitPart, ".")

	expVal, _ := strconv.Atoi(strings.TrimPrefix(expPart, "+"))
	negExp := strings.HasPrefix(expPart, "-")

	var flags byte
	if neg {
		flags |= 0x08
	}

	out := make([]byte, 0, 8)
	if negExp {
		out = append(out, hexByte(fmt.Sprintf("%02d", 100+expVal)))
	} else {
		flags |= 0x01
		out = append(out, hexByte(fmt.Sprintf("%02d", expVal)))
	}
	out = append(out, flags)

	digits := "0" + whole + frac + "0"
	for i := 10; i >= 0; i -= 2 {
		if i+2 > len(digits) {
			continue
		}
		out = append(out, hexByte(digits[i:i+2]))
	}
	return out
}

// hexByte interprets s as two hex digits (matching the original's int(s,16)
// idiom for BCD values), returning 0 if s isn't valid.
func hexByte(s string) byte {
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return byte(n)
}

// FindHeader scans payload bytes for the first valid FX-502P header (a
// 'B' or 'F' followed by three BCD digits, two bytes, reverse order), and
// returns the data starting at that header. This lets a decode resync past
// leading garbage a worn tape sometimes introduces before the real header.
func FindHeader(data []byte) ([]byte, error) {
	for i := 0; i+1 < len(data); i++ {
		start := fmt.Sprintf("%02X%02X", data[i+1], data[i])
		if (start[0] == 'B' || start[0] == 'F') && isDigits(start[1:]) {
			return data[i:], nil
		}
	}
	return nil, errNoHeader
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
