/*
NAME
  pc1211res_test.go

DESCRIPTION
  pc1211res_test.go contains functions for testing the pc1211res package.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pc1211res

import (
	"errors"
	"strings"
	"testing"

	"github.com/ausocean/cstore/model"
)

func TestConfigMatchesPC1211(t *testing.T) {
	c := New()
	cfg := c.Config()
	if cfg.BaseFreq != 4000 || cfg.Baud != 500 {
		t.Fatalf("Config: got BaseFreq=%d Baud=%d, want 4000/500", cfg.BaseFreq, cfg.Baud)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New()
	text := `RESERVED "KEYS"
A:1 EXE
B:2 EXE
`
	data, err := c.Encode(text)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) != payloadLen {
		t.Fatalf("Encode: got %d bytes, want %d", len(data), payloadLen)
	}
	if data[len(data)-1] != 0xF0 {
		t.Fatalf("Encode: last byte = 0x%02X, want EOF marker", data[len(data)-1])
	}

	got, err := c.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !strings.Contains(got, `RESERVED "KEYS"`) {
		t.Fatalf("Decode: missing filename header in %q", got)
	}
	if !strings.Contains(got, "A:") || !strings.Contains(got, "B:") {
		t.Fatalf("Decode: missing reserved-key markers in %q", got)
	}
}

func TestEncodeFixedLength(t *testing.T) {
	c := New()
	data, err := c.Encode(`RESERVED "X"
A:1
`)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if len(data) != 58 {
		t.Fatalf("Encode: got %d bytes, want exactly 58", len(data))
	}
}

func TestEncodeUnknownReservedKeyAccumulatesError(t *testing.T) {
	c := New()
	_, err := c.Encode("RESERVED \"X\"\nQ:1\n")
	if err == nil {
		t.Fatal("Encode: expected an error for an unrecognized reserved-key byte")
	}
	var pe model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Encode: got %T, want model.ParseError", err)
	}
}

func TestEncodeBadHeaderRejected(t *testing.T) {
	c := New()
	if _, err := c.Encode("NOT A HEADER\n"); !errors.Is(err, errBadHeader) {
		t.Fatalf("Encode: got %v, want errBadHeader", err)
	}
}

func TestEncodeTooManyEntriesRejected(t *testing.T) {
	c := New()
	var b strings.Builder
	b.WriteString("RESERVED \"X\"\n")
	for i := 0; i < 60; i++ {
		b.WriteString("A:1 2 3 4 5 6 7 8 9\n")
	}
	if _, err := c.Encode(b.String()); !errors.Is(err, errBadLength) {
		t.Fatalf("Encode: got %v, want errBadLength", err)
	}
}

func TestDecodeBadIdentRejected(t *testing.T) {
	c := New()
	data := make([]byte, 10)
	if _, err := c.Decode(data); err == nil {
		t.Fatal("Decode: expected an error for a non-ident first byte")
	}
}
