/*
NAME
  tokens.go

DESCRIPTION
  tokens.go holds the mnemonic token table for the Sharp PC-1211's BASIC
  tokenizer, used to translate between a listing's raw byte stream and its
  human-readable text.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pc1211

import "strings"

// tokensByByte maps a program byte to its textual mnemonic. Unlike
// fx502p's table, PC-1211 byte values without a defined token are
// rendered as "[XX]" rather than round-tripped through a placeholder
// mnemonic (see byteToToken).
var tokensByByte = map[byte]string{
	0x11: " ",
	0x12: "\"",
	0x13: "?",
	0x14: "!",
	0x15: "#",
	0x16: "%",
	0x17: "¥",
	0x18: "$",
	0x19: "π",
	0x1a: "√",
	0x1b: ",",
	0x1c: ";",
	0x1d: ":",
	0x30: "(",
	0x31: ")",
	0x32: ">",
	0x33: "<",
	0x34: "=",
	0x35: "+",
	0x36: "-",
	0x37: "*",
	0x38: "/",
	0x39: "^",
	0x40: "0",
	0x41: "1",
	0x42: "2",
	0x43: "3",
	0x44: "4",
	0x45: "5",
	0x46: "6",
	0x47: "7",
	0x48: "8",
	0x49: "9",
	0x4b: "|E",
	0x51: "A",
	0x52: "B",
	0x53: "C",
	0x54: "D",
	0x55: "E",
	0x56: "F",
	0x57: "G",
	0x58: "H",
	0x59: "I",
	0x5a: "J",
	0x5b: "K",
	0x5c: "L",
	0x5d: "M",
	0x5e: "N",
	0x5f: "O",
	0x60: "P",
	0x61: "Q",
	0x62: "R",
	0x63: "S",
	0x64: "T",
	0x65: "U",
	0x66: "V",
	0x67: "W",
	0x68: "X",
	0x69: "Y",
	0x6a: "Z",
	0x91: "STEP ",
	0x92: "THEN ",
	0xa0: "SIN ",
	0xa1: "COS ",
	0xa2: "TAN ",
	0xa3: "ASN ",
	0xa4: "ACS ",
	0xa5: "ATN ",
	0xa6: "EXP ",
	0xa7: "LN ",
	0xa8: "LOG ",
	0xa9: "INT ",
	0xaa: "ABS ",
	0xab: "SGN ",
	0xac: "DEG ",
	0xad: "DMS ",
	0xb0: "RUN ",
	0xb1: "NEW ",
	0xb2: "MEM ",
	0xb3: "LIST ",
	0xb4: "CONT ",
	0xb5: "DEBUG ",
	0xb6: "CSAVE ",
	0xb7: "CLOAD ",
	0xc0: "GRAD ",
	0xc1: "PRINT ",
	0xc2: "INPUT ",
	0xc3: "RADIAN ",
	0xc4: "DEGREE ",
	0xc5: "CLEAR ",
	0xd0: "IF ",
	0xd1: "FOR ",
	0xd2: "LET ",
	0xd3: "REM ",
	0xd4: "END ",
	0xd5: "NEXT ",
	0xd6: "STOP ",
	0xd7: "GOTO ",
	0xd8: "GOSUB ",
	0xd9: "CHAIN ",
	0xda: "PAUSE ",
	0xdb: "BEEP ",
	0xdc: "AREAD ",
	0xdd: "USING ",
	0xde: "RETURN ",
}

// tokensByText is the inverse of tokensByByte, plus the one-off "SQRT "
// convenience alias for "√" accepted on encode, built once at init time.
var tokensByText = func() map[string]byte {
	m := make(map[string]byte, len(tokensByByte)+1)
	for b, tok := range tokensByByte {
		m[strings.ToUpper(tok)] = b
	}
	m["SQRT "] = 0x1a
	return m
}()

// byteToToken renders byte b as its mnemonic, or "[XX]" if it has none.
func byteToToken(b byte) string {
	if tok, ok := tokensByByte[b]; ok {
		return tok
	}
	return "[" + hexUpper(b) + "]"
}

func hexUpper(b byte) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{digits[b>>4], digits[b&0xf]})
}
