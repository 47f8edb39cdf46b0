/*
NAME
  tokens.go

DESCRIPTION
  tokens.go holds the mnemonic token table for every possible FX-502P
  program byte value, used to translate between a program's raw byte stream
  and its human-readable keystroke listing.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package fx502p

import "strings"

// tokensByByte maps every one of the 256 possible program byte values to
// its keystroke mnemonic. Some values (e.g. 0x2b) have no assigned
// keystroke on this model and are given a placeholder token so they still
// round-trip.
var tokensByByte = map[byte]string{
	0x00: "P0:",
	0x01: "P1:",
	0x02: "P2:",
	0x03: "P3:",
	0x04: "P4:",
	0x05: "P5:",
	0x06: "P6:",
	0x07: "P7:",
	0x08: "P8:",
	0x09: "P9:",
	0x0a: "0",
	0x0b: "1",
	0x0c: "2",
	0x0d: "3",
	0x0e: ".",
	0x0f: "EXP",
	0x10: "RND0",
	0x11: "RND1",
	0x12: "RND2",
	0x13: "RND3",
	0x14: "RND4",
	0x15: "RND5",
	0x16: "RND6",
	0x17: "RND7",
	0x18: "RND8",
	0x19: "RND9",
	0x1a: "4",
	0x1b: "5",
	0x1c: "6",
	0x1d: "7",
	0x1e: "8",
	0x1f: "9",
	0x20: "LBL0:",
	0x21: "LBL1:",
	0x22: "LBL2:",
	0x23: "LBL3:",
	0x24: "LBL4:",
	0x25: "LBL5:",
	0x26: "LBL6:",
	0x27: "LBL7:",
	0x28: "LBL8:",
	0x29: "LBL9:",
	0x2a: "HLT",
	0x2b: "??2b??",
	0x2c: "??2c??",
	0x2d: "??2d??",
	0x2e: "??2e??",
	0x2f: "??2f??",
	0x30: "GOTO0",
	0x31: "GOTO1",
	0x32: "GOTO2",
	0x33: "GOTO3",
	0x34: "GOTO4",
	0x35: "GOTO5",
	0x36: "GOTO6",
	0x37: "GOTO7",
	0x38: "GOTO8",
	0x39: "GOTO9",
	0x3a: "??3a??",
	0x3b: "??3b??",
	0x3c: "ENG",
	0x3d: "ooo",
	0x3e: "log",
	0x3f: "ln",
	0x40: "GSB-P0",
	0x41: "GSB-P1",
	0x42: "GSB-P2",
	0x43: "GSB-P3",
	0x44: "GSB-P4",
	0x45: "GSB-P5",
	0x46: "GSB-P6",
	0x47: "GSB-P7",
	0x48: "GSB-P8",
	0x49: "GSB-P9",
	0x4a: "+/-",
	0x4b: "(",
	0x4c: ")",
	0x4d: "sin",
	0x4e: "cos",
	0x4f: "tan",
	0x50: "X<->M0",
	0x51: "X<->M1",
	0x52: "X<->M2",
	0x53: "X<->M3",
	0x54: "X<->M4",
	0x55: "X<->M5",
	0x56: "X<->M6",
	0x57: "X<->M7",
	0x58: "X<->M8",
	0x59: "X<->M9",
	0x5a: "*",
	0x5b: "/",
	0x5c: "+",
	0x5d: "-",
	0x5e: "=",
	0x5f: "EXE",
	0x60: "Min0",
	0x61: "Min1",
	0x62: "Min2",
	0x63: "Min3",
	0x64: "Min4",
	0x65: "Min5",
	0x66: "Min6",
	0x67: "Min7",
	0x68: "Min8",
	0x69: "Min9",
	0x6a: "??6a??",
	0x6b: "DSZ",
	0x6c: "X=0",
	0x6d: "X=F",
	0x6e: "RAN#",
	0x6f: "PI",
	0x70: "MR0",
	0x71: "MR1",
	0x72: "MR2",
	0x73: "MR3",
	0x74: "MR4",
	0x75: "MR5",
	0x76: "MR6",
	0x77: "MR7",
	0x78: "MR8",
	0x79: "MR9",
	0x7a: "ISZ",
	0x7b: "X>=0",
	0x7c: "X>=F",
	0x7d: "mean(x)",
	0x7e: "stddev",
	0x7f: "stddev-1",
	0x80: "M-0",
	0x81: "M-1",
	0x82: "M-2",
	0x83: "M-3",
	0x84: "M-4",
	0x85: "M-5",
	0x86: "M-6",
	0x87: "M-7",
	0x88: "M-8",
	0x89: "M-9",
	0x8a: "PAUSE",
	0x8b: "IND",
	0x8c: "SAVE",
	0x8d: "LOAD",
	0x8e: "MAC",
	0x8f: "SAC",
	0x90: "M+0",
	0x91: "M+1",
	0x92: "M+2",
	0x93: "M+3",
	0x94: "M+4",
	0x95: "M+5",
	0x96: "M+6",
	0x97: "M+7",
	0x98: "M+8",
	0x99: "M+9",
	0x9a: "DEL",
	0x9b: "??9b??",
	0x9c: "ENG<-",
	0x9d: "ooo<-",
	0x9e: "10^X",
	0x9f: "e^X",
	0xa0: "X<->M10",
	0xa1: "X<->M11",
	0xa2: "X<->M12",
	0xa3: "X<->M13",
	0xa4: "X<->M14",
	0xa5: "X<->M15",
	0xa6: "X<->M16",
	0xa7: "X<->M17",
	0xa8: "X<->M18",
	0xa9: "X<->M19",
	0xaa: "ABS",
	0xab: "INT",
	0xac: "FRAC",
	0xad: "asin",
	0xae: "acos",
	0xaf: "atan",
	0xb0: "Min10",
	0xb1: "Min11",
	0xb2: "Min12",
	0xb3: "Min13",
	0xb4: "Min14",
	0xb5: "Min15",
	0xb6: "Min16",
	0xb7: "Min17",
	0xb8: "Min18",
	0xb9: "Min19",
	0xba: "X^Y",
	0xbb: "X^(1/Y)",
	0xbc: "R->P",
	0xbd: "P->R",
	0xbe: "%",
	0xbf: "??bf??",
	0xc0: "MR10",
	0xc1: "MR11",
	0xc2: "MR12",
	0xc3: "MR13",
	0xc4: "MR14",
	0xc5: "MR15",
	0xc6: "MR16",
	0xc7: "MR17",
	0xc8: "MR18",
	0xc9: "MR19",
	0xca: "??ca??",
	0xcb: "X<->Y",
	0xcc: "sqrt",
	0xcd: "X^2",
	0xce: "1/X",
	0xcf: "X!",
	0xd0: "M-10",
	0xd1: "M-11",
	0xd2: "M-12",
	0xd3: "M-13",
	0xd4: "M-14",
	0xd5: "M-15",
	0xd6: "M-16",
	0xd7: "M-17",
	0xd8: "M-18",
	0xd9: "M-19",
	0xda: "DEG",
	0xdb: "RAD",
	0xdc: "GRA",
	0xdd: "hyp-sin",
	0xde: "hyp-cos",
	0xdf: "hyp-tan",
	0xe0: "M+10",
	0xe1: "M+11",
	0xe2: "M+12",
	0xe3: "M+13",
	0xe4: "M+14",
	0xe5: "M+15",
	0xe6: "M+16",
	0xe7: "M+17",
	0xe8: "M+18",
	0xe9: "M+19",
	0xea: "??ea??",
	0xeb: "??eb??",
	0xec: "??ec??",
	0xed: "hyp-asin",
	0xee: "hyp-acos",
	0xef: "hyp-atan",
	0xf0: "X<->MF",
	0xf1: "MinF",
	0xf2: "MRF",
	0xf3: "M-F",
	0xf4: "M+F",
	0xf5: "X<->M1F",
	0xf6: "Min1F",
	0xf7: "MR1F",
	0xf8: "M-1F",
	0xf9: "M+1F",
	0xfa: "AC",
	0xfb: "NOP",
	0xfc: "??fc??",
	0xfd: "??fd??",
	0xfe: "??fe??",
	0xff: "EOF",
}

// tokensByText is the inverse of tokensByByte, keyed by the uppercased
// mnemonic, built once at init time.
var tokensByText = func() map[string]byte {
	m := make(map[string]byte, len(tokensByByte))
	for b, tok := range tokensByByte {
		m[strings.ToUpper(tok)] = b
	}
	return m
}()

// memorySeq lists the 22 memory register names in the order they are
// stored on tape.
var memorySeq = []string{
	"MF", "M9", "M8", "M7", "M6", "M5",
	"M4", "M3", "M2", "M1", "M0",
	"M1F", "M19", "M18", "M17", "M16", "M15",
	"M14", "M13", "M12", "M11", "M10",
}
