/*
NAME
  tokens.go

DESCRIPTION
  tokens.go holds the reserved-key token table for the Sharp PC-1211's
  reserved-keys recording variant: each line of data starts with one of
  18 special key bytes instead of a BCD line number.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package pc1211res

// reservedByByte maps a reserved-key byte to its two-character mnemonic.
var reservedByByte = map[byte]string{
	0xe1: "A:",
	0xe2: "B:",
	0xe3: "C:",
	0xe4: "D:",
	0xe6: "F:",
	0xe7: "G:",
	0xe8: "H:",
	0xea: "J:",
	0xeb: "K:",
	0xec: "L:",
	0xed: "M:",
	0xee: "N:",
	0xf1: " :",
	0xf3: "S:",
	0xf4: "=:",
	0xf6: "V:",
	0xf8: "X:",
	0xfa: "Z:",
}

// reservedByText is the inverse of reservedByByte, built once at init time.
var reservedByText = func() map[string]byte {
	m := make(map[string]byte, len(reservedByByte))
	for b, tok := range reservedByByte {
		m[tok] = b
	}
	return m
}()
