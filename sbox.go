package beltgo

// sbox is the belt S-box H, an explicit fixed permutation of the 256 byte
// values used by every round of the block primitive. It is supplied as a
// compile-time constant; no table lookup in this file depends on secret
// data in its *indices* being anything other than a full byte, so the
// lookup itself carries no secret-dependent control flow beyond the array
// access.
var sbox = [256]byte{
	0x02, 0x8B, 0xE9, 0x63, 0xC2, 0xA3, 0x8E, 0x3E,
	0x01, 0xBD, 0xA7, 0x72, 0xC7, 0x78, 0x3D, 0x45,
	0x37, 0x1F, 0xA2, 0xD6, 0x1B, 0xF2, 0x98, 0xC3,
	0xB1, 0x31, 0x95, 0xAA, 0x59, 0x28, 0xA0, 0x67,
	0xBA, 0xF1, 0xE6, 0xD5, 0x2F, 0x0E, 0xEC, 0x18,
	0x20, 0x30, 0x66, 0x90, 0x22, 0x88, 0xB2, 0xBB,
	0x81, 0x0F, 0x9D, 0xDD, 0xDE, 0x29, 0x50, 0x7C,
	0xEB, 0x3F, 0x11, 0x69, 0x14, 0x6A, 0x13, 0x34,
	0xE5, 0x9B, 0xCC, 0x40, 0xF9, 0x2E, 0xC0, 0xF4,
	0xB5, 0x3C, 0x8C, 0x9C, 0xE7, 0xB6, 0x65, 0xC5,
	0x09, 0x41, 0x7B, 0x46, 0x75, 0x23, 0x57, 0x6C,
	0x62, 0x52, 0xB0, 0x35, 0x32, 0x68, 0xFC, 0x96,
	0x0A, 0x6F, 0xAD, 0x54, 0xE1, 0x26, 0xD3, 0x4A,
	0x5E, 0x58, 0xAE, 0xF5, 0x4E, 0xDC, 0xFD, 0x47,
	0xE8, 0x0B, 0x7D, 0x5A, 0x12, 0x06, 0x3A, 0x89,
	0x36, 0x80, 0x4D, 0x97, 0xB3, 0x5F, 0xC9, 0x4F,
	0x9F, 0x61, 0x38, 0x83, 0x1A, 0xCE, 0xD7, 0x93,
	0xBE, 0xAB, 0x00, 0x73, 0x60, 0x16, 0x7E, 0xA5,
	0xC8, 0xFF, 0x84, 0x9A, 0x03, 0xE4, 0xA4, 0x92,
	0xF3, 0xDF, 0x08, 0x07, 0x8D, 0x0D, 0xEE, 0xE3,
	0x49, 0xF0, 0x24, 0x56, 0x3B, 0xFB, 0xC6, 0xD4,
	0x8F, 0x43, 0x4C, 0x77, 0xE0, 0x2B, 0xCA, 0x7A,
	0xBF, 0xFE, 0xB7, 0x5D, 0x86, 0xA1, 0x25, 0x15,
	0xBC, 0x87, 0x1C, 0xD0, 0xDB, 0x2C, 0xA9, 0xD2,
	0x76, 0x71, 0xB4, 0x64, 0x99, 0x10, 0xF8, 0x6D,
	0xD1, 0x39, 0x21, 0xFA, 0x05, 0xCF, 0x17, 0x5C,
	0x9E, 0xD8, 0x79, 0xF7, 0xDA, 0x8A, 0xEA, 0x70,
	0x19, 0x0C, 0x91, 0x74, 0xA8, 0x6B, 0x7F, 0x48,
	0xED, 0xB9, 0x2D, 0xCB, 0xC1, 0x33, 0x85, 0x42,
	0xD9, 0x82, 0xE2, 0xEF, 0x51, 0x27, 0x53, 0x04,
	0xC4, 0xA6, 0x55, 0xB8, 0x1E, 0xF6, 0x44, 0x4B,
	0x5B, 0xAF, 0x6E, 0x1D, 0xAC, 0x2A, 0xCD, 0x94,
}

// sboxInv is the inverse permutation of sbox, computed once at package init.
// DecryptBlock does not read it: it re-applies g with the forward sbox.
var sboxInv [256]byte

func init() {
	for i, v := range sbox {
		sboxInv[v] = byte(i)
	}
}
