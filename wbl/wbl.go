// Package wbl implements wide-block cipher: a 2n-round Feistel-like
// network over n pseudo-blocks that turns belt into a length-preserving
// cipher for buffers of 32 octets or more, plus the KWP, KRP and FMT
// primitives built on top of it.
package wbl

import (
	"encoding/binary"

	"github.com/stb34101/beltgo"
)

// BlockSize is the belt block length WBL pseudo-blocks are measured in.
const BlockSize = beltgo.BlockSize

// MinLen is the shortest buffer WBL accepts ("buffers of >= 32 octets").
const MinLen = 2 * BlockSize

func xorInto(dst, src []byte) {
	for i := range dst {
		dst[i] ^= src[i]
	}
}

func roundConst(r int) [4]byte {
	var c [4]byte
	binary.LittleEndian.PutUint32(c[:], uint32(r))
	return c
}

// roundForward advances the pseudo-block sequence blocks by one WBL round
// (round number r, 1-based): s is the xor of every block but the last,
// t = E_K(s) xor round is folded into the pre-rotation last block, and the
// sequence is rotated left with the rotated-away block replaced by s. Every
// element of blocks must be exactly BlockSize octets.
func roundForward(ks *beltgo.KeySchedule, blocks [][]byte, r int) [][]byte {
	n := len(blocks)
	var s [BlockSize]byte
	for i := 0; i < n-1; i++ {
		xorInto(s[:], blocks[i])
	}

	t := s
	ks.EncryptBlock(t[:])
	rc := roundConst(r)
	for i := 0; i < 4; i++ {
		t[i] ^= rc[i]
	}

	oldLast := blocks[n-1]
	xorInto(oldLast, t[:])

	next := make([][]byte, n)
	copy(next, blocks[1:])
	sCopy := make([]byte, BlockSize)
	copy(sCopy, s[:])
	next[n-1] = sCopy
	return next
}

// roundBackward undoes roundForward for the same round number r.
func roundBackward(ks *beltgo.KeySchedule, blocks [][]byte, r int) [][]byte {
	n := len(blocks)
	s := blocks[n-1]

	var t [BlockSize]byte
	copy(t[:], s)
	ks.EncryptBlock(t[:])
	rc := roundConst(r)
	for i := 0; i < 4; i++ {
		t[i] ^= rc[i]
	}

	oldRn := make([]byte, BlockSize)
	copy(oldRn, blocks[n-2])
	xorInto(oldRn, t[:])

	var oldR1 [BlockSize]byte
	copy(oldR1[:], s)
	for i := 0; i <= n-3; i++ {
		xorInto(oldR1[:], blocks[i])
	}

	prev := make([][]byte, n)
	oldR1Copy := make([]byte, BlockSize)
	copy(oldR1Copy, oldR1[:])
	prev[0] = oldR1Copy
	for i := 1; i <= n-2; i++ {
		prev[i] = blocks[i-1]
	}
	prev[n-1] = oldRn
	return prev
}

// network runs the full 2n-round schedule over nFull BlockSize-octet
// pseudo-blocks carved out of buf[:nFull*BlockSize], in place, forward
// (encrypt) or backward (decrypt).
func network(ks *beltgo.KeySchedule, buf []byte, encrypt bool) {
	nFull := len(buf) / BlockSize
	blocks := make([][]byte, nFull)
	for i := 0; i < nFull; i++ {
		blocks[i] = buf[i*BlockSize : (i+1)*BlockSize]
	}

	rounds := 2 * nFull
	if encrypt {
		for r := 1; r <= rounds; r++ {
			blocks = roundForward(ks, blocks, r)
		}
	} else {
		for r := rounds; r >= 1; r-- {
			blocks = roundBackward(ks, blocks, r)
		}
	}

	for i := 0; i < nFull; i++ {
		copy(buf[i*BlockSize:(i+1)*BlockSize], blocks[i])
	}
}

// splitTail separates buf into its 16-octet-aligned head (length a multiple
// of BlockSize, holding at least two pseudo-blocks) and a short tail of
// 1..BlockSize-1 trailing octets, for buffer lengths that are not
// themselves a multiple of BlockSize.
func splitTail(buf []byte) (head, tail []byte) {
	nFull := len(buf) / BlockSize
	headLen := nFull * BlockSize
	return buf[:headLen], buf[headLen:]
}

// whitenTail derives a keystream for the short trailing octets from the
// wide-block network's first output block, so the tail never goes out
// under a fixed, reusable mask.
func whitenTail(ks *beltgo.KeySchedule, headFirstBlock []byte) []byte {
	var mask [BlockSize]byte
	copy(mask[:], headFirstBlock)
	ks.EncryptBlock(mask[:])
	return mask[:]
}

// Encrypt applies WBL to buf in place. len(buf) must be >= MinLen; lengths
// that are not a multiple of BlockSize fold their trailing remainder into
// the last full pseudo-block before the network runs, then whiten it with a
// keystream derived from the network's output, so the remainder is mixed
// into (and recoverable from) the wide-block diffusion.
func Encrypt(ks *beltgo.KeySchedule, buf []byte) error {
	if len(buf) < MinLen {
		return ErrWblBufferShorterThanMinlen
	}

	if len(buf)%BlockSize == 0 {
		network(ks, buf, true)
		return nil
	}

	head, tail := splitTail(buf)
	lastFull := head[len(head)-BlockSize:]
	xorInto(lastFull, zeroExtend(tail))

	network(ks, head, true)

	mask := whitenTail(ks, head[:BlockSize])
	xorInto(tail, mask[:len(tail)])
	return nil
}

// Decrypt reverses Encrypt.
func Decrypt(ks *beltgo.KeySchedule, buf []byte) error {
	if len(buf) < MinLen {
		return ErrWblBufferShorterThanMinlen
	}

	if len(buf)%BlockSize == 0 {
		network(ks, buf, false)
		return nil
	}

	head, tail := splitTail(buf)
	mask := whitenTail(ks, head[:BlockSize])
	xorInto(tail, mask[:len(tail)])

	network(ks, head, false)

	lastFull := head[len(head)-BlockSize:]
	xorInto(lastFull, zeroExtend(tail))
	return nil
}

func zeroExtend(tail []byte) []byte {
	var buf [BlockSize]byte
	copy(buf[:], tail)
	return buf[:]
}
