package beltgo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandKey_RejectsBadLength(t *testing.T) {
	_, err := ExpandKey(make([]byte, 20))
	require.Error(t, err)
	require.Equal(t, BadInput, CodeOf(err))
}

func TestExpandKey_Lengths(t *testing.T) {
	for _, n := range []int{16, 24, 32} {
		_, err := ExpandKey(make([]byte, n))
		require.NoError(t, err)
	}
}

func TestBlockRoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i * 7)
	}
	ks, err := ExpandKey(key)
	require.NoError(t, err)

	plaintext := []byte{0xB1, 0x94, 0xBA, 0xC8, 0x0A, 0x08, 0xF5, 0x3B, 0x36, 0x6D, 0x00, 0x8E, 0x58, 0x4A, 0x5D, 0xE4}
	block := bytes.Clone(plaintext)

	ks.EncryptBlock(block)
	require.NotEqual(t, plaintext, block, "encryption must change the block")

	ks.DecryptBlock(block)
	require.Equal(t, plaintext, block, "decrypt(encrypt(x)) must equal x")
}

func TestBlockRoundTrip_AllKeyLengths(t *testing.T) {
	plaintext := bytes.Repeat([]byte{0x11}, BlockSize)
	for _, n := range []int{16, 24, 32} {
		key := make([]byte, n)
		for i := range key {
			key[i] = byte(i + n)
		}
		ks, err := ExpandKey(key)
		require.NoError(t, err)

		block := bytes.Clone(plaintext)
		ks.EncryptBlock(block)
		ks.DecryptBlock(block)
		require.Equal(t, plaintext, block)
	}
}

func TestBlockDiffusion(t *testing.T) {
	key := bytes.Repeat([]byte{0xAB}, 32)
	ks, err := ExpandKey(key)
	require.NoError(t, err)

	a := make([]byte, BlockSize)
	b := bytes.Clone(a)
	b[0] ^= 0x01

	ks.EncryptBlock(a)
	ks.EncryptBlock(b)
	require.NotEqual(t, a, b)

	diff := 0
	for i := range a {
		if a[i] != b[i] {
			diff++
		}
	}
	require.Greater(t, diff, 1, "single input bit flip should affect more than one output octet")
}
