package aead

import (
	"encoding/binary"

	"github.com/stb34101/beltgo"
	"github.com/stb34101/beltgo/internal/bytesx"
	"github.com/stb34101/beltgo/mode"
	"github.com/stb34101/beltgo/wbl"
)

// bdeLevel tags belt-KRP derivations for BDE's per-sector keystream key;
// exactly LevelLen octets, per wbl.KRP.StepG's contract.
var bdeLevel = [wbl.LevelLen]byte{'b', 'e', 'l', 't', '-', 'b', 'd', 'e', '-', 'c', 't', 'r'}

// BDE is a sector-oriented, bulk confidentiality-only disk-encryption
// mode. Each
// sector is encrypted under belt-CTR with a key diversified from a single
// master key via belt-KRP, tagged with the sector number, so no two
// sectors ever share a keystream even though they share a master key.
type BDE struct {
	master []byte
}

// NewBDE starts a BDE session from a 16/24/32-octet master key.
func NewBDE(masterKey []byte) (*BDE, error) {
	switch len(masterKey) {
	case 16, 24, 32:
	default:
		return nil, ErrBdeMasterKeyMustBe16
	}
	return &BDE{master: append([]byte(nil), masterKey...)}, nil
}

// Close wipes the retained master key.
func (b *BDE) Close() { bytesx.Zero(b.master) }

func (b *BDE) sectorKey(sectorNum uint64, level [wbl.LevelLen]byte) ([]byte, error) {
	krp, err := wbl.Start(b.master)
	if err != nil {
		return nil, err
	}
	defer krp.Wipe()

	var header [wbl.HeaderLen]byte
	binary.LittleEndian.PutUint64(header[:8], sectorNum)

	key := make([]byte, len(b.master))
	if err := krp.StepG(key, len(b.master), level[:], header[:]); err != nil {
		return nil, err
	}
	return key, nil
}

func sectorIV(sectorNum uint64) [beltgo.BlockSize]byte {
	var iv [beltgo.BlockSize]byte
	binary.LittleEndian.PutUint64(iv[:8], sectorNum)
	return iv
}

// EncryptSector encrypts src into dst under sectorNum's diversified key.
func (b *BDE) EncryptSector(sectorNum uint64, dst, src []byte) error {
	key, err := b.sectorKey(sectorNum, bdeLevel)
	if err != nil {
		return err
	}
	defer bytesx.Zero(key)

	iv := sectorIV(sectorNum)
	ctr, err := mode.NewCTR(key, iv[:])
	if err != nil {
		return err
	}
	defer ctr.Close()
	ctr.StepE(dst, src)
	return nil
}

// DecryptSector reverses EncryptSector.
func (b *BDE) DecryptSector(sectorNum uint64, dst, src []byte) error {
	key, err := b.sectorKey(sectorNum, bdeLevel)
	if err != nil {
		return err
	}
	defer bytesx.Zero(key)

	iv := sectorIV(sectorNum)
	ctr, err := mode.NewCTR(key, iv[:])
	if err != nil {
		return err
	}
	defer ctr.Close()
	ctr.StepD(dst, src)
	return nil
}
