package sm

const protectedBit = 0x04

// CmdWrap protects a plain command APDU: encrypts the command data
// field under belt-CFB keyed by key_enc and the current counter, folds
// DO87/DO97 into a belt-MAC under key_mac to produce DO8E, and reassembles
// the protected APDU. The counter is advanced first and must land on an
// odd value (command direction) or the call is rejected.
func (s *Session) CmdWrap(cmd CommandAPDU) (CommandAPDU, error) {
	if cmd.CLA&protectedBit != 0 {
		return CommandAPDU{}, ErrSmCommandApduAlreadyProtected
	}

	s.advance()
	if err := s.requireParity(true); err != nil {
		return CommandAPDU{}, err
	}

	header := []byte{cmd.CLA | protectedBit, cmd.INS, cmd.P1, cmd.P2}

	var do87 []byte
	if len(cmd.CDF) > 0 {
		cfb, err := s.cfb()
		if err != nil {
			return CommandAPDU{}, err
		}
		defer cfb.Close()
		encCDF := make([]byte, len(cmd.CDF))
		cfb.StepE(encCDF, cmd.CDF)
		do87 = encodeDO87(encCDF)
	}

	var do97 []byte
	if cmd.Le != nil {
		do97 = encodeDO97(cmd.Le)
	}

	tag, err := s.mac(header, do87, do97)
	if err != nil {
		return CommandAPDU{}, err
	}
	do8E := encodeDO8E(tag)

	data := append(append(append([]byte{}, do87...), do97...), do8E...)

	out := CommandAPDU{
		CLA:      cmd.CLA | protectedBit,
		INS:      cmd.INS,
		P1:       cmd.P1,
		P2:       cmd.P2,
		CDF:      data,
		Le:       defaultLe(cmd.Extended),
		Extended: cmd.Extended,
	}
	return out, nil
}

// CmdUnwrap recovers the plain command APDU from a protected one: verifies
// every DER length, checks the MAC over header||DO87||DO97, then decrypts
// DO87. The counter advances first and must land on an odd value.
func (s *Session) CmdUnwrap(cmd CommandAPDU) (CommandAPDU, error) {
	if cmd.CLA&protectedBit == 0 {
		return CommandAPDU{}, ErrSmCommandApduNotProtected
	}

	s.advance()
	if err := s.requireParity(true); err != nil {
		return CommandAPDU{}, err
	}

	header := []byte{cmd.CLA, cmd.INS, cmd.P1, cmd.P2}

	rest := cmd.CDF
	var do87, do97, tag []byte

	if len(rest) > 0 && rest[0] == tagDO87 {
		_, n, err := decodeDO87(rest)
		if err != nil {
			return CommandAPDU{}, err
		}
		do87 = rest[:n]
		rest = rest[n:]
	}
	if len(rest) > 0 && rest[0] == tagDO97 {
		_, n, err := decodeDO97(rest)
		if err != nil {
			return CommandAPDU{}, err
		}
		do97 = rest[:n]
		rest = rest[n:]
	}
	if len(rest) == 0 || rest[0] != tagDO8E {
		return CommandAPDU{}, ErrSmMissingDo8eTag
	}
	t, n, err := decodeDO8E(rest)
	if err != nil {
		return CommandAPDU{}, err
	}
	tag = t
	rest = rest[n:]
	if len(rest) != 0 {
		return CommandAPDU{}, ErrSmTrailingBytesAfterDo8e
	}

	ok, err := s.verifyMAC(tag, header, do87, do97)
	if err != nil {
		return CommandAPDU{}, err
	}
	if !ok {
		return CommandAPDU{}, ErrSmCommandMacMismatch
	}

	out := CommandAPDU{CLA: cmd.CLA &^ protectedBit, INS: cmd.INS, P1: cmd.P1, P2: cmd.P2, Extended: cmd.Extended}
	if do87 != nil {
		encCDF, _, _ := decodeDO87(do87)
		cfb, err := s.cfb()
		if err != nil {
			return CommandAPDU{}, err
		}
		defer cfb.Close()
		plain := make([]byte, len(encCDF))
		cfb.StepD(plain, encCDF)
		out.CDF = plain
	}
	if do97 != nil {
		le, _, _ := decodeDO97(do97)
		out.Le = le
	}
	return out, nil
}

// RespWrap protects a plain response: symmetric with CmdWrap, but the
// counter must land on an even value and the MAC covers DO87||sw1||sw2
// instead of header||DO87||DO97.
func (s *Session) RespWrap(resp ResponseAPDU) ([]byte, error) {
	s.advance()
	if err := s.requireParity(false); err != nil {
		return nil, err
	}

	var do87 []byte
	if len(resp.RDF) > 0 {
		cfb, err := s.cfb()
		if err != nil {
			return nil, err
		}
		defer cfb.Close()
		encRDF := make([]byte, len(resp.RDF))
		cfb.StepE(encRDF, resp.RDF)
		do87 = encodeDO87(encRDF)
	}

	sw := []byte{resp.SW1, resp.SW2}
	tag, err := s.mac(do87, sw)
	if err != nil {
		return nil, err
	}
	do8E := encodeDO8E(tag)

	out := append(append([]byte{}, do87...), do8E...)
	out = append(out, sw...)
	return out, nil
}

// RespUnwrap recovers the plain response from a protected response body
// (everything up to, and including, the trailing status bytes). The
// counter must land on an even value.
func (s *Session) RespUnwrap(protected []byte) (ResponseAPDU, error) {
	if len(protected) < 2 {
		return ResponseAPDU{}, ErrSmProtectedResponseShorterThanStatus
	}

	s.advance()
	if err := s.requireParity(false); err != nil {
		return ResponseAPDU{}, err
	}

	sw1 := protected[len(protected)-2]
	sw2 := protected[len(protected)-1]
	rest := protected[:len(protected)-2]

	var do87, tag []byte
	if len(rest) > 0 && rest[0] == tagDO87 {
		_, n, err := decodeDO87(rest)
		if err != nil {
			return ResponseAPDU{}, err
		}
		do87 = rest[:n]
		rest = rest[n:]
	}
	if len(rest) == 0 || rest[0] != tagDO8E {
		return ResponseAPDU{}, ErrSmMissingDo8eTag
	}
	t, n, err := decodeDO8E(rest)
	if err != nil {
		return ResponseAPDU{}, err
	}
	tag = t
	rest = rest[n:]
	if len(rest) != 0 {
		return ResponseAPDU{}, ErrSmTrailingBytesAfterDo8e
	}

	sw := []byte{sw1, sw2}
	ok, err := s.verifyMAC(tag, do87, sw)
	if err != nil {
		return ResponseAPDU{}, err
	}
	if !ok {
		return ResponseAPDU{}, ErrSmResponseMacMismatch
	}

	out := ResponseAPDU{SW1: sw1, SW2: sw2}
	if do87 != nil {
		encRDF, _, _ := decodeDO87(do87)
		cfb, err := s.cfb()
		if err != nil {
			return ResponseAPDU{}, err
		}
		defer cfb.Close()
		plain := make([]byte, len(encRDF))
		cfb.StepD(plain, encRDF)
		out.RDF = plain
	}
	return out, nil
}
