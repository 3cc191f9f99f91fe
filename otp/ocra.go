package otp

import (
	"encoding/hex"
	"math/big"
	"regexp"
	"strconv"
	"time"

	"github.com/stb34101/beltgo"
	"github.com/stb34101/beltgo/belthash"
)

// Suite is a parsed RFC 6287 OCRA suite string. The suite's
// CryptoFunction and P-hash tokens (SHA1/SHA256/SHA512) are accepted for
// string-format compatibility but every digest this package computes is
// belt-hash/belt-hmac — there is no SHA-1/256/512 anywhere in the STB
// suite, so the token only selects which optional DataInput components
// are present, never which primitive runs. PIN hashes are always the
// 32-octet belt-hash digest regardless of the token named in the suite.
type Suite struct {
	Raw             string
	Digits          int
	HasCounter      bool
	ChallengeFormat byte // 'N', 'A', or 'H'
	ChallengeLen    int
	HasPIN          bool
	HasSession      bool
	SessionLen      int
	HasTimestamp    bool
	TimeStep        time.Duration
}

var suiteRE = regexp.MustCompile(`^OCRA-1:HOTP-[A-Za-z0-9]+-(\d+):(.+)$`)
var challengeRE = regexp.MustCompile(`^QN(\d{2})$|^QA(\d{2})$|^QH(\d{2})$`)
var sessionRE = regexp.MustCompile(`^S(\d{3})$`)
var timestampRE = regexp.MustCompile(`^T(\d+)([SMH])$`)

// ParseSuite parses an OCRA suite string such as
// "OCRA-1:HOTP-belt-6:QN08" or "OCRA-1:HOTP-belt-8:C-QN08-PSHA1-S064-T1M".
func ParseSuite(s string) (Suite, error) {
	m := suiteRE.FindStringSubmatch(s)
	if m == nil {
		return Suite{}, ErrOtpMalformedOcraSuiteString
	}
	digits, err := strconv.Atoi(m[1])
	if err != nil || digits < 0 || digits > 9 {
		return Suite{}, ErrOtpOcraSuiteDigitCountOut
	}
	suite := Suite{Raw: s, Digits: digits}

	for _, part := range splitDash(m[2]) {
		switch {
		case part == "C":
			suite.HasCounter = true
		case challengeRE.MatchString(part):
			cm := challengeRE.FindStringSubmatch(part)
			var format byte
			var lenStr string
			switch {
			case cm[1] != "":
				format, lenStr = 'N', cm[1]
			case cm[2] != "":
				format, lenStr = 'A', cm[2]
			default:
				format, lenStr = 'H', cm[3]
			}
			n, _ := strconv.Atoi(lenStr)
			if n < 4 || n > 64 {
				return Suite{}, ErrOtpOcraChallengeLengthOutRange
			}
			suite.ChallengeFormat = format
			suite.ChallengeLen = n
		case len(part) >= 1 && part[0] == 'P':
			suite.HasPIN = true
		case sessionRE.MatchString(part):
			sm := sessionRE.FindStringSubmatch(part)
			n, _ := strconv.Atoi(sm[1])
			suite.HasSession = true
			suite.SessionLen = n
		case timestampRE.MatchString(part):
			tm := timestampRE.FindStringSubmatch(part)
			n, _ := strconv.Atoi(tm[1])
			suite.HasTimestamp = true
			switch tm[2] {
			case "S":
				suite.TimeStep = time.Duration(n) * time.Second
			case "M":
				suite.TimeStep = time.Duration(n) * time.Minute
			case "H":
				suite.TimeStep = time.Duration(n) * time.Hour
			}
		default:
			return Suite{}, beltgo.NewError(beltgo.BadFormat, "otp: unrecognized OCRA DataInput component: "+part)
		}
	}
	if suite.ChallengeFormat == 0 {
		return Suite{}, ErrOtpOcraSuiteMissingChallengeComponent
	}
	return suite, nil
}

func splitDash(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '-' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return out
}

// encodeChallenge encodes a question string per suite's declared format into
// OCRA's fixed 128-octet Q field: numeric questions are converted through
// a big-endian hex expansion of the decimal value, alphanumeric questions
// are packed as raw ASCII, and hex questions are hex-decoded directly.
func (suite Suite) encodeChallenge(q string) ([128]byte, error) {
	var out [128]byte
	var raw []byte

	switch suite.ChallengeFormat {
	case 'N':
		v, ok := new(big.Int).SetString(q, 10)
		if !ok {
			return out, ErrOtpOcraNumericChallengeNotDecimal
		}
		hexStr := v.Text(16)
		if len(hexStr)%2 == 1 {
			hexStr += "0"
		}
		b, err := hex.DecodeString(hexStr)
		if err != nil {
			return out, ErrOtpOcraNumericChallengeEncodingFailed
		}
		raw = b
	case 'A':
		raw = []byte(q)
	case 'H':
		h := q
		if len(h)%2 == 1 {
			h += "0"
		}
		b, err := hex.DecodeString(h)
		if err != nil {
			return out, ErrOtpOcraHexChallengeNotValid
		}
		raw = b
	}
	if len(raw) > 128 {
		return out, ErrOtpOcraChallengeExceeds128Octets
	}
	copy(out[:], raw)
	return out, nil
}

// Params bundles the caller-supplied DataInput fields a Generate call
// needs, only the ones the parsed suite actually requires being read.
type Params struct {
	Counter   uint64
	Challenge string
	PIN       []byte // raw PIN/password; hashed internally with belt-hash
	Session   []byte
	Time      time.Time
}

var ocraPow10 = [...]uint32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

func ocraTruncate(digest []byte, digits int) string {
	if digits == 0 {
		return hex.EncodeToString(digest)
	}
	offset := digest[len(digest)-1] & 0x0F
	code := (uint32(digest[offset]&0x7F) << 24) |
		(uint32(digest[offset+1]) << 16) |
		(uint32(digest[offset+2]) << 8) |
		uint32(digest[offset+3])
	code %= ocraPow10[digits]
	return padDecimal(code, digits)
}

func padDecimal(v uint32, digits int) string {
	s := strconv.FormatUint(uint64(v), 10)
	for len(s) < digits {
		s = "0" + s
	}
	return s
}

// Generate computes an OCRA response (RFC 6287 §5) over belt-hmac(key,
// OCRASuite || 0x00 || C || Q || P || S || T).
func Generate(suite Suite, key []byte, p Params) (string, error) {
	var buf []byte
	buf = append(buf, suite.Raw...)
	buf = append(buf, 0x00)

	if suite.HasCounter {
		var c [8]byte
		c[0] = byte(p.Counter >> 56)
		c[1] = byte(p.Counter >> 48)
		c[2] = byte(p.Counter >> 40)
		c[3] = byte(p.Counter >> 32)
		c[4] = byte(p.Counter >> 24)
		c[5] = byte(p.Counter >> 16)
		c[6] = byte(p.Counter >> 8)
		c[7] = byte(p.Counter)
		buf = append(buf, c[:]...)
	}

	q, err := suite.encodeChallenge(p.Challenge)
	if err != nil {
		return "", err
	}
	buf = append(buf, q[:]...)

	if suite.HasPIN {
		d := belthash.Sum256(p.PIN)
		buf = append(buf, d[:]...)
	}

	if suite.HasSession {
		s := make([]byte, suite.SessionLen)
		copy(s, p.Session)
		buf = append(buf, s...)
	}

	if suite.HasTimestamp {
		step := suite.TimeStep
		if step <= 0 {
			step = DefaultStep
		}
		steps := uint64(p.Time.Unix()) / uint64(step.Seconds())
		var t [8]byte
		t[0] = byte(steps >> 56)
		t[1] = byte(steps >> 48)
		t[2] = byte(steps >> 40)
		t[3] = byte(steps >> 32)
		t[4] = byte(steps >> 24)
		t[5] = byte(steps >> 16)
		t[6] = byte(steps >> 8)
		t[7] = byte(steps)
		buf = append(buf, t[:]...)
	}

	digest := belthash.Sum256HMAC(key, buf)
	return ocraTruncate(digest[:], suite.Digits), nil
}
