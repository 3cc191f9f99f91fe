package entropy

import "github.com/stb34101/beltgo"

// SampleOctets is the sample size rngESTest collects from a source
// before running the FIPS-140-1 battery (2500 octets = 20000 bits).
const SampleOctets = 2500

// SampleBits is SampleOctets in bits.
const SampleBits = SampleOctets * 8

// LongRunThreshold: no run of identical bits may reach this length.
const LongRunThreshold = 26

// monobitBounds bounds the count of set bits over SampleBits for a
// 20000-bit sample to pass the FIPS 140-1 (1994) monobit test.
var monobitBounds = [2]int{9725, 10275}

// pokerBounds and runBounds are the historical FIPS 140-1 (1994)
// acceptance intervals for the 20000-bit sample size. The naive
// 4-bit-nibble chi-square statistic (mean ~15, df=15) these bounds gate
// would reject every genuinely random sample if computed against a
// tighter interval derived analytically instead of the published table,
// so the well-known FIPS 140-1 bounds are used directly here. See
// DESIGN.md.
var pokerBounds = [2]float64{1.03, 57.4}

var runBounds = map[int][2]int{
	1: {2267, 2733},
	2: {1079, 1421},
	3: {502, 748},
	4: {223, 402},
	5: {90, 223},
	6: {90, 223}, // bucket for runs of length >= 6
}

// Result is the outcome of rngESTest: which of the four sub-tests passed,
// and the overall verdict.
type Result struct {
	Monobit bool
	Poker   bool
	Runs    bool
	LongRun bool
}

// Pass reports whether every sub-test passed.
func (r Result) Pass() bool { return r.Monobit && r.Poker && r.Runs && r.LongRun }

func bitAt(data []byte, i int) int {
	return int(data[i/8]>>(7-uint(i%8))) & 1
}

func monobitTest(data []byte) bool {
	ones := 0
	for i := 0; i < SampleBits; i++ {
		ones += bitAt(data, i)
	}
	return ones >= monobitBounds[0] && ones <= monobitBounds[1]
}

func pokerTest(data []byte) bool {
	var freq [16]int
	for _, b := range data {
		freq[b>>4]++
		freq[b&0x0F]++
	}
	n := float64(2 * len(data))
	sumSq := 0.0
	for _, f := range freq {
		sumSq += float64(f) * float64(f)
	}
	x := (16.0/n)*sumSq - n
	return x >= pokerBounds[0] && x <= pokerBounds[1]
}

func runsTest(data []byte) bool {
	// Runs of zeros and runs of ones are counted separately; each of the
	// two tallies must fall inside every interval.
	counts := [2]map[int]int{{}, {}}
	runLen := 1
	for i := 1; i < SampleBits; i++ {
		if bitAt(data, i) == bitAt(data, i-1) {
			runLen++
			continue
		}
		bucket := runLen
		if bucket > 6 {
			bucket = 6
		}
		counts[bitAt(data, i-1)][bucket]++
		runLen = 1
	}
	bucket := runLen
	if bucket > 6 {
		bucket = 6
	}
	counts[bitAt(data, SampleBits-1)][bucket]++

	for length, bounds := range runBounds {
		for bit := 0; bit < 2; bit++ {
			c := counts[bit][length]
			if c < bounds[0] || c > bounds[1] {
				return false
			}
		}
	}
	return true
}

func longRunTest(data []byte) bool {
	runLen := 1
	for i := 1; i < SampleBits; i++ {
		if bitAt(data, i) == bitAt(data, i-1) {
			runLen++
			if runLen >= LongRunThreshold {
				return false
			}
			continue
		}
		runLen = 1
	}
	return true
}

// TestSource is rngESTest: collect SampleOctets from src and run the
// FIPS-140-1 battery, returning StatTest if any sub-test fails.
func TestSource(src Source) (Result, error) {
	buf := make([]byte, SampleOctets)
	n, err := src.Read(buf)
	if err != nil {
		return Result{}, err
	}
	if n < SampleOctets {
		return Result{}, beltgo.NewError(beltgo.NotEnoughEntropy, string(src.Tag())+": short read for health test")
	}

	r := Result{
		Monobit: monobitTest(buf),
		Poker:   pokerTest(buf),
		Runs:    runsTest(buf),
		LongRun: longRunTest(buf),
	}
	if !r.Pass() {
		return r, beltgo.NewError(beltgo.StatTest, string(src.Tag())+": failed FIPS-140-1 health test")
	}
	return r, nil
}

// Health is rngESHealth: passes if trng or trng2 passes, or if at
// least two of sys, sys2, timer pass.
func Health(sources []Source) (bool, error) {
	byTag := make(map[Tag]Source, len(sources))
	for _, s := range sources {
		byTag[s.Tag()] = s
	}

	passed := func(tag Tag) bool {
		src, ok := byTag[tag]
		if !ok {
			return false
		}
		res, err := TestSource(src)
		return err == nil && res.Pass()
	}

	if passed(TagTRNG) || passed(TagTRNG2) {
		return true, nil
	}

	count := 0
	for _, tag := range []Tag{TagSys, TagSys2, TagTimer} {
		if passed(tag) {
			count++
		}
	}
	if count >= 2 {
		return true, nil
	}
	return false, ErrEntropyHealthPolicyNotSatisfied
}
