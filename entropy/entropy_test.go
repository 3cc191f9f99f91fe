package entropy

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	tag Tag
	fn  func(buf []byte) (int, error)
}

func (f fakeSource) Tag() Tag                     { return f.tag }
func (f fakeSource) Read(buf []byte) (int, error) { return f.fn(buf) }

func allZeroSource(tag Tag) Source {
	return fakeSource{tag: tag, fn: func(buf []byte) (int, error) {
		for i := range buf {
			buf[i] = 0
		}
		return len(buf), nil
	}}
}

func alternatingSource(tag Tag) Source {
	return fakeSource{tag: tag, fn: func(buf []byte) (int, error) {
		for i := range buf {
			buf[i] = 0xAA
		}
		return len(buf), nil
	}}
}

func osBackedSource(tag Tag) Source {
	return fakeSource{tag: tag, fn: func(buf []byte) (int, error) {
		return NewSysSource().Read(buf)
	}}
}

func TestMonobitRejectsAllZero(t *testing.T) {
	require.False(t, monobitTest(make([]byte, SampleOctets)))
}

func TestMonobitAcceptsOSRandom(t *testing.T) {
	buf := make([]byte, SampleOctets)
	_, err := NewSysSource().Read(buf)
	require.NoError(t, err)
	require.True(t, monobitTest(buf))
}

func TestLongRunRejectsAllZero(t *testing.T) {
	require.False(t, longRunTest(make([]byte, SampleOctets)))
}

func TestLongRunAcceptsOSRandom(t *testing.T) {
	buf := make([]byte, SampleOctets)
	_, err := NewSysSource().Read(buf)
	require.NoError(t, err)
	require.True(t, longRunTest(buf))
}

func TestPokerRejectsAllZero(t *testing.T) {
	require.False(t, pokerTest(make([]byte, SampleOctets)))
}

func TestPokerAcceptsOSRandom(t *testing.T) {
	buf := make([]byte, SampleOctets)
	_, err := NewSysSource().Read(buf)
	require.NoError(t, err)
	require.True(t, pokerTest(buf))
}

func TestTestSourceRejectsSkewedSource(t *testing.T) {
	_, err := TestSource(allZeroSource(TagSys))
	require.Error(t, err)
}

func TestTestSourcePassesOSSource(t *testing.T) {
	res, err := TestSource(NewSysSource())
	require.NoError(t, err)
	require.True(t, res.Pass())
}

func TestHealthPassesWithTwoGoodSoftwareSources(t *testing.T) {
	sources := []Source{
		osBackedSource(TagSys),
		osBackedSource(TagSys2),
	}
	ok, err := Health(sources)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHealthFailsWithOnlyOneGoodSource(t *testing.T) {
	sources := []Source{
		osBackedSource(TagSys),
		allZeroSource(TagSys2),
	}
	ok, err := Health(sources)
	require.Error(t, err)
	require.False(t, ok)
}

func TestTRNGUnavailableWithoutHardware(t *testing.T) {
	src := NewTRNGSource()
	buf := make([]byte, 32)
	_, err := src.Read(buf)
	if err != nil {
		require.ErrorContains(t, err, "trng")
	}
}

func TestSysSourceFillsBuffer(t *testing.T) {
	buf := make([]byte, 64)
	n, err := NewSysSource().Read(buf)
	require.NoError(t, err)
	require.Equal(t, 64, n)
}

func TestSingletonCreateAndStepR(t *testing.T) {
	hdl, err := Create(nil)
	require.NoError(t, err)
	defer hdl.Close()

	buf := make([]byte, 32)
	require.NoError(t, StepR(buf))

	buf2 := make([]byte, 32)
	require.NoError(t, StepR2(buf2))
	require.NotEqual(t, buf, buf2)
}

func TestSingletonRefcounting(t *testing.T) {
	h1, err := Create(nil)
	require.NoError(t, err)
	h2, err := Create(nil)
	require.NoError(t, err)

	h1.Close()
	buf := make([]byte, 16)
	require.NoError(t, StepR(buf))

	h2.Close()
	require.Error(t, StepR(buf))
}
