package bign

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyRoundTrip(t *testing.T) {
	priv, err := GenerateKey()
	require.NoError(t, err)
	pub := priv.Public()
	require.NoError(t, pub.Validate())

	msg := []byte("belt-bign round trip")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)
	require.NoError(t, pub.Verify(msg, sig))
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	priv, err := GenerateKey()
	require.NoError(t, err)
	pub := priv.Public()

	sig, err := priv.Sign([]byte("original message"))
	require.NoError(t, err)

	err = pub.Verify([]byte("different message"), sig)
	require.Error(t, err)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	priv1, err := GenerateKey()
	require.NoError(t, err)
	priv2, err := GenerateKey()
	require.NoError(t, err)

	msg := []byte("signed by priv1")
	sig, err := priv1.Sign(msg)
	require.NoError(t, err)

	err = priv2.Public().Verify(msg, sig)
	require.Error(t, err)
}

func TestVerifyRejectsTamperedSignature(t *testing.T) {
	priv, err := GenerateKey()
	require.NoError(t, err)
	pub := priv.Public()

	msg := []byte("tamper test")
	sig, err := priv.Sign(msg)
	require.NoError(t, err)

	sig.S.Add(sig.S, sig.S)
	err = pub.Verify(msg, sig)
	require.Error(t, err)
}

func TestDomainBasePointHasGroupOrder(t *testing.T) {
	dom := defaultDomain()
	require.True(t, dom.curve.IsOnCurve(dom.g))
	require.True(t, dom.curve.HasOrder(dom.g, dom.n))
	require.False(t, dom.g.Infinity)
}

func TestNegAIsInverse(t *testing.T) {
	dom := defaultDomain()
	negG := NegA(dom.g)
	one := big.NewInt(1)
	sum := dom.curve.AddMulA(one, dom.g, one, negG)
	require.True(t, sum.Infinity)
}
