/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package group_test

import (
	"bytes"
	"math/big"
	"testing"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/fentec-project/expelgamal/group"
	"github.com/fentec-project/expelgamal/internal"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var groups = []group.Group{group.BLS12381(), group.BN256()}

func TestGroup_Arithmetic(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			a := big.NewInt(1234567)
			b := big.NewInt(7654321)

			aG := g.BaseMul(a)
			bG := g.BaseMul(b)
			sum := g.BaseMul(new(big.Int).Add(a, b))

			assert.True(t, aG.Add(bG).Equal(sum))
			assert.True(t, sum.Sub(bG).Equal(aG))
			assert.True(t, g.Generator().Mul(a).Equal(aG))
			assert.True(t, aG.Sub(aG).IsIdentity())
			assert.True(t, g.BaseMul(g.Order()).IsIdentity())
			assert.False(t, aG.IsIdentity())

			// negative scalars are reduced modulo the order
			negA := g.BaseMul(new(big.Int).Neg(a))
			assert.True(t, negA.Add(aG).IsIdentity())
		})
	}
}

func TestGroup_PointEncoding(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			p := g.BaseMul(big.NewInt(987654321))
			enc := p.Bytes()
			require.Len(t, enc, g.PointLen())

			dec, err := g.DecodePoint(enc)
			require.NoError(t, err)
			assert.True(t, p.Equal(dec))
			assert.Equal(t, enc, dec.Bytes())

			id, err := g.DecodePoint(g.Identity().Bytes())
			require.NoError(t, err)
			assert.True(t, id.IsIdentity())
		})
	}
}

func TestGroup_DecodePointRejects(t *testing.T) {
	for _, g := range groups {
		t.Run(g.Name(), func(t *testing.T) {
			valid := g.Generator().Bytes()

			cases := map[string][]byte{
				"empty":     {},
				"short":     valid[:len(valid)-1],
				"long":      append(append([]byte{}, valid...), 0),
				"all ones":  bytes.Repeat([]byte{0xff}, g.PointLen()),
				"not point": notOnCurve(g),
			}
			for name, b := range cases {
				_, err := g.DecodePoint(b)
				assert.Truef(t, errors.Is(err, internal.ErrInvalidEncoding), "%s: got %v", name, err)
			}
		})
	}
}

// notOnCurve returns an encoding that does not describe a group element.
func notOnCurve(g group.Group) []byte {
	b := make([]byte, g.PointLen())
	switch g.Name() {
	case "bls12381":
		// compressed flag with an x coordinate above the field modulus
		b[0] = 0x9f
		for i := 1; i < len(b); i++ {
			b[i] = 0xff
		}
	default:
		// (1, 1) is not on y^2 = x^3 + 3
		b[31] = 1
		b[63] = 1
	}
	return b
}

func TestGroup_BLS12381SubgroupCheck(t *testing.T) {
	// Small x coordinates either miss the curve or land outside the
	// prime-order subgroup; every one of them must be rejected.
	g := group.BLS12381()
	outside := 0
	for x := byte(1); x <= 16; x++ {
		b := smallXPoint(x)
		if onCurveOutsideSubgroup(t, b) {
			outside++
		}
		_, err := g.DecodePoint(b)
		require.Errorf(t, err, "x = %d", x)
		assert.True(t, errors.Is(err, internal.ErrInvalidEncoding))
	}
	require.NotZero(t, outside, "no on-curve point outside the subgroup was tried")
}

// smallXPoint returns the compressed encoding with the given x coordinate.
func smallXPoint(x byte) []byte {
	b := make([]byte, group.BLS12381PointLen)
	b[0] = 0x80
	b[len(b)-1] = x
	return b
}

// onCurveOutsideSubgroup decodes b without the subgroup check and
// reports whether it is a curve point outside the prime-order subgroup.
func onCurveOutsideSubgroup(t *testing.T, b []byte) bool {
	var p bls12381.G1Affine
	dec := bls12381.NewDecoder(bytes.NewReader(b), bls12381.NoSubgroupChecks())
	if err := dec.Decode(&p); err != nil {
		return false
	}
	require.True(t, p.IsOnCurve())
	return !p.IsInSubGroup()
}

func TestGroup_Scalar(t *testing.T) {
	g := group.BLS12381()
	k := big.NewInt(42)
	enc := group.EncodeScalar(k)
	require.Len(t, enc, group.ScalarLen)

	dec, err := group.DecodeScalar(g, enc)
	require.NoError(t, err)
	assert.Equal(t, 0, k.Cmp(dec))

	_, err = group.DecodeScalar(g, enc[1:])
	assert.True(t, errors.Is(err, internal.ErrInvalidEncoding))

	_, err = group.DecodeScalar(g, group.EncodeScalar(g.Order()))
	assert.True(t, errors.Is(err, internal.ErrInvalidEncoding))

	_, err = group.DecodeScalar(g, bytes.Repeat([]byte{0xff}, group.ScalarLen))
	assert.True(t, errors.Is(err, internal.ErrInvalidEncoding))
}

func TestGroup_ByName(t *testing.T) {
	g, err := group.ByName("BLS12-381")
	require.NoError(t, err)
	assert.Equal(t, "bls12381", g.Name())

	g, err = group.ByName("bn256")
	require.NoError(t, err)
	assert.Equal(t, group.BN256PointLen, g.PointLen())

	_, err = group.ByName("p256")
	assert.Error(t, err)
}

func TestGroup_MixedGroupsPanic(t *testing.T) {
	bls := group.BLS12381().Generator()
	bn := group.BN256().Generator()

	assert.PanicsWithValue(t, "group: bls12381 point combined with *group.bn256Point",
		func() { bls.Add(bn) })
	assert.PanicsWithValue(t, "group: bn256 point combined with *group.bls12381Point",
		func() { bn.Sub(bls) })
	assert.False(t, bls.Equal(bn))
}
