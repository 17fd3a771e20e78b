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

package msgenc_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/fentec-project/expelgamal/msgenc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoders(t *testing.T) {
	encoders := map[string]msgenc.Encoder{
		"bbs-sha256":   msgenc.BBSSha256(),
		"bbs-shake256": msgenc.BBSShake256(),
	}
	order := fr.Modulus()

	for name, enc := range encoders {
		t.Run(name, func(t *testing.T) {
			a1, err := enc([]byte("This ElGamal thingy works."))
			require.NoError(t, err)
			a2, err := enc([]byte("This ElGamal thingy works."))
			require.NoError(t, err)
			b, err := enc([]byte("This ElGamal thingy does not work."))
			require.NoError(t, err)
			empty, err := enc(nil)
			require.NoError(t, err)

			assert.Equal(t, 0, a1.Cmp(a2), "encoding must be deterministic")
			assert.NotEqual(t, 0, a1.Cmp(b))
			assert.NotEqual(t, 0, a1.Cmp(empty))
			for _, k := range []*big.Int{a1, b, empty} {
				assert.True(t, k.Sign() >= 0 && k.Cmp(order) < 0)
			}
		})
	}
}

func TestEncoders_DomainSeparation(t *testing.T) {
	msg := []byte("attribute=value")
	a, err := msgenc.BBSSha256()(msg)
	require.NoError(t, err)
	b, err := msgenc.BBSShake256()(msg)
	require.NoError(t, err)
	assert.NotEqual(t, 0, a.Cmp(b))

	c, err := msgenc.XOF(fr.Modulus(), []byte("another tag"))(msg)
	require.NoError(t, err)
	assert.NotEqual(t, 0, b.Cmp(c))
}

func TestXOF_SmallOrder(t *testing.T) {
	order := big.NewInt(101)
	enc := msgenc.XOF(order, []byte("test"))
	for _, m := range []string{"a", "b", "c", "d"} {
		k, err := enc([]byte(m))
		require.NoError(t, err)
		assert.True(t, k.Cmp(order) < 0)
	}
}

func TestXOF_LongDST(t *testing.T) {
	enc := msgenc.XOF(fr.Modulus(), make([]byte, 256))
	_, err := enc([]byte("msg"))
	assert.Error(t, err)
}
