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

package elgamal

import (
	"math/big"

	"github.com/fentec-project/expelgamal/group"
)

// PublicKey represents an ElGamal public key Y = X * G.
//
// Keys and ciphertexts implement encoding.BinaryMarshaler but not
// BinaryUnmarshaler: the encoding does not name its group, so decoding
// goes through the scheme that knows it, see (*ElGamal).PublicKeyFromBytes,
// (*ElGamal).SecretKeyFromBytes and (*ElGamal).CiphertextFromBytes.
type PublicKey struct {
	Y group.Point
}

// Bytes returns the canonical compressed encoding of the public key.
func (pk *PublicKey) Bytes() []byte {
	return pk.Y.Bytes()
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.Bytes(), nil
}

// Equal reports whether pk and other hold the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.Y.Equal(other.Y)
}

func (pk *PublicKey) String() string {
	return pk.Y.String()
}

// SecretKey represents an ElGamal secret key, a scalar X in [1, order).
type SecretKey struct {
	X *big.Int
}

// Bytes returns the 32-byte big-endian encoding of the secret key.
func (sk *SecretKey) Bytes() []byte {
	return group.EncodeScalar(sk.X)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	return sk.Bytes(), nil
}

// PublicKey derives the public key X * G in group g.
func (sk *SecretKey) PublicKey(g group.Group) *PublicKey {
	return &PublicKey{Y: g.BaseMul(sk.X)}
}

// Equal reports whether sk and other hold the same scalar.
func (sk *SecretKey) Equal(other *SecretKey) bool {
	return sk.X.Cmp(other.X) == 0
}

// Zeroize overwrites the words backing the secret scalar. The key must
// not be used afterwards.
func (sk *SecretKey) Zeroize() {
	words := sk.X.Bits()
	for i := range words {
		words[i] = 0
	}
	sk.X.SetInt64(0)
}

// String does not reveal the secret scalar.
func (sk *SecretKey) String() string {
	return "SecretKey(redacted)"
}
