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

package group

import (
	"math/big"
	"strings"

	"github.com/fentec-project/expelgamal/internal"
	"github.com/pkg/errors"
)

// ScalarLen is the length in bytes of a canonically encoded scalar.
const ScalarLen = 32

// Point is an element of a prime-order elliptic curve group.
// Points are immutable: every operation returns a new Point.
// Add and Sub panic if q comes from a different Group.
type Point interface {
	// Add returns p + q.
	Add(q Point) Point
	// Sub returns p - q.
	Sub(q Point) Point
	// Mul returns k * p.
	Mul(k *big.Int) Point
	Equal(q Point) bool
	IsIdentity() bool
	// Bytes returns the canonical compressed encoding of the point.
	Bytes() []byte
	String() string
}

// Group represents a prime-order elliptic curve group together with
// a fixed generator G.
type Group interface {
	Name() string
	// Order of the group (and thus the modulus of the scalar field).
	Order() *big.Int
	// PointLen is the length in bytes of an encoded point.
	PointLen() int
	Generator() Point
	Identity() Point
	// BaseMul returns k * G.
	BaseMul(k *big.Int) Point
	// DecodePoint parses the canonical encoding of a point. It returns
	// an error wrapping internal.ErrInvalidEncoding if b has the wrong
	// length or does not encode an element of the prime-order group.
	DecodePoint(b []byte) (Point, error)
}

// ByName returns the group registered under the given name.
func ByName(name string) (Group, error) {
	switch strings.ToLower(name) {
	case "bls12381", "bls12-381":
		return BLS12381(), nil
	case "bn256":
		return BN256(), nil
	}
	return nil, errors.Errorf("unknown group %q", name)
}

// EncodeScalar returns the fixed-width big-endian encoding of k,
// which must lie in [0, g.Order()).
func EncodeScalar(k *big.Int) []byte {
	return k.FillBytes(make([]byte, ScalarLen))
}

// DecodeScalar parses a fixed-width big-endian scalar. It fails if b is
// not ScalarLen bytes long or if the value is not reduced modulo the
// group order.
func DecodeScalar(g Group, b []byte) (*big.Int, error) {
	if len(b) != ScalarLen {
		return nil, errors.Wrapf(internal.ErrInvalidEncoding,
			"scalar: expected %d bytes, got %d", ScalarLen, len(b))
	}
	k := new(big.Int).SetBytes(b)
	if k.Cmp(g.Order()) >= 0 {
		return nil, errors.Wrap(internal.ErrInvalidEncoding,
			"scalar: value not reduced modulo group order")
	}
	return k, nil
}
